package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvmatch/api/http/presenter"
	"github.com/artem13815/cvmatch/pkg/match"
)

type MatchHandler struct {
	uc match.UseCase
}

func NewMatchHandler(uc match.UseCase) *MatchHandler { return &MatchHandler{uc: uc} }

type compareRequest struct {
	CVText string `json:"cvText"`
	JDText string `json:"jdText"`
}

// Compare сопоставляет текст резюме с текстом вакансии без сохранения.
// @Summary Сопоставить резюме и вакансию
// @Description Извлекает навыки из обоих текстов, считает семантическую близость и подбирает курсы по недостающим навыкам.
// @Tags        Сопоставление
// @Accept      json
// @Produce     json
// @Param       input body compareRequest true "Тексты резюме и вакансии"
// @Security    BearerAuth
// @Success     200 {object} match.Report
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /skills/compare [post]
func (h *MatchHandler) Compare(c *fiber.Ctx) error {
	var req compareRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	rep, err := h.uc.Preview(c.Context(), req.CVText, req.JDText)
	if err != nil {
		if err == match.ErrEmptyText {
			return presenter.Error(c, http.StatusBadRequest, "cvText и jdText обязательны")
		}
		return presenter.Error(c, http.StatusInternalServerError, "не удалось выполнить сопоставление")
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

// CreateReport выполняет сопоставление и сохраняет отчёт.
// @Summary Создать отчёт сопоставления
// @Tags    Отчёты
// @Accept  json
// @Produce json
// @Param   input body compareRequest true "Тексты резюме и вакансии"
// @Security BearerAuth
// @Success 201 {object} match.Report
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /reports [post]
func (h *MatchHandler) CreateReport(c *fiber.Ctx) error {
	var req compareRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	rep, err := h.uc.Create(c.Context(), uid, req.CVText, req.JDText)
	if err != nil {
		if err == match.ErrEmptyText {
			return presenter.Error(c, http.StatusBadRequest, "cvText и jdText обязательны")
		}
		return presenter.Error(c, http.StatusInternalServerError, "не удалось сохранить отчёт")
	}
	return presenter.JSON(c, http.StatusCreated, rep)
}

// GetReport возвращает отчёт по ID.
// @Summary Получить отчёт по ID
// @Tags    Отчёты
// @Produce json
// @Param   id path string true "ID отчёта (UUID)"
// @Security BearerAuth
// @Success 200 {object} match.Report
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /reports/{id} [get]
func (h *MatchHandler) GetReport(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	rep, err := h.uc.Get(c.Context(), uid, isAdmin, id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "отчёт не найден")
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

// ListReports возвращает отчёты пользователя (администратор видит все).
// @Summary Список отчётов
// @Tags    Отчёты
// @Produce json
// @Param   limit  query int false "Максимум записей (по умолчанию 50)"
// @Param   offset query int false "Смещение"
// @Security BearerAuth
// @Success 200 {array} match.Report
// @Router  /reports [get]
func (h *MatchHandler) ListReports(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	limit, offset := parseLimitOffset(c, 50)
	reps, err := h.uc.List(c.Context(), uid, isAdmin, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "не удалось получить список")
	}
	if reps == nil {
		reps = []match.Report{}
	}
	return presenter.JSON(c, http.StatusOK, reps)
}

// DeleteReport удаляет отчёт.
// @Summary Удалить отчёт
// @Tags    Отчёты
// @Produce json
// @Param   id path string true "ID отчёта (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /reports/{id} [delete]
func (h *MatchHandler) DeleteReport(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "не удалось определить пользователя")
	}
	isAdmin, _ := c.Locals("isAdmin").(bool)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный UUID")
	}
	if err := h.uc.Delete(c.Context(), uid, isAdmin, id); err != nil {
		return presenter.Error(c, http.StatusNotFound, "отчёт не найден")
	}
	return c.SendStatus(http.StatusNoContent)
}
