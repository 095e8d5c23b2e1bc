package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvmatch/api/http/presenter"
	"github.com/artem13815/cvmatch/pkg/courses"
)

type CoursesHandler struct {
	rec *courses.Recommender
}

func NewCoursesHandler(rec *courses.Recommender) *CoursesHandler {
	return &CoursesHandler{rec: rec}
}

type recommendRequest struct {
	Skills []string `json:"skills"`
	TopN   int      `json:"topN"`
}

// Recommend подбирает курсы по списку недостающих навыков.
// @Summary Рекомендовать курсы
// @Description Ранжирует каталог курсов по TF-IDF близости к запрошенным навыкам.
// @Tags        Курсы
// @Accept      json
// @Produce     json
// @Param       input body recommendRequest true "Недостающие навыки"
// @Security    BearerAuth
// @Success     200 {array} courses.Recommendation
// @Failure     400 {object} presenter.ErrorResponse
// @Router      /courses/recommend [post]
func (h *CoursesHandler) Recommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	return presenter.JSON(c, http.StatusOK, h.rec.Recommend(req.Skills, req.TopN))
}
