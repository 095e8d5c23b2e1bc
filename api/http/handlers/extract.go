package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvmatch/api/http/presenter"
	"github.com/artem13815/cvmatch/pkg/extract"
	"github.com/artem13815/cvmatch/pkg/nlp"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true, ".bmp": true,
}

type ExtractHandler struct {
	extractor *extract.Extractor
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewExtractHandler(extractor *extract.Extractor) *ExtractHandler {
	return &ExtractHandler{extractor: extractor, maxBytes: 15 << 20} // 15MB
}

// Upload извлекает текст из загруженного документа (PDF или изображение).
// Для PDF сначала читается текстовый слой, «пустые» страницы уходят в OCR.
// @Summary Извлечь текст из документа
// @Description Принимает PDF или изображение, возвращает нормализованный текст и статистику по страницам.
// @Tags    Извлечение
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл (PDF, PNG, JPEG, TIFF, BMP)"
// @Security BearerAuth
// @Success 200 {object} extract.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /extract/upload [post]
func (h *ExtractHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or image)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && !imageExts[ext] {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	// Извлечение работает по пути к файлу, поэтому сбрасываем загрузку во временный файл.
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}
	tmp.Close()

	var res extract.Result
	if ext == ".pdf" {
		res = h.extractor.FromPDF(tmp.Name())
	} else {
		res = h.extractor.FromImage(tmp.Name())
	}
	if !res.OK() {
		return presenter.JSON(c, http.StatusUnprocessableEntity, res)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

type normalizeRequest struct {
	Text string `json:"text"`
}

// Normalize чистит сырой текст: маркеры страниц, лишние пробелы, пустые строки.
// @Summary Нормализовать текст
// @Tags    Извлечение
// @Accept  json
// @Produce json
// @Param   input body normalizeRequest true "Сырой текст"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /extract/normalize [post]
func (h *ExtractHandler) Normalize(c *fiber.Ctx) error {
	var req normalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"text": nlp.CleanExtracted(req.Text),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
