package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"paperhelp/internal/app/ds"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	maxUploadSize = 10 << 20
	filesPath     = "/files/"
)

// receiveFile читает файл из multipart-формы и сохраняет его в MinIO.
// Без MinIO сохраняется только имя файла.
func (h *Handler) receiveFile(c *gin.Context, field, prefix string) (ds.Attachment, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "file is required in field "+field)
		return ds.Attachment{}, false
	}
	if file.Size > maxUploadSize {
		h.errorResponse(c, http.StatusRequestEntityTooLarge, "file is larger than "+humanize.Bytes(maxUploadSize))
		return ds.Attachment{}, false
	}

	// Читаем содержимое файла
	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to read file")
		return ds.Attachment{}, false
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to read file")
		return ds.Attachment{}, false
	}

	attachment := ds.Attachment{
		FileName: file.Filename,
		FileSize: humanize.Bytes(uint64(len(fileData))),
	}

	if h.Files != nil {
		key, err := h.Files.UploadFile(c.Request.Context(), prefix, fileData, file.Filename)
		if err != nil {
			logrus.Error("Error uploading to MinIO: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "failed to store file")
			return ds.Attachment{}, false
		}
		attachment.FileURL = filesPath + key
	} else {
		// Fallback если MinIO не настроен
		attachment.FileURL = "uploaded_" + file.Filename
	}

	return attachment, true
}

// removeFile удаляет из MinIO файл, загруженный через receiveFile.
// Внешние ссылки не трогаются.
func (h *Handler) removeFile(ctx context.Context, fileURL string) {
	if h.Files == nil || !strings.HasPrefix(fileURL, filesPath) {
		return
	}
	if err := h.Files.DeleteFile(ctx, strings.TrimPrefix(fileURL, filesPath)); err != nil {
		logrus.Warnf("Failed to delete file %s: %v", fileURL, err)
	}
}

// GetFile перенаправляет на временную ссылку MinIO
// @Summary Скачивание файла
// @Tags Files
// @Param key path string true "Ключ объекта"
// @Success 302
// @Failure 404 {object} dto.ErrorResponse
// @Router /files/{key} [get]
func (h *Handler) GetFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if h.Files == nil || key == "" {
		h.errorResponse(c, http.StatusNotFound, "file not found")
		return
	}

	ctx := c.Request.Context()
	exists, err := h.Files.FileExists(ctx, key)
	if err != nil {
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to check file")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "file not found")
		return
	}

	url, err := h.Files.GetFileURL(ctx, key)
	if err != nil {
		logrus.Error(err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to sign file url")
		return
	}
	c.Redirect(http.StatusFound, url)
}
