package handlers

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/middleware"
)

// fileHandler serves stored load documents back to authenticated callers.
type fileHandler struct {
	storage portssvc.FileStorage
}

func registerFileRoutes(rg *gin.RouterGroup, storage portssvc.FileStorage) {
	h := &fileHandler{storage: storage}
	rg.GET("/files/:name", h.serveFile)
}

func (h *fileHandler) serveFile(c *gin.Context) {
	name := c.Param("name")

	file, err := h.storage.Open(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to stream file", slog.String("name", name), slog.String("error", err.Error()))
	}
}
