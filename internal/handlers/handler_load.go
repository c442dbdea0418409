package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/middleware"
	"github.com/freightops/freight_broker_app/internal/utils/query"
)

const maxDocumentSizeBytes = 25 << 20

// loadHandler handles HTTP requests related to loads.
type loadHandler struct {
	recordHandler[domain.Load]
	loadService portssvc.LoadSvcFacade
	storage     portssvc.FileStorage
}

// newLoadHandler creates a new loadHandler.
func newLoadHandler(ls portssvc.LoadSvcFacade, hs portssvc.HistorySvcFacade, storage portssvc.FileStorage) *loadHandler {
	h := &loadHandler{
		loadService: ls,
		storage:     storage,
	}
	h.recordHandler = recordHandler[domain.Load]{
		svc:          ls,
		historySvc:   hs,
		entityType:   domain.EntityLoad,
		formatSingle: h.formatLoad,
		formatPage:   h.formatLoadPage,
	}
	return h
}

// registerLoadRoutes registers routes related to loads.
func registerLoadRoutes(rg *gin.RouterGroup, ls portssvc.LoadSvcFacade, hs portssvc.HistorySvcFacade, storage portssvc.FileStorage) {
	h := newLoadHandler(ls, hs, storage)

	loads := rg.Group("/loads")
	{
		loads.GET("/export", h.exportLoads)
		h.registerRecordRoutes(loads)
		loads.PUT("/:id/status", h.updateStatus)
		loads.POST("/:id/documents", h.uploadDocument)
	}
}

func (h *loadHandler) formatLoad(ctx context.Context, load domain.Load) (any, error) {
	relations, err := h.loadService.ResolveLoadRelations(ctx, []domain.Load{load})
	if err != nil {
		return nil, err
	}
	return dto.ToLoadResponse(load, lookup(relations.Customers, load.CustomerID), lookup(relations.Carriers, load.CarrierID)), nil
}

func (h *loadHandler) formatLoadPage(ctx context.Context, loads []domain.Load) ([]any, error) {
	relations, err := h.loadService.ResolveLoadRelations(ctx, loads)
	if err != nil {
		return nil, err
	}
	items := make([]any, len(loads))
	for i, load := range loads {
		items[i] = dto.ToLoadListItem(load, lookup(relations.Customers, load.CustomerID), lookup(relations.Carriers, load.CarrierID))
	}
	return items, nil
}

// updateStatus godoc
// @Summary Update a load's status
// @Description Applies a lifecycle transition to the load, validating it against the allowed transition table
// @Tags loads
// @Accept  json
// @Produce  json
// @Param   id path string true "Load ID"
// @Param   status body dto.UpdateLoadStatusRequest true "Target status"
// @Success 200 {object} dto.LoadResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Load not found"
// @Security BearerAuth
// @Router /loads/{id}/status [put]
func (h *loadHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateLoadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("status is required"))
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	load, err := h.loadService.UpdateLoadStatus(c.Request.Context(), c.Param("id"), domain.LoadStatus(req.Status), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondSingle(c, *load, false)
}

// exportLoads godoc
// @Summary Export loads as a spreadsheet
// @Description Renders the loads matching the query filters as an xlsx download
// @Tags loads
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /loads/export [get]
func (h *loadHandler) exportLoads(c *gin.Context) {
	q := query.Build(c.Request.URL.Query(), nil)
	content, filename, err := h.loadService.ExportLoads(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// uploadDocument godoc
// @Summary Attach a document to a load
// @Description Stores the uploaded file and appends its URL to the load's document list
// @Tags loads
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path string true "Load ID"
// @Param   document formData file true "Document to attach"
// @Success 200 {object} dto.LoadResponse
// @Failure 400 {object} map[string]string "Missing or oversized file"
// @Failure 404 {object} map[string]string "Load not found"
// @Security BearerAuth
// @Router /loads/{id}/documents [post]
func (h *loadHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	loadID := c.Param("id")

	load, err := h.loadService.GetRecordByID(c.Request.Context(), loadID)
	if err != nil {
		respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("document file is required"))
		return
	}
	if fileHeader.Size > maxDocumentSizeBytes {
		respondError(c, apperrors.NewInvalidArgumentError("document exceeds the maximum allowed size"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.storage.Save(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		logger.Error("Failed to store uploaded document", slog.String("load_id", loadID), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	patch := map[string]any{"documentUrls": append(append([]string{}, load.DocumentURLs...), url)}
	updated, _, err := h.loadService.UpdateRecord(c.Request.Context(), loadID, patch, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Document attached to load", slog.String("load_id", loadID), slog.String("url", url))
	h.respondSingle(c, *updated, false)
}

// lookup returns a pointer into a relation map, nil when absent.
func lookup[T any](m map[string]T, id string) *T {
	if id == "" {
		return nil
	}
	if v, ok := m[id]; ok {
		return &v
	}
	return nil
}
