package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	"github.com/freightops/freight_broker_app/internal/core/domain"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/middleware"
	"github.com/freightops/freight_broker_app/internal/utils/query"
)

// recordHandler serves the uniform CRUD, search, stats, bulk and audit
// surface shared by every entity. Per-entity handlers embed it and add
// their own routes on top.
type recordHandler[T any] struct {
	svc        portssvc.RecordSvcFacade[T]
	historySvc portssvc.HistorySvcFacade
	entityType domain.EntityType

	// formatSingle renders the full single-record view, resolving joins
	// when the entity has them.
	formatSingle func(ctx context.Context, record T) (any, error)
	// formatPage renders the denser list view for a page of records.
	formatPage func(ctx context.Context, records []T) ([]any, error)
}

// registerRecordRoutes mounts the generic surface under the given group.
func (h *recordHandler[T]) registerRecordRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/search", h.search)
	rg.GET("/stats", h.stats)
	rg.POST("", h.create)
	rg.POST("/bulk-update", h.bulkUpdate)
	rg.POST("/bulk-delete", h.bulkDelete)
	rg.GET("/:id", h.getByID)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.GET("/:id/history", h.getHistory)
}

func (h *recordHandler[T]) list(c *gin.Context) {
	q := query.Build(c.Request.URL.Query(), nil)
	records, total, err := h.svc.ListRecords(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondPage(c, records, total, q)
}

func (h *recordHandler[T]) search(c *gin.Context) {
	q := query.Build(c.Request.URL.Query(), nil)
	records, total, err := h.svc.SearchRecords(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondPage(c, records, total, q)
}

func (h *recordHandler[T]) respondPage(c *gin.Context, records []T, total int64, q domain.QueryDescriptor) {
	items, err := h.formatPage(c.Request.Context(), records)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, items, total, q.Page, q.Limit)
}

func (h *recordHandler[T]) stats(c *gin.Context) {
	result, err := h.svc.RecordStats(c.Request.Context(), c.DefaultQuery("period", "all"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *recordHandler[T]) getByID(c *gin.Context) {
	record, err := h.svc.GetRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondSingle(c, *record, false)
}

func (h *recordHandler[T]) create(c *gin.Context) {
	fields, ok := bindFieldMap(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	record, err := h.svc.CreateRecord(c.Request.Context(), fields, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondSingle(c, *record, true)
}

func (h *recordHandler[T]) update(c *gin.Context) {
	fields, ok := bindFieldMap(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	record, changed, err := h.svc.UpdateRecord(c.Request.Context(), c.Param("id"), fields, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !changed {
		data, ferr := h.formatSingle(c.Request.Context(), *record)
		if ferr != nil {
			respondError(c, ferr)
			return
		}
		c.JSON(http.StatusOK, envelope{Success: true, Data: data, Message: "no changes"})
		return
	}
	h.respondSingle(c, *record, false)
}

func (h *recordHandler[T]) delete(c *gin.Context) {
	actorID, _ := middleware.GetUserIDFromContext(c)
	if err := h.svc.DeleteRecord(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Record deleted")
}

func (h *recordHandler[T]) bulkUpdate(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	modified, err := h.svc.BulkUpdateRecords(c.Request.Context(), req.IDs, req.Data, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.BulkResult{Modified: modified})
}

func (h *recordHandler[T]) bulkDelete(c *gin.Context) {
	var req dto.BulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(c)

	modified, err := h.svc.BulkDeleteRecords(c.Request.Context(), req.IDs, actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.BulkResult{Modified: modified})
}

func (h *recordHandler[T]) getHistory(c *gin.Context) {
	entityID := c.Param("id")
	limit := intQuery(c, "limit", 20)
	offset := intQuery(c, "offset", 0)

	records, total, err := h.historySvc.GetEntityHistory(c.Request.Context(), h.entityType, entityID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	actors, err := h.historySvc.ResolveActors(c.Request.Context(), records)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.HistoryResponse, len(records))
	for i, record := range records {
		var actor *domain.User
		if u, ok := actors[record.ActorID]; ok {
			actor = &u
		}
		items[i] = dto.ToHistoryResponse(record, actor)
	}
	respondOK(c, dto.HistoryPage{Items: items, Total: total, Limit: limit, Offset: offset})
}

func (h *recordHandler[T]) respondSingle(c *gin.Context, record T, created bool) {
	data, err := h.formatSingle(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		respondCreated(c, data)
		return
	}
	respondOK(c, data)
}

// bindFieldMap reads the request body as a raw field map. Writing false
// means the error response has already been sent.
func bindFieldMap(c *gin.Context) (map[string]any, bool) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind request body", slog.String("error", err.Error()))
		respondError(c, apperrors.NewInvalidArgumentError("invalid request body"))
		return nil, false
	}
	return fields, true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return n
}
