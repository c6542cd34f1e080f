package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/straatbeeld/werkorder-api/internal/dto"
	"github.com/straatbeeld/werkorder-api/internal/models"
	appErrors "github.com/straatbeeld/werkorder-api/pkg/errors"
	"github.com/straatbeeld/werkorder-api/pkg/response"
)

type workOrderService interface {
	List(ctx context.Context) ([]models.WorkOrder, error)
	Get(ctx context.Context, id int64) (*models.WorkOrder, error)
	Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*models.WorkOrder, error)
	Update(ctx context.Context, id int64, req dto.UpdateWorkOrderRequest) (*models.WorkOrder, error)
	Logs(ctx context.Context, id int64) ([]models.WorkOrderLog, error)
	Stats(ctx context.Context) (*models.WorkOrderStats, error)
}

type exportService interface {
	WorkOrdersCSV(ctx context.Context) ([]byte, error)
	WorkOrderPDF(ctx context.Context, id int64) ([]byte, string, error)
}

// WorkOrderHandler exposes the work-order REST endpoints. The same list
// and detail operations back both the public /requests surface and the
// staff /work-orders surface.
type WorkOrderHandler struct {
	service workOrderService
	exports exportService
}

// NewWorkOrderHandler constructs the handler. exports may be nil when
// the export endpoints are disabled.
func NewWorkOrderHandler(service workOrderService, exports exportService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service, exports: exports}
}

// List godoc
// @Summary List work orders, newest first
// @Tags WorkOrders
// @Produce json
// @Success 200 {array} models.WorkOrder
// @Router /requests [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, orders)
}

// Create godoc
// @Summary Submit a work order
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param payload body dto.CreateWorkOrderRequest true "Work order payload"
// @Success 200 {object} models.WorkOrder
// @Router /requests [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req dto.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work order payload"))
		return
	}
	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Get godoc
// @Summary Get one work order
// @Tags WorkOrders
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {object} models.WorkOrder
// @Router /work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Update godoc
// @Summary Partially update a work order
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Param id path int true "Work order ID"
// @Param payload body dto.UpdateWorkOrderRequest true "Patch payload"
// @Success 200 {object} models.WorkOrder
// @Router /work-orders/{id} [patch]
func (h *WorkOrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work order patch"))
		return
	}
	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, order)
}

// Logs godoc
// @Summary Status history of a work order, newest first
// @Tags WorkOrders
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {array} models.WorkOrderLog
// @Router /work-orders/{id}/logs [get]
func (h *WorkOrderHandler) Logs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	logs, err := h.service.Logs(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, logs)
}

// Stats godoc
// @Summary Aggregate counts for the staff dashboard
// @Tags WorkOrders
// @Produce json
// @Success 200 {object} models.WorkOrderStats
// @Router /work-orders/stats [get]
func (h *WorkOrderHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// ExportCSV godoc
// @Summary Download all work orders as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string
// @Router /work-orders/export [get]
func (h *WorkOrderHandler) ExportCSV(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	payload, err := h.exports.WorkOrdersCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="werkorders.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

// ExportPDF godoc
// @Summary Download one work order as a printable PDF sheet
// @Tags Exports
// @Produce application/pdf
// @Param id path int true "Work order ID"
// @Success 200 {string} string
// @Router /work-orders/{id}/pdf [get]
func (h *WorkOrderHandler) ExportPDF(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	payload, filename, err := h.exports.WorkOrderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

// pathID parses the :id segment. A non-numeric id cannot reference an
// existing order, so it renders as not-found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "work order not found"))
		return 0, false
	}
	return id, true
}
