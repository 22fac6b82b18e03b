package api

import (
	"net/http"

	reqdto "travel-backoffice/internal/handler/dto/request"
	resdto "travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	cmds commands.InvoiceCommands
	q    queries.InvoiceQueries
}

func NewInvoiceHandler(cmds commands.InvoiceCommands, q queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{cmds: cmds, q: q}
}

// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param search query string false "Matches customer name, email or package"
// @Param status query string false "pending, paid or overdue"
// @Param from_date query string false "Earliest invoice date (YYYY-MM-DD)"
// @Param to_date query string false "Latest invoice date (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} resdto.InvoiceListResponse
// @Failure 400 {object} httperr.Response
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	var q reqdto.ListQuery
	if !bindQuery(c, &q) {
		return
	}
	criteria, page, err := q.ToFilter()
	if err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.q.List(c.Request.Context(), criteria, page)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoicePage(result)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Invoice statistics
// @Tags invoices
// @Produce json
// @Success 200 {object} resdto.InvoiceStatsResponse
// @Router /invoices/stats [get]
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoiceStats(stats)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Create invoice
// @Description Tax and total are computed server-side; the number comes from the configured prefix
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body reqdto.InvoiceRequest true "Invoice"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req reqdto.InvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), in, middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.InvoiceID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary Update invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param request body reqdto.InvoiceRequest true "Invoice"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.InvoiceRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, in, middleware.GetActor(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Update payment status
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param request body reqdto.InvoiceStatusRequest true "Status"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.InvoiceStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.UpdateStatus(c.Request.Context(), id, req.PaymentStatus, middleware.GetActor(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromInvoiceView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Delete invoice
// @Tags invoices
// @Param id path int true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
