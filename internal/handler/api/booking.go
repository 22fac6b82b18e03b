package api

import (
	"fmt"
	"net/http"

	"travel-backoffice/internal/domain/booking"
	reqdto "travel-backoffice/internal/handler/dto/request"
	resdto "travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description Filter bookings by free-text search, status and travel dates
// @Tags bookings
// @Produce json
// @Param search query string false "Matches user email or package name"
// @Param status query string false "pending, confirmed or cancelled"
// @Param from_date query string false "Earliest departure (YYYY-MM-DD)"
// @Param to_date query string false "Latest return (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
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
	res, err := resdto.FromBookingPage(result)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Booking statistics
// @Tags bookings
// @Produce json
// @Success 200 {object} queries.BookingStats
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), in, middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	writeJSON(c, http.StatusCreated, res, err)
}

// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookingRequest
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
	res, err := resdto.FromBookingView(view)
	writeJSON(c, http.StatusOK, res, err)
}

// @Summary Delete booking
// @Description Refused with 409 while invoices reference the booking
// @Tags bookings
// @Param id path int true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
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

// @Summary Convert booking to invoice
// @Description Only confirmed bookings without invoices can be converted
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 201 {object} resdto.ConvertResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/invoice [post]
func (h *BookingHandler) ConvertToInvoice(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	if err := booking.CheckConvertible(booking.Status(view.Status), view.InvoiceCount); err != nil {
		status := http.StatusBadRequest
		if errs.Is(err, booking.ErrAlreadyInvoiced) {
			status = http.StatusConflict
		}
		httperr.AbortWithError(c, status, err, err.Error(), nil)
		return
	}
	result, err := h.cmds.ConvertToInvoice(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ConvertResponse{
		InvoiceID:     result.InvoiceID,
		InvoiceNumber: result.InvoiceNumber,
		Message:       fmt.Sprintf("Invoice %s created from booking #%d", result.InvoiceNumber, id),
	})
}
