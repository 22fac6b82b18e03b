package api

import (
	"net/http"

	resdto "travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard
// @Description Invoice totals, today's activity, recent invoices, monthly paid revenue and top packages
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Failure 500 {object} httperr.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromDashboardSummary(summary)
	writeJSON(c, http.StatusOK, res, err)
}
