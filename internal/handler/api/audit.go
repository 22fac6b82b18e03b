package api

import (
	"net/http"

	reqdto "travel-backoffice/internal/handler/dto/request"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	q queries.AuditQueries
}

func NewAuditHandler(q queries.AuditQueries) *AuditHandler {
	return &AuditHandler{q: q}
}

// @Summary Recent activity
// @Tags audit
// @Produce json
// @Param limit query int false "Entries to return (default 20, max 100)"
// @Success 200 {array} queries.AuditLogView
// @Router /audit-logs [get]
func (h *AuditHandler) Recent(c *gin.Context) {
	var q reqdto.AuditQuery
	if !bindQuery(c, &q) {
		return
	}
	entries, err := h.q.Recent(c.Request.Context(), q.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
