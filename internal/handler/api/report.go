package api

import (
	"log/slog"
	"net/http"

	reqdto "travel-backoffice/internal/handler/dto/request"
	"travel-backoffice/internal/handler/export"
	"travel-backoffice/internal/handler/httperr"
	"travel-backoffice/internal/pkg/clock"
	"travel-backoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q     queries.ReportQueries
	clock clock.Clock
}

func NewReportHandler(q queries.ReportQueries, clk clock.Clock) *ReportHandler {
	return &ReportHandler{q: q, clock: clk}
}

// @Summary Generate report
// @Description Aggregates invoices over an inclusive date range. Defaults to the last 30 days.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param report_type query string false "financial_summary, invoice_analysis, customer_reports or package_performance"
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param export query string false "csv to download the report"
// @Success 200 {object} report.Result
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /reports [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	var q reqdto.ReportQuery
	if !bindQuery(c, &q) {
		return
	}
	today := clock.Today(h.clock)
	typ, rng, err := q.ToReport(today)
	if err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.q.Generate(c.Request.Context(), typ, rng)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	if !q.WantsCSV() {
		c.JSON(http.StatusOK, result)
		return
	}

	c.Header("Content-Type", export.CSVContentType)
	c.Header("Content-Disposition", `attachment; filename="`+export.CSVFilename(today)+`"`)
	c.Status(http.StatusOK)
	if err := export.WriteReportCSV(c.Writer, result); err != nil {
		// Headers are already sent; the truncated body is all the client gets.
		slog.ErrorContext(c.Request.Context(), "CSV export failed", "report_type", typ.String(), "error", err.Error())
	}
}
