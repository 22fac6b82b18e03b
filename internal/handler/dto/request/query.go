package request

import (
	"time"

	"travel-backoffice/internal/domain/report"
	"travel-backoffice/internal/infra/filter"
)

type ListQuery struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	FromDate string `form:"from_date"`
	ToDate   string `form:"to_date"`
	Limit    int    `form:"limit" binding:"omitempty,min=0"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

func (q *ListQuery) ToFilter() (filter.Criteria, filter.Page, error) {
	from, err := ParseOptionalDate(q.FromDate)
	if err != nil {
		return filter.Criteria{}, filter.Page{}, err
	}
	to, err := ParseOptionalDate(q.ToDate)
	if err != nil {
		return filter.Criteria{}, filter.Page{}, err
	}
	c := filter.Criteria{Search: q.Search, Status: q.Status, FromDate: from, ToDate: to}
	return c, filter.Window(q.Limit, q.Offset), nil
}

type ReportQuery struct {
	ReportType string `form:"report_type"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Export     string `form:"export" binding:"omitempty,oneof=csv"`
}

func (q *ReportQuery) ToReport(today time.Time) (report.Type, report.DateRange, error) {
	t, err := report.ParseType(q.ReportType)
	if err != nil {
		return "", report.DateRange{}, err
	}
	start, err := ParseOptionalDate(q.StartDate)
	if err != nil {
		return "", report.DateRange{}, err
	}
	end, err := ParseOptionalDate(q.EndDate)
	if err != nil {
		return "", report.DateRange{}, err
	}
	return t, report.ResolveDateRange(start, end, today), nil
}

func (q *ReportQuery) WantsCSV() bool {
	return q.Export == "csv"
}

type AuditQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}
