// Package filter turns listing criteria into a parameterized WHERE predicate.
package filter

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Criteria holds the optional listing filters. Zero values are ignored.
type Criteria struct {
	Search   string
	Status   string
	FromDate *time.Time
	ToDate   *time.Time
}

// Columns names the table columns each criterion targets.
type Columns struct {
	Search []string
	Status string
	From   string
	To     string
}

var (
	BookingColumns = Columns{
		Search: []string{"b.user_email", "b.package_name"},
		Status: "b.status",
		From:   "b.from_date",
		To:     "b.to_date",
	}
	InvoiceColumns = Columns{
		Search: []string{"i.customer_name", "i.customer_email", "i.package_name"},
		Status: "i.payment_status",
		From:   "i.invoice_date",
		To:     "i.invoice_date",
	}
)

type Predicate struct {
	Clauses []string
	Args    []any
}

// Where renders the clauses ANDed together, or "" when there are none.
func (p Predicate) Where() string {
	if len(p.Clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.Clauses, " AND ")
}

// Next returns the placeholder index following the predicate's own args.
func (p Predicate) Next(offset int) int {
	return offset + len(p.Args) + 1
}

type Builder struct {
	cols   Columns
	offset int
}

// NewBuilder numbers placeholders from offset+1.
func NewBuilder(cols Columns, offset int) *Builder {
	return &Builder{cols: cols, offset: offset}
}

func (b *Builder) Build(c Criteria) Predicate {
	var p Predicate
	add := func(format string, arg any) {
		p.Args = append(p.Args, arg)
		p.Clauses = append(p.Clauses, fmt.Sprintf(format, b.offset+len(p.Args)))
	}

	if term := strings.TrimSpace(c.Search); term != "" && len(b.cols.Search) > 0 {
		p.Args = append(p.Args, "%"+EscapeLike(term)+"%")
		n := b.offset + len(p.Args)
		ors := make([]string, len(b.cols.Search))
		for i, col := range b.cols.Search {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
		}
		p.Clauses = append(p.Clauses, "("+strings.Join(ors, " OR ")+")")
	}
	if status := strings.TrimSpace(c.Status); status != "" {
		add(b.cols.Status+" = $%d", status)
	}
	if c.FromDate != nil {
		add(b.cols.From+" >= $%d", dateOnly(*c.FromDate))
	}
	if c.ToDate != nil {
		add(b.cols.To+" <= $%d", dateOnly(*c.ToDate))
	}
	return p
}

// EscapeLike makes %, _ and \ match literally under the default ILIKE escape.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps a 1-based page number and size to sane bounds.
func NewPage(page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return Page{Limit: size, Offset: (page - 1) * size}
}

// Window clamps an explicit limit/offset pair the way NewPage clamps pages.
func Window(limit, offset int) Page {
	p := NewPage(1, limit)
	if offset > 0 {
		p.Offset = offset
	}
	return p
}
