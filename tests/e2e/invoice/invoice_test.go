//go:build e2e

package invoice_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/domain/user"
	"travel-backoffice/internal/handler/dto/request"
	"travel-backoffice/internal/handler/dto/response"
	"travel-backoffice/tests/common/builder"
	"travel-backoffice/tests/common/dbtest"
	"travel-backoffice/tests/common/httptest"
	"travel-backoffice/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	invoicesURL      = "/api/invoices"
	invoiceURL       = "/api/invoices/%d"
	invoiceStatusURL = "/api/invoices/%d/status"
	invoiceStatsURL  = "/api/invoices/stats"
)

var staffID = uuid.MustParse("5f0c8a3e-2d7b-4c1e-9a6f-3b8e1d2c4a50")

var staffHeaders = httptest.ActorHeaders(audit.Actor{
	ID:   &staffID,
	Name: "mia.staff",
	Role: string(user.RoleStaff),
})

type InvoiceSuite struct {
	e2e.SharedSuite
}

func TestInvoiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InvoiceSuite))
}

func (s *InvoiceSuite) seedInvoice(number, status string, date time.Time, price string) int64 {
	return dbtest.CreateTestInvoice(s.T(), s.DB, dbtest.InvoiceRow{
		Number:        number,
		InvoiceDate:   date,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane.doe@example.com",
		PackageName:   "Bali Paradise Tour",
		PackagePrice:  decimal.RequireFromString(price),
		Tax:           decimal.NewFromInt(10),
		Discount:      decimal.Zero,
		Status:        status,
	})
}

func (s *InvoiceSuite) TestCreateInvoice() {
	s.Run("numbers the invoice from the sequence and stores its total", func() {
		t := s.T()
		body := builder.NewInvoiceBuilder().WithPrice("1200.00", "10", "50").BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, body, staffHeaders)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var got response.InvoiceResponse
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, "RTT-INV-0001", got.InvoiceNumber)
		require.Equal(t, "120.00", got.TaxAmount)
		require.Equal(t, "1270.00", got.TotalAmount)
		require.Equal(t, "2025-03-14", got.InvoiceDate)

		require.Eventually(t, func() bool {
			return dbtest.CountAuditEntries(t, s.DB, string(audit.ActionInvoiceCreate)) == 1
		}, 5*time.Second, 50*time.Millisecond)
	})

	s.Run("defaults the invoice date to today", func() {
		t := s.T()
		body := builder.NewInvoiceBuilder().BuildRequestDTO()
		body.InvoiceDate = ""

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, body, staffHeaders)
		require.Equal(t, http.StatusCreated, w.Code)

		var got response.InvoiceResponse
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, time.Now().UTC().Format(request.DateLayout), got.InvoiceDate)
	})

	s.Run("rejects a reference to a missing booking", func() {
		t := s.T()
		body := builder.NewInvoiceBuilder().WithBooking(404).BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, body, staffHeaders)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("rejects a tax rate above 100", func() {
		t := s.T()
		body := builder.NewInvoiceBuilder().WithPrice("100", "101", "0").BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL, body, staffHeaders)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *InvoiceSuite) TestUpdateStatus() {
	s.Run("changes only the payment status", func() {
		t := s.T()
		id := s.seedInvoice("RTT-INV-0001", "pending", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "1000.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(invoiceStatusURL, id),
			request.InvoiceStatusRequest{PaymentStatus: "paid"}, staffHeaders)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.InvoiceResponse
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, "paid", got.PaymentStatus)
		require.Equal(t, "1100.00", got.TotalAmount)

		require.Eventually(t, func() bool {
			return dbtest.CountAuditEntries(t, s.DB, string(audit.ActionInvoiceUpdate)) == 1
		}, 5*time.Second, 50*time.Millisecond)
	})

	s.Run("rejects an unknown status", func() {
		t := s.T()
		id := s.seedInvoice("RTT-INV-0001", "pending", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "1000.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(invoiceStatusURL, id),
			map[string]string{"payment_status": "refunded"}, staffHeaders)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *InvoiceSuite) TestListAndStats() {
	s.Run("filters by invoice date range and status", func() {
		t := s.T()
		s.seedInvoice("RTT-INV-0001", "paid", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "1000.00")
		s.seedInvoice("RTT-INV-0002", "paid", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), "2000.00")
		s.seedInvoice("RTT-INV-0003", "pending", time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC), "500.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			invoicesURL+"?status=paid&from_date=2025-02-01&to_date=2025-02-28", nil, staffHeaders)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.InvoiceListResponse
		httptest.DecodeResponseBody(t, w.Body, &got)
		require.Equal(t, int64(1), got.Total)
		require.Equal(t, "RTT-INV-0002", got.Invoices[0].InvoiceNumber)
	})

	s.Run("summarises counts and revenue", func() {
		t := s.T()
		s.seedInvoice("RTT-INV-0001", "paid", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), "1000.00")
		s.seedInvoice("RTT-INV-0002", "overdue", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), "2000.00")
		s.seedInvoice("RTT-INV-0003", "pending", time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC), "500.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, invoiceStatsURL, nil, staffHeaders)
		require.Equal(t, http.StatusOK, w.Code)

		var got response.InvoiceStatsResponse
		httptest.DecodeResponseBody(t, w.Body, &got)
		want := response.InvoiceStatsResponse{Total: 3, TotalRevenue: "3850.00", Paid: 1, Pending: 1, Overdue: 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("stats mismatch (-want +got):\n%s", diff)
		}
	})
}

func (s *InvoiceSuite) TestDeleteInvoice() {
	s.Run("removes the invoice", func() {
		t := s.T()
		id := s.seedInvoice("RTT-INV-0001", "pending", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), "1000.00")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(invoiceURL, id), nil, staffHeaders)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(invoiceURL, id), nil, staffHeaders)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
