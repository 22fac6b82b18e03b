//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/handler/api"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/tests/common/builder"
	"travel-backoffice/tests/common/httptest"
	"travel-backoffice/tests/common/testutil"
	commandsmock "travel-backoffice/tests/mock/commands"
	queriesmock "travel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InvoiceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInvoiceCommands
	mockQueries  *queriesmock.MockInvoiceQueries
	headers      map[string]string
}

func (s *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Actor())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInvoiceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInvoiceQueries(s.mockCtrl)
	h := api.NewInvoiceHandler(s.mockCommands, s.mockQueries)
	s.headers = httptest.ActorHeaders(staffActor)

	s.router.GET("/invoices", h.List)
	s.router.GET("/invoices/stats", h.Stats)
	s.router.POST("/invoices", h.Create)
	s.router.GET("/invoices/:id", h.Get)
	s.router.PUT("/invoices/:id", h.Update)
	s.router.PATCH("/invoices/:id/status", h.UpdateStatus)
	s.router.DELETE("/invoices/:id", h.Delete)
}

func (s *InvoiceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInvoiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}

func (s *InvoiceHandlerTestSuite) TestCreate() {
	url := "/invoices"
	reqBody := builder.NewInvoiceBuilder().BuildRequestDTO()
	view := builder.NewInvoiceBuilder().BuildView()

	s.Run("success: amounts rendered with two decimals", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), staffActor).
			DoAndReturn(func(_ any, in commands.InvoiceInput, _ audit.Actor) (*commands.CreateInvoiceResult, error) {
				s.True(decimal.RequireFromString("1200").Equal(in.PackagePrice))
				s.True(decimal.NewFromInt(10).Equal(in.TaxRate))
				s.Equal("pending", in.PaymentStatus)
				return &commands.CreateInvoiceResult{InvoiceID: view.ID, InvoiceNumber: view.InvoiceNumber}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.headers)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("RTT-INV-0007", body["invoice_number"])
		s.Equal("1200.00", body["package_price"])
		s.Equal("120.00", body["tax_amount"])
		s.Equal("1320.00", body["total_amount"])
		s.Equal("2025-03-14", body["invoice_date"])
	})

	s.Run("success: omitted tax rate and date reach the usecase as zero values", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Drop("tax_rate"), testutil.Drop("invoice_date"), testutil.Drop("discount"))
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.InvoiceInput, _ audit.Actor) (*commands.CreateInvoiceResult, error) {
				s.True(in.TaxRate.IsZero())
				s.True(in.Discount.IsZero())
				s.True(in.InvoiceDate.IsZero())
				return &commands.CreateInvoiceResult{InvoiceID: view.ID, InvoiceNumber: view.InvoiceNumber}, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.headers)
		s.Equal(http.StatusCreated, rec.Code)
	})

	invalid := []struct {
		name   string
		mutate testutil.Mutation
	}{
		{name: "missing customer_name", mutate: testutil.Drop("customer_name")},
		{name: "bad customer_email", mutate: testutil.Set("customer_email", "jane")},
		{name: "unknown payment_status", mutate: testutil.Set("payment_status", "refunded")},
		{name: "bad invoice_date", mutate: testutil.Set("invoice_date", "14-03-2025")},
		{name: "package_price not numeric", mutate: testutil.Set("package_price", "abc")},
	}
	for _, tc := range invalid {
		s.Run("error: 400 "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), s.headers)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("error: 400 on dangling booking reference", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("booking does not exist"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "booking does not exist")
	})
}

func (s *InvoiceHandlerTestSuite) TestUpdateStatus() {
	url := "/invoices/7/status"

	s.Run("success: returns the updated invoice", func() {
		view := builder.NewInvoiceBuilder().WithStatus("paid").BuildView()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), "paid", staffActor).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"payment_status": "paid"}, s.headers)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paid", body["payment_status"])
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"payment_status": "void"}, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 on unknown invoice", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), int64(7), "overdue", gomock.Any()).
			Return(errs.Mark(errs.New("invoice not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{"payment_status": "overdue"}, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "invoice not found")
	})
}

func (s *InvoiceHandlerTestSuite) TestStatsAndList() {
	s.Run("stats renders revenue as money", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any()).Return(&queries.InvoiceStats{
			Total: 3, TotalRevenue: decimal.RequireFromString("4567.8"), Paid: 1, Pending: 1, Overdue: 1,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices/stats", nil, nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("4567.80", body["total_revenue"])
		s.Equal(float64(3), body["total"])
	})

	s.Run("list includes booking dates when linked", func() {
		view := builder.NewInvoiceBuilder().WithBooking(42).BuildView()
		from, to := builder.NewBookingBuilder().FromDate, builder.NewBookingBuilder().ToDate
		view.BookingFromDate, view.BookingToDate = &from, &to
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&queries.InvoicePage{Items: []*queries.InvoiceView{view, builder.NewInvoiceBuilder().WithID(8).BuildView()}, Total: 2, Limit: 50}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/invoices", nil, nil)

		var body struct {
			Invoices []map[string]any `json:"invoices"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Invoices, 2)
		s.Equal("2025-06-01", body.Invoices[0]["booking_from_date"])
		s.Equal("2025-06-08", body.Invoices[0]["booking_to_date"])
		s.NotContains(body.Invoices[1], "booking_from_date")
	})
}
