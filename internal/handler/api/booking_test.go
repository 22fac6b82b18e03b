//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"travel-backoffice/internal/domain/audit"
	"travel-backoffice/internal/handler/api"
	"travel-backoffice/internal/handler/middleware"
	"travel-backoffice/internal/infra/filter"
	"travel-backoffice/internal/pkg/errs"
	"travel-backoffice/internal/usecase/commands"
	"travel-backoffice/internal/usecase/queries"
	"travel-backoffice/tests/common/builder"
	"travel-backoffice/tests/common/httptest"
	"travel-backoffice/tests/common/testutil"
	commandsmock "travel-backoffice/tests/mock/commands"
	queriesmock "travel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var staffID = uuid.MustParse("5f0c8a3e-2d7b-4c1e-9a6f-3b8e1d2c4a50")

var staffActor = audit.Actor{ID: &staffID, Name: "mia.staff", Role: "staff"}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	headers      map[string]string
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.Actor())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.headers = httptest.ActorHeaders(staffActor)

	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/stats", s.handler.Stats)
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.PUT("/bookings/:id", s.handler.Update)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
	s.router.POST("/bookings/:id/invoice", s.handler.ConvertToInvoice)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()
	view := builder.NewBookingBuilder().BuildView()

	validation := []testCaseBooking{
		{name: "missing user_email", mutate: testutil.Drop("user_email"), expectCode: http.StatusBadRequest},
		{name: "malformed user_email", mutate: testutil.Set("user_email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "package_id zero", mutate: testutil.Set("package_id", 0), expectCode: http.StatusBadRequest},
		{name: "unknown status", mutate: testutil.Set("status", "archived"), expectCode: http.StatusBadRequest},
		{name: "from_date not a date", mutate: testutil.Set("from_date", "06/01/2025"), expectCode: http.StatusBadRequest},
		{name: "missing to_date", mutate: testutil.Drop("to_date"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with the stored booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), staffActor).
			DoAndReturn(func(_ any, in commands.BookingInput, _ audit.Actor) (int64, error) {
				s.Equal("jane.doe@example.com", in.UserEmail)
				s.Equal(1, in.PackageID)
				s.Equal("2025-06-01", in.FromDate.Format("2006-01-02"))
				s.Equal("2025-06-08", in.ToDate.Format("2006-01-02"))
				return view.ID, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.headers)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(float64(42), body["id"])
		s.Equal("2025-06-01", body["from_date"])
		s.Equal("Bali Paradise Tour", body["package_name"])
	})

	s.Run("error: 400 on invalid body", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), s.headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 when the usecase rejects the dates", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errs.Mark(errs.New("from_date must not be after to_date"), errs.ErrValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "from_date must not be after to_date")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: parses filters and paging", func() {
		from := builder.NewBookingBuilder().FromDate
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), filter.Page{Limit: 10, Offset: 20}).
			DoAndReturn(func(_ any, c filter.Criteria, p filter.Page) (*queries.BookingPage, error) {
				s.Equal("bali", c.Search)
				s.Equal("confirmed", c.Status)
				s.Require().NotNil(c.FromDate)
				s.True(from.Equal(*c.FromDate))
				s.Nil(c.ToDate)
				return &queries.BookingPage{Items: []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, Total: 21, Limit: p.Limit, Offset: p.Offset}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?search=bali&status=confirmed&from_date=2025-06-01&limit=10&offset=20", nil, nil)

		var body struct {
			Bookings []map[string]any `json:"bookings"`
			Total    int64            `json:"total"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
		s.Equal(int64(21), body.Total)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?to_date=tomorrow", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

// ================================================================================
// TestGet / TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(99)).
			Return(nil, errs.Mark(errs.New("booking not found"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/99", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 on non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 500 when the view cannot be mapped", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/7", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(42), staffActor).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/42", nil, s.headers)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while invoices exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(42), gomock.Any()).
			Return(errs.Mark(errs.New("Cannot delete booking with associated invoices"), errs.ErrIntegrity))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/42", nil, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "associated invoices")
	})
}

// ================================================================================
// TestConvertToInvoice
// ================================================================================

func (s *BookingHandlerTestSuite) TestConvertToInvoice() {
	url := "/bookings/42/invoice"

	s.Run("success: 201 with the new invoice number", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(builder.NewBookingBuilder().BuildView(), nil)
		s.mockCommands.EXPECT().ConvertToInvoice(gomock.Any(), int64(42), staffActor).
			Return(&commands.ConvertResult{InvoiceID: 7, InvoiceNumber: "RTT-INV-0007"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.headers)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("RTT-INV-0007", body["invoice_number"])
		s.Equal("Invoice RTT-INV-0007 created from booking #42", body["message"])
	})

	gates := []struct {
		name       string
		status     string
		invoices   int64
		expectCode int
		expectMsg  string
	}{
		{name: "pending booking", status: "pending", expectCode: http.StatusBadRequest, expectMsg: "only confirmed"},
		{name: "cancelled booking", status: "cancelled", expectCode: http.StatusBadRequest, expectMsg: "only confirmed"},
		{name: "already invoiced", status: "confirmed", invoices: 1, expectCode: http.StatusConflict, expectMsg: "already has an invoice"},
	}
	for _, tc := range gates {
		s.Run("error: "+tc.name, func() {
			view := builder.NewBookingBuilder().WithStatus(tc.status).BuildView()
			view.InvoiceCount = tc.invoices
			s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(view, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.headers)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 500 hides persistence detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(builder.NewBookingBuilder().BuildView(), nil)
		s.mockCommands.EXPECT().ConvertToInvoice(gomock.Any(), int64(42), gomock.Any()).
			Return(nil, errs.Mark(errs.New("insert invoice: connection reset"), errs.ErrPersistence))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "connection reset")
	})
}
