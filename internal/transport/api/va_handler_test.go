package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/service"
	"github.com/fsdevblog/ecollect/internal/transport/api/mocks"
)

type VaHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockService *mocks.MockVaServicer
}

func TestVaHandlerSuite(t *testing.T) {
	suite.Run(t, new(VaHandlerTestSuite))
}

func (s *VaHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockVaServicer(s.mockCtrl)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	s.router = New(RouterArgs{
		Logger:    logger,
		VaService: s.mockService,
	})
}

func (s *VaHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *VaHandlerTestSuite) validPayload() CreateVaRequestPayload {
	return CreateVaRequestPayload{
		Name:        "Ali",
		Email:       "ali@example.com",
		Phone:       "08123456789",
		Number:      "12345",
		Description: "Tuition fee",
		Amount:      decimal.NewFromInt(150000),
		ExpireDate:  "2026-09-30",
		AccountType: "CLOSED",
	}
}

func (s *VaHandlerTestSuite) postRequest(payload any) *httptest.ResponseRecorder {
	body, marshalErr := json.Marshal(payload)
	s.Require().NoError(marshalErr)

	req := httptest.NewRequest(http.MethodPost, RouteGroup+RequestsRoute, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// TestCreate заявка принимается сразу: 202 с id, результат обработки
// читается потом через Show.
func (s *VaHandlerTestSuite) TestCreate() {
	payload := s.validPayload()

	s.mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.SubmitRequestArgs) (*domain.VirtualAccountRequest, error) {
			s.Equal(payload.Name, args.Name)
			s.Equal(payload.Number, args.Number)
			s.Equal(domain.AccountTypeClosed, args.AccountType)
			// дата заявки — начало суток в поясе шлюза
			s.Equal(time.Date(2026, 9, 30, 0, 0, 0, 0, domain.GatewayTimezone), args.ExpireDate)
			return &domain.VirtualAccountRequest{
				ID:          "req-1",
				Number:      args.Number,
				Name:        args.Name,
				AccountType: args.AccountType,
				Status:      domain.RequestStatusPending,
			}, nil
		})

	w := s.postRequest(payload)

	s.Equal(http.StatusAccepted, w.Code)

	var resp VaRequestResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("req-1", resp.ID)
	s.Equal(string(domain.RequestStatusPending), resp.Status)
}

func (s *VaHandlerTestSuite) TestCreate_ValidationErrors() {
	cases := []struct {
		name   string
		mutate func(p *CreateVaRequestPayload)
	}{
		{"missing name", func(p *CreateVaRequestPayload) { p.Name = "" }},
		{"bad email", func(p *CreateVaRequestPayload) { p.Email = "not-an-email" }},
		{"non numeric number", func(p *CreateVaRequestPayload) { p.Number = "12a45" }},
		{"unknown account type", func(p *CreateVaRequestPayload) { p.AccountType = "SAVINGS" }},
		{"bad expire date", func(p *CreateVaRequestPayload) { p.ExpireDate = "30-09-2026" }},
		{"zero amount", func(p *CreateVaRequestPayload) { p.Amount = decimal.Zero }},
		{"negative amount", func(p *CreateVaRequestPayload) { p.Amount = decimal.NewFromInt(-1) }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

			payload := s.validPayload()
			tc.mutate(&payload)

			w := s.postRequest(payload)
			s.Equal(http.StatusUnprocessableEntity, w.Code)
		})
	}
}

func (s *VaHandlerTestSuite) TestCreate_ServiceError() {
	s.mockService.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknown)

	w := s.postRequest(s.validPayload())
	s.Equal(http.StatusInternalServerError, w.Code)
}

func (s *VaHandlerTestSuite) TestShow() {
	s.mockService.EXPECT().
		FindRequest(gomock.Any(), "req-1").
		Return(&domain.VirtualAccountRequest{
			ID:          "req-1",
			Number:      "12345",
			Name:        "Ali",
			AccountType: domain.AccountTypeClosed,
			Status:      domain.RequestStatusSuccess,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, RouteGroup+"/va/requests/req-1", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp VaRequestResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("req-1", resp.ID)
	s.Equal(string(domain.RequestStatusSuccess), resp.Status)
}

func (s *VaHandlerTestSuite) TestShow_NotFound() {
	s.mockService.EXPECT().
		FindRequest(gomock.Any(), "missing").
		Return(nil, domain.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, RouteGroup+"/va/requests/missing", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *VaHandlerTestSuite) TestShowAccount() {
	expireDate := time.Date(2026, 9, 30, 0, 0, 0, 0, domain.GatewayTimezone)

	s.mockService.EXPECT().
		FindAccountByNumber(gomock.Any(), "80911112345").
		Return(&domain.VirtualAccount{
			ID:          "acc-1",
			Number:      "80911112345",
			Name:        "Ali",
			Email:       "ali@example.com",
			Phone:       "08123456789",
			Amount:      decimal.NewFromInt(150000),
			ExpireDate:  expireDate,
			AccountType: domain.AccountTypeClosed,
			Status:      domain.AccountStatusActive,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, RouteGroup+"/va/accounts/80911112345", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)

	var resp VirtualAccountResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("80911112345", resp.Number)
	s.Equal("2026-09-30", resp.ExpireDate)
	s.Equal(string(domain.AccountStatusActive), resp.Status)
}

func (s *VaHandlerTestSuite) TestShowAccount_NotFound() {
	s.mockService.EXPECT().
		FindAccountByNumber(gomock.Any(), "80900000000").
		Return(nil, domain.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, RouteGroup+"/va/accounts/80900000000", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}
