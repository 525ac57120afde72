package bni

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/ecollect/internal/domain"
)

const (
	testClientID = "09111"
	testTrxID    = "20260901000001"
)

func testRequest() *domain.VirtualAccountRequest {
	return &domain.VirtualAccountRequest{
		ID:          "req-1",
		Name:        "Ali",
		Email:       "ali@example.com",
		Phone:       "08123456789",
		Number:      "12345",
		Description: "Tuition fee",
		Amount:      decimal.NewFromFloat(150000.50),
		ExpireDate:  time.Date(2026, 9, 30, 0, 0, 0, 0, domain.GatewayTimezone),
		AccountType: domain.AccountTypeClosed,
	}
}

func TestBuildCreateVARequest(t *testing.T) {
	createReq, err := BuildCreateVARequest(testRequest(), testClientID, testTrxID)
	require.NoError(t, err)

	assert.Equal(t, TypeCreateBilling, createReq.Type)
	assert.Equal(t, testClientID, createReq.ClientID)
	assert.Equal(t, testTrxID, createReq.TrxID)
	assert.Equal(t, BillingTypeClosed, createReq.BillingType)
	assert.Equal(t, "Ali", createReq.CustomerName)
	assert.Equal(t, "ali@example.com", createReq.CustomerEmail)
	assert.Equal(t, "08123456789", createReq.CustomerPhone)
	// "8" + client id + номер из заявки
	assert.Equal(t, "80911112345", createReq.VirtualAccount)
	assert.Equal(t, "2026-09-30T00:00:00+07:00", createReq.DatetimeExpired)
	assert.Equal(t, "Tuition fee", createReq.Description)
}

func TestBuildCreateVARequest_BillingTypes(t *testing.T) {
	cases := []struct {
		accountType domain.AccountType
		want        string
	}{
		{domain.AccountTypeClosed, BillingTypeClosed},
		{domain.AccountTypeOpen, BillingTypeOpen},
		{domain.AccountTypeInstallment, BillingTypeInstallment},
	}

	for _, tc := range cases {
		t.Run(string(tc.accountType), func(t *testing.T) {
			request := testRequest()
			request.AccountType = tc.accountType

			createReq, err := BuildCreateVARequest(request, testClientID, testTrxID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, createReq.BillingType)
		})
	}
}

func TestBuildCreateVARequest_UnknownAccountType(t *testing.T) {
	request := testRequest()
	request.AccountType = domain.AccountType("SAVINGS")

	_, err := BuildCreateVARequest(request, testClientID, testTrxID)

	var unknownErr *domain.UnknownAccountTypeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, domain.AccountType("SAVINGS"), unknownErr.AccountType)
}

// TestBuildCreateVARequest_AmountRounding сумма округляется до целого банковским
// округлением (half-to-even) и рендерится без десятичной точки.
func TestBuildCreateVARequest_AmountRounding(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"150000.50", "150000"},
		{"150001.50", "150002"},
		{"2.5", "2"},
		{"3.5", "4"},
		{"150000.49", "150000"},
		{"150000.51", "150001"},
		{"100000", "100000"},
	}

	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			request := testRequest()
			amount, amountErr := decimal.NewFromString(tc.amount)
			require.NoError(t, amountErr)
			request.Amount = amount

			createReq, err := BuildCreateVARequest(request, testClientID, testTrxID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, createReq.TrxAmount)
		})
	}
}

// TestBuildCreateVARequest_ExpireDateTimezone дата разворачивается в начало суток
// по часовому поясу шлюза, какой бы пояс ни нес исходный time.Time.
func TestBuildCreateVARequest_ExpireDateTimezone(t *testing.T) {
	request := testRequest()
	// полночь UTC; в поясе шлюза это 07:00 тех же суток
	request.ExpireDate = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	createReq, err := BuildCreateVARequest(request, testClientID, testTrxID)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31T00:00:00+07:00", createReq.DatetimeExpired)
}
