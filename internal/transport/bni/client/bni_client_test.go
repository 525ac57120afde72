package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/ecollect/internal/transport/bni/dto"
	"github.com/fsdevblog/ecollect/pkg/ecrypt"
)

const (
	testClientID  = "09111"
	testClientKey = "a1b2c3d4"
)

func testCreateReq() *dto.CreateVARequest {
	return &dto.CreateVARequest{
		Type:            "createbilling",
		ClientID:        testClientID,
		TrxID:           "20260901000001",
		TrxAmount:       "150000",
		BillingType:     "c",
		CustomerName:    "Ali",
		CustomerEmail:   "ali@example.com",
		CustomerPhone:   "08123456789",
		VirtualAccount:  "80911112345",
		DatetimeExpired: "2026-09-30T00:00:00+07:00",
		Description:     "Tuition fee",
	}
}

func newTestClient(serverURL string) HTTPClient {
	return New(serverURL, testClientID, testClientKey, ecrypt.New(), logrus.New())
}

// TestCreateBilling_Success полный успешный обмен: конверт из двух полей,
// расшифровываемый запрос, зашифрованный ответ со статусом "000".
func TestCreateBilling_Success(t *testing.T) {
	cipher := ecrypt.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		body, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)

		// порядок полей конверта фиксирован: client_id, затем data
		assert.True(t, strings.HasPrefix(string(body), `{"client_id":`))

		var env struct {
			ClientID string `json:"client_id"`
			Data     string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &env))
		assert.Equal(t, testClientID, env.ClientID)

		payload, parseErr := cipher.ParseData(env.Data, testClientID, testClientKey)
		require.NoError(t, parseErr)

		var createReq map[string]string
		require.NoError(t, json.Unmarshal([]byte(payload), &createReq))
		assert.Equal(t, "createbilling", createReq["type"])
		assert.Equal(t, "80911112345", createReq["virtual_account"])
		assert.Equal(t, "150000", createReq["trx_amount"])

		respPayload, hashErr := cipher.HashData(
			`{"status":"000","trx_id":"20260901000001","virtual_account":"80911112345"}`,
			testClientID, testClientKey)
		require.NoError(t, hashErr)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "000", "data": respPayload})
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())
	require.NoError(t, err)

	assert.Equal(t, "000", result["status"])
	assert.Equal(t, "80911112345", result["virtual_account"])
}

func TestCreateBilling_GatewayStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "001"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())

	var gatewayErr *GatewayStatusError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Equal(t, "001", gatewayErr.Status)
}

func TestCreateBilling_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestCreateBilling_HTTPStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())

	var statusErr *StatusCodeError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

// TestCreateBilling_TamperedData статус успешный, но data не проходит проверку.
func TestCreateBilling_TamperedData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "000", "data": "not-a-valid-token"})
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())

	var cryptoErr *CryptoError
	require.ErrorAs(t, err, &cryptoErr)
	assert.ErrorIs(t, err, ecrypt.ErrDecrypt)
}

func TestCreateBilling_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // сервер закрыт заранее

	_, err := newTestClient(server.URL).CreateBilling(t.Context(), testCreateReq())

	require.Error(t, err)
	var gatewayErr *GatewayStatusError
	assert.False(t, errors.As(err, &gatewayErr))
}
