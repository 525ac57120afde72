// Package client реализует защищенный канал до шлюза BNI e-collection:
// сериализация канонического запроса, шифрование вендорским примитивом,
// двухполевой конверт и разбор зашифрованного ответа.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecollect/internal/transport/bni/dto"
	"github.com/fsdevblog/ecollect/pkg/ecrypt"
)

// ResponseStatusSuccess единственный код успешного ответа шлюза.
const ResponseStatusSuccess = "000"

// envelope проводной формат запроса: ровно два поля, client_id затем data.
// Порядок полей фиксирован схемой шлюза, поэтому структура, а не map.
type envelope struct {
	ClientID string `json:"client_id"`
	Data     string `json:"data"`
}

// HTTPClient клиент шлюза. Один вызов CreateBilling — один исходящий POST,
// без повторов; таймауты задает вызывающая сторона через контекст.
type HTTPClient struct {
	serverURL  string
	clientID   string
	clientKey  string
	cipher     ecrypt.Cipher
	httpClient *http.Client
	l          *logrus.Entry
}

func New(serverURL, clientID, clientKey string, cipher ecrypt.Cipher, l *logrus.Logger) HTTPClient {
	return HTTPClient{
		serverURL:  serverURL,
		clientID:   clientID,
		clientKey:  clientKey,
		cipher:     cipher,
		httpClient: http.DefaultClient,
		l:          l.WithField("component", "bni-client"),
	}
}

// CreateBilling отправляет запрос createbilling и возвращает расшифрованный ответ
// шлюза как словарь строк.
//
// Ошибки:
//   - пустое тело ответа → ErrEmptyResponse;
//   - не-2xx HTTP статус → *StatusCodeError;
//   - статус ответа шлюза отличен от "000" → *GatewayStatusError (расшифровка
//     не выполняется: при отказе поле data может отсутствовать);
//   - ошибка шифрования/расшифровки → *CryptoError.
//
//nolint:nonamedreturns
func (c HTTPClient) CreateBilling(
	ctx context.Context,
	createReq *dto.CreateVARequest,
) (result map[string]string, err error) {
	rawData, marshalErr := json.Marshal(createReq)
	if marshalErr != nil {
		return nil, fmt.Errorf("marshal create va request: %s", marshalErr.Error())
	}
	c.l.WithField("trxID", createReq.TrxID).Debug("sending createbilling request")

	encryptedData, encryptErr := c.cipher.HashData(string(rawData), c.clientID, c.clientKey)
	if encryptErr != nil {
		return nil, &CryptoError{Err: encryptErr}
	}

	body, bodyErr := json.Marshal(envelope{ClientID: c.clientID, Data: encryptedData})
	if bodyErr != nil {
		return nil, fmt.Errorf("marshal envelope: %s", bodyErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL, bytes.NewReader(body))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %s", readErr.Error())
	}
	if len(respBody) == 0 {
		return nil, ErrEmptyResponse
	}

	var wireResp map[string]string
	if jsonErr := json.Unmarshal(respBody, &wireResp); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %s", jsonErr.Error())
	}

	status := wireResp["status"]
	c.l.WithField("status", status).Debug("gateway response status")
	if status != ResponseStatusSuccess {
		return nil, NewGatewayStatusError(status)
	}

	decrypted, decryptErr := c.cipher.ParseData(wireResp["data"], c.clientID, c.clientKey)
	if decryptErr != nil {
		return nil, &CryptoError{Err: decryptErr}
	}

	var payload map[string]string
	if jsonErr := json.Unmarshal([]byte(decrypted), &payload); jsonErr != nil {
		return nil, fmt.Errorf("parse decrypted response: %s", jsonErr.Error())
	}
	return payload, nil
}
