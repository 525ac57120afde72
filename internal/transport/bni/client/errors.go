package client

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse шлюз ответил без тела. Отличить успех от отказа в этом случае
// невозможно, поэтому ответ считается жесткой ошибкой транспорта.
var ErrEmptyResponse = errors.New("empty gateway response")

// StatusCodeError не-2xx HTTP статус от шлюза.
type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected http status code %d", e.Code)
}

// GatewayStatusError шлюз ответил, но собственный статус ответа отличен от
// успешного "000". Код сохраняется для диагностики.
type GatewayStatusError struct {
	Status string
}

func NewGatewayStatusError(status string) *GatewayStatusError {
	return &GatewayStatusError{Status: status}
}

func (e *GatewayStatusError) Error() string {
	return fmt.Sprintf("gateway response status %q", e.Status)
}

// CryptoError ошибка шифрования запроса или расшифровки/проверки ответа.
type CryptoError struct {
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("gateway crypto: %s", e.Err.Error())
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}
