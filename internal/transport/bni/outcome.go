package bni

import (
	"errors"

	"github.com/fsdevblog/ecollect/internal/transport/bni/client"
)

type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeGatewayError   OutcomeKind = "gateway_error"
	OutcomeTransportError OutcomeKind = "transport_error"
)

// Outcome результат одной попытки провижининга. GatewayStatus заполнен только
// для OutcomeGatewayError.
type Outcome struct {
	Kind          OutcomeKind
	GatewayStatus string
	Err           error
}

// Classify тотальная классификация ответа шлюза: любая пара (resp, err)
// отображается ровно в один из трех исходов.
//
//   - явный не-успешный статус шлюза → OutcomeGatewayError с кодом для диагностики;
//   - отсутствие ответа, ошибка соединения, ошибка криптографии → OutcomeTransportError;
//   - статус "000" → OutcomeSuccess.
//
// Повторных попыток здесь нет — классификация чистая.
func Classify(resp map[string]string, err error) Outcome {
	if err != nil {
		var gatewayErr *client.GatewayStatusError
		if errors.As(err, &gatewayErr) {
			return Outcome{Kind: OutcomeGatewayError, GatewayStatus: gatewayErr.Status, Err: err}
		}
		return Outcome{Kind: OutcomeTransportError, Err: err}
	}

	if resp == nil {
		return Outcome{Kind: OutcomeTransportError, Err: client.ErrEmptyResponse}
	}

	if status := resp["status"]; status != client.ResponseStatusSuccess {
		return Outcome{Kind: OutcomeGatewayError, GatewayStatus: status, Err: client.NewGatewayStatusError(status)}
	}
	return Outcome{Kind: OutcomeSuccess}
}
