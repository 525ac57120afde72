package bni

import (
	"time"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/transport/bni/dto"
)

const (
	TypeCreateBilling = "createbilling"
	TypeUpdateBilling = "updatebilling"

	BillingTypeClosed      = "c"
	BillingTypeOpen        = "o"
	BillingTypeInstallment = "i"

	// vaNumberPrefix обязательная первая цифра номера виртуального счета BNI.
	vaNumberPrefix = "8"

	iso8601OffsetFormat = "2006-01-02T15:04:05-07:00"
)

// BuildCreateVARequest собирает канонический запрос createbilling из заявки.
// Чистая функция без побочных эффектов:
//   - сумма округляется до целого банковским округлением (half-to-even);
//   - срок действия разворачивается в начало суток по часовому поясу шлюза
//     и форматируется как ISO-8601 с оффсетом;
//   - номер счета — конкатенация "8" + clientID + номер из заявки.
//
// Заявка с неизвестным типом счета отклоняется здесь, до какого-либо сетевого
// вызова, с ошибкой *domain.UnknownAccountTypeError.
func BuildCreateVARequest(
	request *domain.VirtualAccountRequest,
	clientID string,
	trxID string,
) (*dto.CreateVARequest, error) {
	billingType, btErr := billingTypeFor(request.AccountType)
	if btErr != nil {
		return nil, btErr
	}

	return &dto.CreateVARequest{
		Type:            TypeCreateBilling,
		ClientID:        clientID,
		TrxID:           trxID,
		TrxAmount:       request.Amount.RoundBank(0).String(),
		BillingType:     billingType,
		CustomerName:    request.Name,
		CustomerEmail:   request.Email,
		CustomerPhone:   request.Phone,
		VirtualAccount:  vaNumberPrefix + clientID + request.Number,
		DatetimeExpired: toISO8601(request.ExpireDate),
		Description:     request.Description,
	}, nil
}

func billingTypeFor(t domain.AccountType) (string, error) {
	switch t {
	case domain.AccountTypeClosed:
		return BillingTypeClosed, nil
	case domain.AccountTypeOpen:
		return BillingTypeOpen, nil
	case domain.AccountTypeInstallment:
		return BillingTypeInstallment, nil
	default:
		return "", domain.NewUnknownAccountTypeError(t)
	}
}

// toISO8601 начало суток даты d в часовом поясе шлюза, с точностью до секунды.
func toISO8601(d time.Time) string {
	local := d.In(domain.GatewayTimezone)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, domain.GatewayTimezone).Format(iso8601OffsetFormat)
}
