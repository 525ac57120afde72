package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// VirtualAccountRequest заявка на создание виртуального счета. Создается в статусе
// RequestStatusPending, после обработки шлюзом переходит в один из терминальных
// статусов (SUCCESS/ERROR) и больше не изменяется.
type VirtualAccountRequest struct {
	ID          string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Email       string
	Phone       string
	Number      string
	Description string
	Amount      decimal.Decimal
	ExpireDate  time.Time
	AccountType AccountType
	Status      RequestStatusType
}

// VirtualAccount запись об успешно открытом виртуальном счете. Создается ровно один раз
// при успешном ответе шлюза и в рамках данного сервиса не мутирует.
type VirtualAccount struct {
	ID          string
	CreatedAt   time.Time
	Name        string
	Email       string
	Phone       string
	Number      string
	Description string
	Amount      decimal.Decimal
	ExpireDate  time.Time
	AccountType AccountType
	Status      AccountStatusType
}
