package repoargs

import (
	"time"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateVirtualAccountRequest struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Number      string
	Description string
	Amount      decimal.Decimal
	ExpireDate  time.Time
	AccountType domain.AccountType
}

type CreateVirtualAccount struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Number      string
	Description string
	Amount      decimal.Decimal
	ExpireDate  time.Time
	AccountType domain.AccountType
	Status      domain.AccountStatusType
}
