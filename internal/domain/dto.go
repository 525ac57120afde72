package domain

// AccountType тип биллинга виртуального счета на стороне шлюза.
type AccountType string

const (
	AccountTypeClosed      AccountType = "CLOSED"
	AccountTypeOpen        AccountType = "OPEN"
	AccountTypeInstallment AccountType = "INSTALLMENT"
)

type RequestStatusType string

const (
	RequestStatusPending RequestStatusType = "PENDING"
	RequestStatusSuccess RequestStatusType = "SUCCESS"
	RequestStatusError   RequestStatusType = "ERROR"
)

type AccountStatusType string

const (
	AccountStatusActive AccountStatusType = "ACTIVE"
)
