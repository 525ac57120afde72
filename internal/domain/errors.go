package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// UnknownAccountTypeError возвращается при попытке собрать запрос к шлюзу для заявки
// с неизвестным типом счета. Такая заявка отклоняется до любого сетевого вызова.
type UnknownAccountTypeError struct {
	AccountType AccountType
}

func NewUnknownAccountTypeError(t AccountType) error {
	return &UnknownAccountTypeError{AccountType: t}
}

func (e *UnknownAccountTypeError) Error() string {
	return fmt.Sprintf("unknown account type %q", string(e.AccountType))
}
