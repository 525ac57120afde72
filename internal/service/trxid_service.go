package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/pkg/uow"
)

const trxDatePrefixFormat = "20060102"

// TrxIDService выдает идентификаторы транзакций шлюза: префикс-дата yyyyMMdd по
// часовому поясу шлюза плюс порядковый номер за день, дополненный нулями до 6 знаков.
// Номер выдает атомарный счетчик в базе, поэтому идентификаторы уникальны в пределах
// даты даже при конкурентных вызовах и перезапусках процесса.
type TrxIDService struct {
	numbers RunningNumberRepository
}

func NewTrxIDService(u uow.UOW) (*TrxIDService, error) {
	numbers, err := uow.GetRepositoryAs[RunningNumberRepository](u, uow.RepositoryName(repoargs.RunningNumberRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &TrxIDService{numbers: numbers}, nil
}

// Next возвращает свежий идентификатор транзакции. Каждый вызов — новый номер:
// повторная обработка одной заявки пойдет в шлюз как новая попытка.
func (s *TrxIDService) Next(ctx context.Context) (string, error) {
	prefix := time.Now().In(domain.GatewayTimezone).Format(trxDatePrefixFormat)

	number, numberErr := s.numbers.Next(ctx, prefix)
	if numberErr != nil {
		return "", fmt.Errorf("next trx id: %w", numberErr)
	}
	return fmt.Sprintf("%s%06d", prefix, number), nil
}
