package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecollect/pkg/uow"
)

// RunningNumberRepository атомарный счетчик с ключом-префиксом. Инкремент выполняется
// одним upsert-запросом, конкурентный доступ сериализует сама база: два одновременных
// вызова Next для одного префикса никогда не вернут одинаковое значение.
type RunningNumberRepository struct {
	db uow.DBTX
}

func NewRunningNumberRepository(db uow.DBTX) *RunningNumberRepository {
	return &RunningNumberRepository{db: db}
}

// Next возвращает следующее значение счетчика для префикса. Счетчик для нового
// префикса начинается с 1.
func (r *RunningNumberRepository) Next(ctx context.Context, prefix string) (int64, error) {
	var value int64

	row := r.db.QueryRow(ctx, `
		INSERT INTO running_numbers (prefix, last_value)
		VALUES ($1, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET last_value = running_numbers.last_value + 1
		RETURNING last_value`, prefix)

	if scanErr := row.Scan(&value); scanErr != nil {
		return 0, convertErr(scanErr, "incrementing running number for prefix `%s`", prefix)
	}
	return value, nil
}
