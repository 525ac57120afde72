package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const vaRequestColumns = `id, created_at, updated_at, name, email, phone, number,
	description, amount, expire_date, account_type, request_status`

type VirtualAccountRequestRepository struct {
	db uow.DBTX
}

func NewVirtualAccountRequestRepository(db uow.DBTX) *VirtualAccountRequestRepository {
	return &VirtualAccountRequestRepository{db: db}
}

func (r *VirtualAccountRequestRepository) Create(
	ctx context.Context,
	args repoargs.CreateVirtualAccountRequest,
) (*domain.VirtualAccountRequest, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO virtual_account_requests
			(id, name, email, phone, number, description, amount, expire_date, account_type, request_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+vaRequestColumns,
		args.ID, args.Name, args.Email, args.Phone, args.Number, args.Description,
		args.Amount, args.ExpireDate, string(args.AccountType), string(domain.RequestStatusPending),
	)

	request, scanErr := scanVaRequest(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "creating request for number `%s`", args.Number)
	}
	return request, nil
}

func (r *VirtualAccountRequestRepository) FindByID(
	ctx context.Context,
	id string,
) (*domain.VirtualAccountRequest, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+vaRequestColumns+`
		FROM virtual_account_requests
		WHERE id = $1`, id)

	request, scanErr := scanVaRequest(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "finding request with id `%s`", id)
	}
	return request, nil
}

// GetPending возвращает необработанные заявки в порядке поступления.
func (r *VirtualAccountRequestRepository) GetPending(
	ctx context.Context,
	limit uint,
) ([]domain.VirtualAccountRequest, error) {
	rows, queryErr := r.db.Query(ctx, `
		SELECT `+vaRequestColumns+`
		FROM virtual_account_requests
		WHERE request_status = $1
		ORDER BY created_at
		LIMIT $2`, string(domain.RequestStatusPending), int64(limit)) //nolint:gosec
	if queryErr != nil {
		return nil, convertErr(queryErr, "getting pending requests")
	}
	defer rows.Close()

	var requests []domain.VirtualAccountRequest
	for rows.Next() {
		request, scanErr := scanVaRequest(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning pending request")
		}
		requests = append(requests, *request)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting pending requests")
	}
	return requests, nil
}

// UpdateStatus проставляет заявке терминальный статус.
func (r *VirtualAccountRequestRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status domain.RequestStatusType,
) (*domain.VirtualAccountRequest, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE virtual_account_requests
		SET request_status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+vaRequestColumns, id, string(status))

	request, scanErr := scanVaRequest(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "updating status of request with id `%s`", id)
	}
	return request, nil
}

func scanVaRequest(row pgx.Row) (*domain.VirtualAccountRequest, error) {
	var m domain.VirtualAccountRequest
	var accountType, status string

	if err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Name, &m.Email, &m.Phone, &m.Number,
		&m.Description, &m.Amount, &m.ExpireDate, &accountType, &status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.AccountType = domain.AccountType(accountType)
	m.Status = domain.RequestStatusType(status)
	return &m, nil
}
