package pgrepo

import (
	"context"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const virtualAccountColumns = `id, created_at, name, email, phone, number,
	description, amount, expire_date, account_type, account_status`

type VirtualAccountRepository struct {
	db uow.DBTX
}

func NewVirtualAccountRepository(db uow.DBTX) *VirtualAccountRepository {
	return &VirtualAccountRepository{db: db}
}

func (r *VirtualAccountRepository) Create(
	ctx context.Context,
	args repoargs.CreateVirtualAccount,
) (*domain.VirtualAccount, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO virtual_accounts
			(id, name, email, phone, number, description, amount, expire_date, account_type, account_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+virtualAccountColumns,
		args.ID, args.Name, args.Email, args.Phone, args.Number, args.Description,
		args.Amount, args.ExpireDate, string(args.AccountType), string(args.Status),
	)

	account, scanErr := scanVirtualAccount(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "creating virtual account with number `%s`", args.Number)
	}
	return account, nil
}

func (r *VirtualAccountRepository) FindByNumber(
	ctx context.Context,
	number string,
) (*domain.VirtualAccount, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+virtualAccountColumns+`
		FROM virtual_accounts
		WHERE number = $1`, number)

	account, scanErr := scanVirtualAccount(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "finding virtual account with number `%s`", number)
	}
	return account, nil
}

func scanVirtualAccount(row pgx.Row) (*domain.VirtualAccount, error) {
	var m domain.VirtualAccount
	var accountType, status string

	if err := row.Scan(
		&m.ID, &m.CreatedAt, &m.Name, &m.Email, &m.Phone, &m.Number,
		&m.Description, &m.Amount, &m.ExpireDate, &accountType, &status,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.AccountType = domain.AccountType(accountType)
	m.Status = domain.AccountStatusType(status)
	return &m, nil
}
