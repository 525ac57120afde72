package service

import (
	"context"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type VirtualAccountRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateVirtualAccountRequest) (*domain.VirtualAccountRequest, error)
	FindByID(ctx context.Context, id string) (*domain.VirtualAccountRequest, error)
	GetPending(ctx context.Context, limit uint) ([]domain.VirtualAccountRequest, error)
	UpdateStatus(
		ctx context.Context,
		id string,
		status domain.RequestStatusType,
	) (*domain.VirtualAccountRequest, error)
}

type VirtualAccountRepository interface {
	Create(ctx context.Context, args repoargs.CreateVirtualAccount) (*domain.VirtualAccount, error)
	FindByNumber(ctx context.Context, number string) (*domain.VirtualAccount, error)
}

type RunningNumberRepository interface {
	Next(ctx context.Context, prefix string) (int64, error)
}
