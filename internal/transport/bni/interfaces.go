package bni

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/transport/bni/dto"
)

type Client interface {
	CreateBilling(ctx context.Context, createReq *dto.CreateVARequest) (map[string]string, error)
}

type Servicer interface {
	PendingRequests(ctx context.Context, limit uint) ([]domain.VirtualAccountRequest, error)
	MarkProvisioned(ctx context.Context, request *domain.VirtualAccountRequest) (*domain.VirtualAccount, error)
	MarkFailed(ctx context.Context, id string) error
}

type TrxIDSource interface {
	Next(ctx context.Context) (string, error)
}
