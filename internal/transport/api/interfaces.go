package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/service"
)

// VaServicer интерфейс сервисного слоя для хендлеров (и их моков).
type VaServicer interface {
	Submit(ctx context.Context, args service.SubmitRequestArgs) (*domain.VirtualAccountRequest, error)
	FindRequest(ctx context.Context, id string) (*domain.VirtualAccountRequest, error)
	FindAccountByNumber(ctx context.Context, number string) (*domain.VirtualAccount, error)
}
