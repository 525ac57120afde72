package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/pkg/uow"
)

// VaService управляет жизненным циклом заявок на виртуальные счета:
// прием (PENDING), выдача необработанных заявок воркеру и терминальные переходы
// PENDING → SUCCESS | ERROR.
type VaService struct {
	uow         uow.UOW
	requestRepo VirtualAccountRequestRepository
	accountRepo VirtualAccountRepository
}

func NewVaService(u uow.UOW) (*VaService, error) {
	requestRepo, reqErr := uow.GetRepositoryAs[VirtualAccountRequestRepository](
		u, uow.RepositoryName(repoargs.VirtualAccountRequestRepoName))
	if reqErr != nil {
		return nil, reqErr //nolint:wrapcheck
	}
	accountRepo, accErr := uow.GetRepositoryAs[VirtualAccountRepository](
		u, uow.RepositoryName(repoargs.VirtualAccountRepoName))
	if accErr != nil {
		return nil, accErr //nolint:wrapcheck
	}
	return &VaService{
		uow:         u,
		requestRepo: requestRepo,
		accountRepo: accountRepo,
	}, nil
}

type SubmitRequestArgs struct {
	Name        string
	Email       string
	Phone       string
	Number      string
	Description string
	Amount      decimal.Decimal
	ExpireDate  time.Time
	AccountType domain.AccountType
}

// Submit регистрирует заявку в статусе PENDING и сразу возвращает управление.
// Саму заявку в шлюз понесет фоновый обработчик; результат виден только через
// статус заявки (FindRequest).
func (s *VaService) Submit(ctx context.Context, args SubmitRequestArgs) (*domain.VirtualAccountRequest, error) {
	request, createErr := s.requestRepo.Create(ctx, repoargs.CreateVirtualAccountRequest{
		ID:          uuid.NewString(),
		Name:        args.Name,
		Email:       args.Email,
		Phone:       args.Phone,
		Number:      args.Number,
		Description: args.Description,
		Amount:      args.Amount,
		ExpireDate:  args.ExpireDate,
		AccountType: args.AccountType,
	})
	if createErr != nil {
		return nil, fmt.Errorf("submitting va request: %w", createErr)
	}
	return request, nil
}

// PendingRequests возвращает заявки, ожидающие обработки, в порядке поступления.
func (s *VaService) PendingRequests(ctx context.Context, limit uint) ([]domain.VirtualAccountRequest, error) {
	requests, err := s.requestRepo.GetPending(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return requests, nil
}

func (s *VaService) FindRequest(ctx context.Context, id string) (*domain.VirtualAccountRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return request, nil
}

func (s *VaService) FindAccountByNumber(ctx context.Context, number string) (*domain.VirtualAccount, error) {
	account, err := s.accountRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return account, nil
}

// MarkProvisioned фиксирует успешный ответ шлюза: создает запись VirtualAccount
// (копия идентификационных полей заявки, статус ACTIVE) и переводит заявку
// в SUCCESS. Обе записи пишутся в одной транзакции — частичного успеха не бывает.
func (s *VaService) MarkProvisioned(
	ctx context.Context,
	request *domain.VirtualAccountRequest,
) (*domain.VirtualAccount, error) {
	var account *domain.VirtualAccount

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accountRepo, accErr := uow.GetAs[VirtualAccountRepository](
			tx, uow.RepositoryName(repoargs.VirtualAccountRepoName))
		if accErr != nil {
			return accErr //nolint:wrapcheck
		}
		requestRepo, reqErr := uow.GetAs[VirtualAccountRequestRepository](
			tx, uow.RepositoryName(repoargs.VirtualAccountRequestRepoName))
		if reqErr != nil {
			return reqErr //nolint:wrapcheck
		}

		created, createErr := accountRepo.Create(c, repoargs.CreateVirtualAccount{
			ID:          uuid.NewString(),
			Name:        request.Name,
			Email:       request.Email,
			Phone:       request.Phone,
			Number:      request.Number,
			Description: request.Description,
			Amount:      request.Amount,
			ExpireDate:  request.ExpireDate,
			AccountType: request.AccountType,
			Status:      domain.AccountStatusActive,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		account = created

		if _, updErr := requestRepo.UpdateStatus(c, request.ID, domain.RequestStatusSuccess); updErr != nil {
			return updErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, fmt.Errorf("marking request %s provisioned: %w", request.ID, txErr)
	}
	return account, nil
}

// MarkFailed переводит заявку в терминальный статус ERROR.
func (s *VaService) MarkFailed(ctx context.Context, id string) error {
	if _, err := s.requestRepo.UpdateStatus(ctx, id, domain.RequestStatusError); err != nil {
		return fmt.Errorf("marking request %s failed: %w", id, err)
	}
	return nil
}
