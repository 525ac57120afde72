// Package bni обрабатывает заявки на виртуальные счета через шлюз BNI e-collection.
package bni

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecollect/internal/domain"
)

const (
	defaultServiceTimeout          = 3 * time.Second
	defaultAPITimeout              = 10 * time.Second
	defaultLimitPerIteration  uint = 100
	defaultProvisionWorkers   uint = 10
	idleIterationPauseSeconds      = 1
)

// Processor оркестратор провижининга: забирает PENDING-заявки из базы, прогоняет
// каждую через пайплайн trx id → builder → защищенный канал → классификация и
// фиксирует терминальный исход через сервисный слой. Наружу из Run не выходит
// ни одна ошибка пайплайна — любой сбой превращается в ERROR-статус заявки
// плюс запись в лог.
type Processor struct {
	client            Client
	svs               Servicer
	trxIDs            TrxIDSource
	clientID          string
	l                 *logrus.Entry
	limitPerIteration uint
	provisionWorkers  uint
}

func New(svs Servicer, trxIDs TrxIDSource, gwClient Client, clientID string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "bni",
		"module":    "processor",
	})

	return &Processor{
		client:            gwClient,
		svs:               svs,
		trxIDs:            trxIDs,
		clientID:          clientID,
		l:                 loggerEntry,
		limitPerIteration: defaultLimitPerIteration,
		provisionWorkers:  defaultProvisionWorkers,
	}
}

// SetLimitPerIteration устанавливает кол-во заявок, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetProvisionWorkers устанавливает кол-во воркеров, ходящих в шлюз параллельно.
func (p *Processor) SetProvisionWorkers(workers uint) *Processor {
	p.provisionWorkers = workers
	return p
}

// Run крутит цикл обработки до отмены контекста. Заявки между собой не упорядочены:
// воркеры ходят в шлюз параллельно, порядок завершения не гарантируется. Начатая
// итерация не отменяется на полпути — заявка доходит до терминального статуса.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"provisionWorkers":  p.provisionWorkers,
	}).Info("Starting")

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		default:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoRequests) {
					p.l.WithError(err).Error("process error")
				}
				// небольшая пауза чтоб не заддосить БД.
				time.Sleep(idleIterationPauseSeconds * time.Second)
			}
		}
	}
}

// process одна итерация: выборка PENDING-заявок, параллельная обработка,
// фиксация исходов.
func (p *Processor) process(ctx context.Context) error {
	requests, requestsErr := p.produce(ctx)
	if requestsErr != nil {
		return fmt.Errorf("process: %w", requestsErr)
	}

	results := p.runWorkers(ctx, requests)
	p.complete(ctx, results)
	return nil
}

// workerResult итог обработки одной заявки воркером. Err выставлен, если заявка
// не дошла до шлюза (недоступен счетчик trx id или заявка отклонена билдером).
type workerResult struct {
	WorkerID uint
	Request  *domain.VirtualAccountRequest
	Outcome  Outcome
	Err      error
}

// runWorkers фан-аут/фан-ин: раздает заявки воркерам и собирает результаты.
func (p *Processor) runWorkers(ctx context.Context, requests []domain.VirtualAccountRequest) []workerResult {
	var taskCh = make(chan *domain.VirtualAccountRequest, len(requests))

	for i := range requests {
		taskCh <- &requests[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.provisionWorkers)) //nolint:gosec

	var resultCh = make(chan *workerResult, len(requests))

	for i := range p.provisionWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	var results = make([]workerResult, 0, len(requests))
	for result := range resultCh {
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.VirtualAccountRequest,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask полный пайплайн одной попытки: свежий trx id (каждая попытка —
// новая транзакция в шлюзе, дедупликации нет), сборка канонического запроса,
// вызов шлюза, классификация ответа.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *domain.VirtualAccountRequest,
) *workerResult {
	result := workerResult{WorkerID: workerID, Request: task}

	trxID, trxErr := p.trxIDs.Next(ctx)
	if trxErr != nil {
		result.Err = fmt.Errorf("next trx id: %w", trxErr)
		return &result
	}

	createReq, buildErr := BuildCreateVARequest(task, p.clientID, trxID)
	if buildErr != nil {
		result.Err = buildErr
		return &result
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
	resp, callErr := p.client.CreateBilling(reqCtx, createReq)
	cancel()

	result.Outcome = Classify(resp, callErr)
	return &result
}

// complete доводит каждую заявку до терминального статуса. Ошибки персистенса
// здесь только логируются: заявка останется PENDING и попадет в следующую итерацию.
func (p *Processor) complete(ctx context.Context, results []workerResult) {
	for _, result := range results {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"requestID": result.Request.ID,
			"number":    result.Request.Number,
		})

		reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)

		switch {
		case result.Err != nil:
			l.WithError(result.Err).Error("request rejected before gateway call")
			provisionOutcomesTotal.WithLabelValues(outcomeLabelRejected).Inc()
			p.markFailed(reqCtx, l, result.Request.ID)

		case result.Outcome.Kind == OutcomeSuccess:
			if _, markErr := p.svs.MarkProvisioned(reqCtx, result.Request); markErr != nil {
				l.WithError(markErr).Error("persist provisioned virtual account")
			} else {
				l.WithField("name", result.Request.Name).Info("virtual account provisioned")
				provisionOutcomesTotal.WithLabelValues(string(OutcomeSuccess)).Inc()
			}

		default:
			l.WithError(result.Outcome.Err).
				WithField("gatewayStatus", result.Outcome.GatewayStatus).
				Error("provisioning failed")
			provisionOutcomesTotal.WithLabelValues(string(result.Outcome.Kind)).Inc()
			p.markFailed(reqCtx, l, result.Request.ID)
		}

		cancel()
	}
}

func (p *Processor) markFailed(ctx context.Context, l *logrus.Entry, requestID string) {
	if err := p.svs.MarkFailed(ctx, requestID); err != nil {
		l.WithError(err).Error("persist request error status")
	}
}

// produce выборка заявок в статусе PENDING. Возвращает ErrNoRequests, если их нет.
func (p *Processor) produce(ctx context.Context) ([]domain.VirtualAccountRequest, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	requests, requestsErr := p.svs.PendingRequests(produceCtx, p.limitPerIteration)
	if requestsErr != nil {
		return nil, fmt.Errorf("produce: %w", requestsErr)
	}

	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return requests, nil
}
