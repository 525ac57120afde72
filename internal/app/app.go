package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/ecollect/internal/config"
	"github.com/fsdevblog/ecollect/internal/repository/pgrepo"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/internal/service"
	"github.com/fsdevblog/ecollect/internal/transport/api"
	"github.com/fsdevblog/ecollect/internal/transport/bni"
	"github.com/fsdevblog/ecollect/internal/transport/bni/client"
	"github.com/fsdevblog/ecollect/pkg/ecrypt"
	"github.com/fsdevblog/ecollect/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app, gateway endpoint %s", a.Config.BNIServerURL)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:    a.Logger,
		VaService: services.VaService,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	gwClient := client.New(
		a.Config.BNIServerURL,
		a.Config.BNIClientID,
		a.Config.BNIClientKey,
		ecrypt.New(),
		a.Logger,
	)

	processor := bni.New(services.VaService, services.TrxIDService, gwClient, a.Config.BNIClientID, a.Logger).
		SetProvisionWorkers(5).  //nolint:mnd
		SetLimitPerIteration(50) //nolint:mnd

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	requestRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewVirtualAccountRequestRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.VirtualAccountRequestRepoName), requestRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	accountRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewVirtualAccountRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.VirtualAccountRepoName), accountRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	runningNumberRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewRunningNumberRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.RunningNumberRepoName), runningNumberRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
