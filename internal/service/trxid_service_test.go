package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/ecollect/internal/domain"
	"github.com/fsdevblog/ecollect/internal/repository/repoargs"
	"github.com/fsdevblog/ecollect/internal/service/mocks"
	"github.com/fsdevblog/ecollect/pkg/uow"
	uowmocks "github.com/fsdevblog/ecollect/pkg/uow/mocks"
)

type TrxIDServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUOW     *uowmocks.MockUOW
	mockNumbers *mocks.MockRunningNumberRepository
	service     *TrxIDService
}

func TestTrxIDServiceSuite(t *testing.T) {
	suite.Run(t, new(TrxIDServiceTestSuite))
}

func (s *TrxIDServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockNumbers = mocks.NewMockRunningNumberRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RunningNumberRepoName)).
		Return(s.mockNumbers, nil).AnyTimes()

	service, servErr := NewTrxIDService(s.mockUOW)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *TrxIDServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *TrxIDServiceTestSuite) TestNext() {
	var gotPrefix string
	s.mockNumbers.EXPECT().
		Next(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix string) (int64, error) {
			gotPrefix = prefix
			return 7, nil
		})

	trxID, err := s.service.Next(s.T().Context())
	s.Require().NoError(err)

	// префикс — сегодняшняя дата в поясе шлюза
	s.Equal(time.Now().In(domain.GatewayTimezone).Format("20060102"), gotPrefix)
	// номер дополнен нулями до 6 знаков
	s.Equal(gotPrefix+"000007", trxID)
	s.Regexp(regexp.MustCompile(`^\d{14}$`), trxID)
}

// TestNext_Unique последовательные номера счетчика дают разные идентификаторы.
func (s *TrxIDServiceTestSuite) TestNext_Unique() {
	var number int64
	s.mockNumbers.EXPECT().
		Next(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string) (int64, error) {
			number++
			return number, nil
		}).Times(2)

	first, firstErr := s.service.Next(s.T().Context())
	s.Require().NoError(firstErr)
	second, secondErr := s.service.Next(s.T().Context())
	s.Require().NoError(secondErr)

	s.NotEqual(first, second)
}

// TestNext_CounterUnavailable недоступный счетчик — ошибка: воркфлоу обязан
// упасть, а не выдать неуникальный идентификатор.
func (s *TrxIDServiceTestSuite) TestNext_CounterUnavailable() {
	s.mockNumbers.EXPECT().
		Next(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	_, err := s.service.Next(s.T().Context())
	s.Error(err)
}
