package service

import (
	"fmt"

	"github.com/fsdevblog/ecollect/pkg/uow"
)

type AppServices struct {
	VaService    *VaService
	TrxIDService *TrxIDService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	vaService, vaServiceErr := NewVaService(unitOfWork)
	if vaServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", vaServiceErr.Error())
	}

	trxIDService, trxIDServiceErr := NewTrxIDService(unitOfWork)
	if trxIDServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", trxIDServiceErr.Error())
	}

	return &AppServices{
		VaService:    vaService,
		TrxIDService: trxIDService,
	}, nil
}
