package usecase

import (
	"context"

	"channel-gateway/domain/model"
	"channel-gateway/domain/repository"
)

type IDiagnosticsUsecase interface {
	Test(ctx context.Context) model.DatabaseStatus
}

type DiagnosticsUsecase struct {
	diagnosticsRepo repository.IDiagnosticsRepository
}

func NewDiagnosticsUsecase(diagnosticsRepo repository.IDiagnosticsRepository) IDiagnosticsUsecase {
	return &DiagnosticsUsecase{diagnosticsRepo: diagnosticsRepo}
}

func (d *DiagnosticsUsecase) Test(ctx context.Context) model.DatabaseStatus {
	return d.diagnosticsRepo.Probe(ctx)
}
