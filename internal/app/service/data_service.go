package service

import (
	"context"

	"go.uber.org/zap"

	"taskdesk/internal/core/ports"
)

type DataService struct {
	transfer ports.DataTransfer
}

func NewDataService(transfer ports.DataTransfer) *DataService {
	return &DataService{transfer: transfer}
}

func (s *DataService) ExportData(ctx context.Context) ([]byte, error) {
	return s.transfer.Export(ctx)
}

func (s *DataService) ImportData(ctx context.Context, document []byte) error {
	if err := s.transfer.Import(ctx, document); err != nil {
		return err
	}
	zap.L().Info("imported backup document", zap.Int("bytes", len(document)))
	return nil
}

var _ ports.DataService = (*DataService)(nil)
