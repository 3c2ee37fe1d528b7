package export_report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
)

// UseCase use case экспорта отчета о бронированиях в CSV-файл
type UseCase struct {
	source ReportSource
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(source ReportSource, logger Logger) *UseCase {
	return &UseCase{
		source: source,
		logger: logger,
	}
}

// Execute записывает заголовок и все бронирования в файл req.Path
// Пустое хранилище — ошибка до какого-либо обращения к файловой системе.
// Файл закрывается на всех путях выхода, включая ошибку записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем, что есть что экспортировать
	rows := uc.source.Rows(ctx)
	if len(rows) == 0 {
		uc.logger.Warn("ExportReport: store is empty, nothing to export")
		return nil, ErrNoTickets
	}

	// 2. Создаем файл (существующий перезаписывается целиком)
	f, err := os.Create(req.Path)
	if err != nil {
		uc.logger.Error("ExportReport: failed to create %s: %v", req.Path, err)
		return nil, fmt.Errorf("%w: create %s: %v", ErrIO, req.Path, err)
	}
	defer f.Close()

	// 3. Пишем заголовок и строки
	w := csv.NewWriter(f)
	if err := w.Write(uc.source.Header()); err != nil {
		uc.logger.Error("ExportReport: failed to write header: %v", err)
		return nil, fmt.Errorf("%w: write header: %v", ErrIO, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			uc.logger.Error("ExportReport: failed to write row: %v", err)
			return nil, fmt.Errorf("%w: write row: %v", ErrIO, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		uc.logger.Error("ExportReport: failed to flush %s: %v", req.Path, err)
		return nil, fmt.Errorf("%w: flush %s: %v", ErrIO, req.Path, err)
	}

	uc.logger.Info("ExportReport: wrote %d rows to %s", len(rows), req.Path)

	return &Response{
		Path: req.Path,
		Rows: len(rows),
	}, nil
}
