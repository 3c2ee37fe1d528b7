package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/m04kA/SMC-TicketService/internal/config"
	"github.com/m04kA/SMC-TicketService/internal/domain"
	ticketStore "github.com/m04kA/SMC-TicketService/internal/infra/storage/tickets"
	reportsService "github.com/m04kA/SMC-TicketService/internal/service/reports"
	ticketprintService "github.com/m04kA/SMC-TicketService/internal/service/ticketprint"
	"github.com/m04kA/SMC-TicketService/internal/tui"
	aggregateRevenueUC "github.com/m04kA/SMC-TicketService/internal/usecase/aggregate_revenue"
	confirmBookingUC "github.com/m04kA/SMC-TicketService/internal/usecase/confirm_booking"
	exportReportUC "github.com/m04kA/SMC-TicketService/internal/usecase/export_report"
	projectGrowthUC "github.com/m04kA/SMC-TicketService/internal/usecase/project_growth"
	validatePassengerUC "github.com/m04kA/SMC-TicketService/internal/usecase/validate_passenger"
	"github.com/m04kA/SMC-TicketService/pkg/logger"
)

func main() {
	// Загружаем конфигурацию (при отсутствии файла действуют значения по умолчанию)
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TicketService...")

	// Каталог направлений неизменен до завершения процесса
	catalog := domain.NewCatalog(cfg.Catalog.Destinations)
	log.Info("Catalog loaded: %d destinations, %d sources", catalog.Len(), len(cfg.Catalog.Sources))

	// Хранилище билетов живет только в памяти процесса
	store := ticketStore.NewStore()

	// Инициализируем сервисы
	reports := reportsService.NewService(store)
	printer := ticketprintService.NewService(cfg.App.Title, cfg.Export.TicketsDir, log)

	// Инициализируем use cases
	validateUseCase := validatePassengerUC.NewUseCase(catalog, log)
	confirmUseCase := confirmBookingUC.NewUseCase(store, catalog, cfg.App.VIPName, log)
	exportUseCase := exportReportUC.NewUseCase(reports, log)
	aggregateUseCase := aggregateRevenueUC.NewUseCase(store, log)
	growthUseCase := projectGrowthUC.NewUseCase()

	// Собираем модель интерфейса
	model := tui.New(tui.Options{
		Title:   cfg.App.Title,
		Tagline: cfg.App.Tagline,
		CSVPath: cfg.Export.CSVPath,
		Growth: tui.GrowthParams{
			BaseYear:   cfg.Growth.BaseYear,
			Years:      cfg.Growth.HorizonYears,
			AnnualRate: cfg.Growth.AnnualRate,
		},
		Sources:      cfg.Catalog.Sources,
		Destinations: catalog.Names(),
		Validator:    validateUseCase,
		Confirmer:    confirmUseCase,
		Exporter:     exportUseCase,
		Aggregator:   aggregateUseCase,
		Projector:    growthUseCase,
		Reports:      reports,
		Tickets:      store,
		Printer:      printer,
		Logger:       log,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal("UI terminated with error: %v", err)
	}

	log.Info("SMC-TicketService stopped")
}
