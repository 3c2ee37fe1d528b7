package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения
type Config struct {
	App     AppConfig     `toml:"app"`
	Catalog CatalogConfig `toml:"catalog"`
	Growth  GrowthConfig  `toml:"growth"`
	Export  ExportConfig  `toml:"export"`
	Logs    LogsConfig    `toml:"logs"`
}

// AppConfig общие настройки приложения
type AppConfig struct {
	Title   string `toml:"title"`
	Tagline string `toml:"tagline"`
	// VIPName пассажир с этим именем (без учета регистра) едет бесплатно
	VIPName string `toml:"vip_name"`
}

// CatalogConfig каталог направлений и список пунктов отправления
type CatalogConfig struct {
	// Destinations отображение "направление -> цена билета"
	Destinations map[string]int `toml:"destinations"`
	Sources      []string       `toml:"sources"`
}

// GrowthConfig параметры модели прогноза выручки
type GrowthConfig struct {
	BaseYear     int     `toml:"base_year"`
	AnnualRate   float64 `toml:"annual_rate"`
	HorizonYears int     `toml:"horizon_years"`
}

// ExportConfig пути для экспорта отчетов и печати билетов
type ExportConfig struct {
	CSVPath    string `toml:"csv_path"`
	TicketsDir string `toml:"tickets_dir"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{
			Title:   "Sharma Travelers",
			Tagline: "Your Journey, Our Promise",
			VIPName: "achintya",
		},
		Catalog: CatalogConfig{
			Destinations: map[string]int{
				"Delhi":     1200,
				"Mumbai":    1500,
				"Kolkata":   1000,
				"Bangalore": 1800,
			},
			Sources: []string{"Delhi", "UP", "Punjab"},
		},
		Growth: GrowthConfig{
			BaseYear:     2025,
			AnnualRate:   0.10,
			HorizonYears: 6,
		},
		Export: ExportConfig{
			CSVPath:    "bookings.csv",
			TicketsDir: "tickets",
		},
		Logs: LogsConfig{
			File:  "logs/ticketservice.log",
			Level: "info",
		},
	}
}

// Load загружает конфигурацию из TOML-файла
// Если файл отсутствует, используются значения по умолчанию:
// десктопное приложение должно запускаться и без config.toml.
// Незаполненные секции файла также добираются из значений по умолчанию.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults добирает незаданные поля из конфигурации по умолчанию
// Явно заданные в файле значения не трогаются, поэтому ноль в файле
// остается нулем и отсеивается валидацией.
func (c *Config) applyDefaults() {
	def := Default()

	if c.App.Title == "" {
		c.App.Title = def.App.Title
	}
	if c.App.Tagline == "" {
		c.App.Tagline = def.App.Tagline
	}
	if c.App.VIPName == "" {
		c.App.VIPName = def.App.VIPName
	}
	if len(c.Catalog.Destinations) == 0 {
		c.Catalog.Destinations = def.Catalog.Destinations
	}
	if len(c.Catalog.Sources) == 0 {
		c.Catalog.Sources = def.Catalog.Sources
	}
	if c.Growth.BaseYear == 0 {
		c.Growth.BaseYear = def.Growth.BaseYear
	}
	if c.Growth.AnnualRate == 0 {
		c.Growth.AnnualRate = def.Growth.AnnualRate
	}
	if c.Growth.HorizonYears == 0 {
		c.Growth.HorizonYears = def.Growth.HorizonYears
	}
	if c.Export.CSVPath == "" {
		c.Export.CSVPath = def.Export.CSVPath
	}
	if c.Export.TicketsDir == "" {
		c.Export.TicketsDir = def.Export.TicketsDir
	}
	if c.Logs.File == "" {
		c.Logs.File = def.Logs.File
	}
	if c.Logs.Level == "" {
		c.Logs.Level = def.Logs.Level
	}
}

func (c *Config) validate() error {
	if len(c.Catalog.Destinations) == 0 {
		return fmt.Errorf("config: catalog.destinations must not be empty")
	}
	for name, price := range c.Catalog.Destinations {
		if name == "" {
			return fmt.Errorf("config: catalog contains a destination with an empty name")
		}
		if price <= 0 {
			return fmt.Errorf("config: destination %q has non-positive price %d", name, price)
		}
	}
	if len(c.Catalog.Sources) == 0 {
		return fmt.Errorf("config: catalog.sources must not be empty")
	}
	if c.Growth.HorizonYears <= 0 {
		return fmt.Errorf("config: growth.horizon_years must be positive, got %d", c.Growth.HorizonYears)
	}
	if c.Growth.AnnualRate < 0 {
		return fmt.Errorf("config: growth.annual_rate must not be negative, got %v", c.Growth.AnnualRate)
	}
	if c.Growth.BaseYear <= 0 {
		return fmt.Errorf("config: growth.base_year must be positive, got %d", c.Growth.BaseYear)
	}
	return nil
}
