package service

import (
	"actlog/internal/config"
	"actlog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Log      *LogService
	Category *CategoryService
	Export   *ExportService
	Stats    *StatsService
	Config   *ConfigService
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	logsPath, err := storage.GetLogsPath()
	if err != nil {
		return nil, err
	}

	trashPath, err := storage.GetTrashPath()
	if err != nil {
		return nil, err
	}

	categoriesPath, err := storage.GetCategoriesPath()
	if err != nil {
		return nil, err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(logsPath, trashPath, categoriesPath, configPath, cfg), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(logsPath, trashPath, categoriesPath, configPath string, cfg config.Config) *Services {
	logService := NewLogService(logsPath, trashPath, cfg)
	categoryService := NewCategoryService(categoriesPath, logService)
	exportService := NewExportService(logService, categoryService)
	statsService := NewStatsService(logService, cfg)
	configService := NewConfigService(configPath, cfg)

	return &Services{
		Log:      logService,
		Category: categoryService,
		Export:   exportService,
		Stats:    statsService,
		Config:   configService,
	}
}
