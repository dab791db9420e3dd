package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andy/playbill/internal/config"
	"github.com/andy/playbill/internal/repository"
	"github.com/andy/playbill/internal/service"
	"github.com/andy/playbill/internal/statement"
)

// App is the dependency injection container for all application components
type App struct {
	Config     *config.Config
	ConfigPath string
	Logger     *zap.Logger
	Renderer   *statement.Renderer

	// Repositories
	CatalogRepo repository.CatalogRepository
	InvoiceRepo repository.InvoiceRepository

	// Services
	StatementService service.StatementService
}

// New creates a new App instance from the config file at path
// (the default path when empty)
func New(path string) (*App, error) {
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	a.ConfigPath = path
	return a, nil
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	renderer, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	catalogRepo := repository.NewCatalogRepo(cfg.Data.PlaysPath)
	invoiceRepo := repository.NewInvoiceRepo(cfg.Data.InvoicesPath)

	statementService := service.NewStatementService(catalogRepo, invoiceRepo, renderer, logger)

	return &App{
		Config:           cfg,
		ConfigPath:       config.DefaultConfigPath(),
		Logger:           logger,
		Renderer:         renderer,
		CatalogRepo:      catalogRepo,
		InvoiceRepo:      invoiceRepo,
		StatementService: statementService,
	}, nil
}

// NewRenderer builds the statement renderer described by the config
func NewRenderer(cfg *config.Config) (*statement.Renderer, error) {
	labels, err := statement.LabelsFor(cfg.Statement.Language)
	if err != nil {
		return nil, err
	}
	tag, err := cfg.LocaleTag()
	if err != nil {
		return nil, err
	}
	return statement.New(statement.NewFormatter(cfg.Statement.CurrencySymbol, tag), labels), nil
}

// Close flushes buffered log entries
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync() // stderr may not support fsync
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(a.ConfigPath)
}

// newLogger writes console-encoded logs to stderr so stdout carries only statements
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
