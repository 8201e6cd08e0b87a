package app

import (
	"context"

	"github.com/saradorri/gamestore/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup(configPath string) error
	Populate(targets ...interface{}) error
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup loads configuration from the given directory.
func (a *application) Setup(configPath string) error {
	return a.setupViper(configPath)
}

// Populate builds the object graph with all modules and fills targets
// from it. Commands run once and exit, so there is no lifecycle to
// start; the graph is only constructed.
func (a *application) Populate(targets ...interface{}) error {
	graph := fx.New(
		fx.NopLogger,
		fx.Provide(
			a.InitLogger,
			a.InitGameRepository,
			a.InitPurchaseRepository,
			a.InitSessionRepository,
			a.InitAdminUseCase,
			a.InitCustomerUseCase,
		),
		fx.Populate(targets...),
	)
	return graph.Err()
}
