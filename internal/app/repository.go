package app

import (
	"github.com/saradorri/gamestore/internal/domain"
	"github.com/saradorri/gamestore/internal/infrastructure/repository"
)

// InitGameRepository creates the catalog store
func (a *application) InitGameRepository() domain.GameRepository {
	return repository.NewGameRepository(a.config.Store.GamesFile)
}

// InitPurchaseRepository creates the ledger store
func (a *application) InitPurchaseRepository() domain.PurchaseRepository {
	return repository.NewPurchaseRepository(a.config.Store.PurchasesFile)
}

// InitSessionRepository creates the active-user store
func (a *application) InitSessionRepository() domain.SessionRepository {
	return repository.NewSessionRepository(a.config.Store.CurrentUserFile)
}
