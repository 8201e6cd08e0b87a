package admin

import (
	"strconv"

	"github.com/saradorri/gamestore/internal/domain"
	"github.com/saradorri/gamestore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AdminUseCase implements domain.AdminUseCase
type AdminUseCase struct {
	gameRepo     domain.GameRepository
	purchaseRepo domain.PurchaseRepository
	logger       *logger.Logger
}

// NewAdminUseCase creates a new admin use case
func NewAdminUseCase(
	gameRepo domain.GameRepository,
	purchaseRepo domain.PurchaseRepository,
	logger *logger.Logger,
) domain.AdminUseCase {
	return &AdminUseCase{
		gameRepo:     gameRepo,
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// AddGame appends a new game to the catalog. Titles are unique
// (case-sensitive exact match); ids are max+1 and never reused.
func (uc *AdminUseCase) AddGame(title string, price float64) (*domain.Game, error) {
	uc.logger.Info("Adding game", zap.String("title", title), zap.Float64("price", price))

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, g := range games {
		if g.Title == title {
			uc.logger.Warn("Duplicate game title", zap.String("title", title))
			return nil, domain.NewAppError(domain.ErrCodeDuplicateTitle, "Game title already exists. Cannot add duplicate.", nil)
		}
		if g.ID > maxID {
			maxID = g.ID
		}
	}

	game := domain.Game{
		ID:    maxID + 1,
		Title: title,
		Price: price,
	}
	games = append(games, game)

	if err := uc.gameRepo.SaveAll(games); err != nil {
		return nil, err
	}

	uc.logger.Info("Game added", zap.Int("gameID", game.ID), zap.String("title", title))
	return &game, nil
}

// EditGame mutates a single field of the targeted game. Only "title"
// and "price" are recognized; any other field name leaves the game
// untouched but still persists and reports success.
func (uc *AdminUseCase) EditGame(id int, field, value string) error {
	uc.logger.Info("Editing game", zap.Int("gameID", id), zap.String("field", field))

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return err
	}

	found := false
	for i := range games {
		if games[i].ID != id {
			continue
		}
		switch field {
		case "title":
			games[i].Title = value
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return domain.NewAppError(domain.ErrCodeInvalidUsage, "Invalid price value.", err)
			}
			games[i].Price = price
		}
		found = true
		break
	}

	if !found {
		uc.logger.Warn("Game not found", zap.Int("gameID", id))
		return domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found.", nil)
	}

	if err := uc.gameRepo.SaveAll(games); err != nil {
		return err
	}

	uc.logger.Info("Game edited", zap.Int("gameID", id), zap.String("field", field))
	return nil
}

// DeleteGame removes a game from the catalog and cascades the removal
// into every user's owned list, preserving the order of the remaining
// ids. Both files are rewritten even when the ledger is empty.
func (uc *AdminUseCase) DeleteGame(id int) error {
	uc.logger.Info("Deleting game", zap.Int("gameID", id))

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return err
	}

	remaining := make([]domain.Game, 0, len(games))
	found := false
	for _, g := range games {
		if g.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, g)
	}

	if !found {
		uc.logger.Warn("Game not found", zap.Int("gameID", id))
		return domain.NewAppError(domain.ErrCodeGameNotFound, "Game not found.", nil)
	}

	if err := uc.gameRepo.SaveAll(remaining); err != nil {
		return err
	}

	purchases, err := uc.purchaseRepo.LoadAll()
	if err != nil {
		return err
	}
	for i := range purchases {
		owned := make([]int, 0, len(purchases[i].OwnedGames))
		for _, gid := range purchases[i].OwnedGames {
			if gid != id {
				owned = append(owned, gid)
			}
		}
		purchases[i].OwnedGames = owned
	}
	if err := uc.purchaseRepo.SaveAll(purchases); err != nil {
		return err
	}

	uc.logger.Info("Game deleted and ledger updated", zap.Int("gameID", id))
	return nil
}

// ListGames returns the full catalog in file order.
func (uc *AdminUseCase) ListGames() ([]domain.Game, error) {
	return uc.gameRepo.LoadAll()
}

// ListPurchases returns every ledger record with owned ids resolved
// against the catalog. Ids that no longer resolve are kept and marked
// deleted so the caller can show a placeholder.
func (uc *AdminUseCase) ListPurchases() ([]domain.PurchaseView, error) {
	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchaseRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	titles := make(map[int]string, len(games))
	for _, g := range games {
		titles[g.ID] = g.Title
	}

	views := make([]domain.PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		view := domain.PurchaseView{UserID: p.UserID}
		for _, gid := range p.OwnedGames {
			title, ok := titles[gid]
			view.Items = append(view.Items, domain.OwnedItem{
				GameID:  gid,
				Title:   title,
				Deleted: !ok,
			})
		}
		views = append(views, view)
	}
	return views, nil
}
