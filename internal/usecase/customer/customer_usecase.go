package customer

import (
	"github.com/saradorri/gamestore/internal/domain"
	"github.com/saradorri/gamestore/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// CustomerUseCase implements domain.CustomerUseCase
type CustomerUseCase struct {
	gameRepo     domain.GameRepository
	purchaseRepo domain.PurchaseRepository
	sessionRepo  domain.SessionRepository
	logger       *logger.Logger
}

// NewCustomerUseCase creates a new customer use case
func NewCustomerUseCase(
	gameRepo domain.GameRepository,
	purchaseRepo domain.PurchaseRepository,
	sessionRepo domain.SessionRepository,
	logger *logger.Logger,
) domain.CustomerUseCase {
	return &CustomerUseCase{
		gameRepo:     gameRepo,
		purchaseRepo: purchaseRepo,
		sessionRepo:  sessionRepo,
		logger:       logger,
	}
}

// ActiveUserID returns the persisted active-user id, or a
// MISSING_ACTIVE_USER error when no user has been selected yet.
func (uc *CustomerUseCase) ActiveUserID() (int, error) {
	return uc.sessionRepo.CurrentUserID()
}

// SelectUser persists userID as the active user. Any integer is
// accepted; there is no user registry to validate against.
func (uc *CustomerUseCase) SelectUser(userID int) error {
	uc.logger.Info("Selecting active user", zap.Int("userID", userID))
	return uc.sessionRepo.SetCurrentUserID(userID)
}

// ListCatalogue returns the full catalog in file order.
func (uc *CustomerUseCase) ListCatalogue() ([]domain.Game, error) {
	return uc.gameRepo.LoadAll()
}

// PurchaseGame adds gameID to the user's owned list. A user with no
// ledger record gets one implicitly; the record is only persisted when
// the purchase succeeds. The ownership check runs before the catalog
// existence check.
func (uc *CustomerUseCase) PurchaseGame(userID, gameID int) error {
	uc.logger.Info("Purchasing game", zap.Int("userID", userID), zap.Int("gameID", gameID))

	purchases, err := uc.purchaseRepo.LoadAll()
	if err != nil {
		return err
	}

	idx := -1
	for i := range purchases {
		if purchases[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		purchases = append(purchases, domain.Purchase{UserID: userID})
		idx = len(purchases) - 1
	}

	if purchases[idx].Owns(gameID) {
		uc.logger.Warn("Game already owned", zap.Int("userID", userID), zap.Int("gameID", gameID))
		return domain.NewAppError(domain.ErrCodeAlreadyOwned, "You already own this game.", nil)
	}

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return err
	}
	exists := false
	for _, g := range games {
		if g.ID == gameID {
			exists = true
			break
		}
	}
	if !exists {
		uc.logger.Warn("Game not found", zap.Int("gameID", gameID))
		return domain.NewAppError(domain.ErrCodeGameNotFound, "Game ID not found.", nil)
	}

	purchases[idx].AddGame(gameID)
	if err := uc.purchaseRepo.SaveAll(purchases); err != nil {
		return err
	}

	uc.logger.Info("Game purchased", zap.Int("userID", userID), zap.Int("gameID", gameID))
	return nil
}

// RateGame folds value into the game's running mean rating. The rating
// is not tied to any user and there is no ownership check.
func (uc *CustomerUseCase) RateGame(gameID int, value float64) (*domain.Game, error) {
	uc.logger.Info("Rating game", zap.Int("gameID", gameID), zap.Float64("rating", value))

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	for i := range games {
		if games[i].ID != gameID {
			continue
		}
		games[i].ApplyRating(value)
		if err := uc.gameRepo.SaveAll(games); err != nil {
			return nil, err
		}
		uc.logger.Info("Game rated",
			zap.Int("gameID", gameID),
			zap.Float64("rating", games[i].Rating),
			zap.Int("ratingCount", games[i].RatingCount))
		return &games[i], nil
	}

	uc.logger.Warn("Game not found", zap.Int("gameID", gameID))
	return nil, domain.NewAppError(domain.ErrCodeGameNotFound, "Game ID not found.", nil)
}

// OwnedGames returns the user's owned games resolved against the
// catalog. Ids that no longer resolve are silently skipped. The second
// return value reports whether the user has a ledger record at all.
func (uc *CustomerUseCase) OwnedGames(userID int) ([]domain.Game, bool, error) {
	purchases, err := uc.purchaseRepo.LoadAll()
	if err != nil {
		return nil, false, err
	}

	var record *domain.Purchase
	for i := range purchases {
		if purchases[i].UserID == userID {
			record = &purchases[i]
			break
		}
	}
	if record == nil {
		return nil, false, nil
	}

	games, err := uc.gameRepo.LoadAll()
	if err != nil {
		return nil, false, err
	}
	byID := make(map[int]domain.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	var owned []domain.Game
	for _, gid := range record.OwnedGames {
		if g, ok := byID[gid]; ok {
			owned = append(owned, g)
		}
	}
	return owned, true, nil
}

// RemoveOwnedGame rebuilds the user's owned list without gameID,
// preserving the order of the remaining ids. The record stays in the
// ledger even when it becomes empty.
func (uc *CustomerUseCase) RemoveOwnedGame(userID, gameID int) error {
	uc.logger.Info("Removing owned game", zap.Int("userID", userID), zap.Int("gameID", gameID))

	purchases, err := uc.purchaseRepo.LoadAll()
	if err != nil {
		return err
	}

	for i := range purchases {
		if purchases[i].UserID != userID {
			continue
		}

		owned := make([]int, 0, len(purchases[i].OwnedGames))
		found := false
		for _, gid := range purchases[i].OwnedGames {
			if gid == gameID {
				found = true
				continue
			}
			owned = append(owned, gid)
		}
		if !found {
			uc.logger.Warn("Game not owned", zap.Int("userID", userID), zap.Int("gameID", gameID))
			return domain.NewAppError(domain.ErrCodeNotOwned, "You do not own this game.", nil)
		}

		purchases[i].OwnedGames = owned
		if err := uc.purchaseRepo.SaveAll(purchases); err != nil {
			return err
		}

		uc.logger.Info("Owned game removed", zap.Int("userID", userID), zap.Int("gameID", gameID))
		return nil
	}

	uc.logger.Warn("User has no ledger record", zap.Int("userID", userID))
	return domain.NewAppError(domain.ErrCodeNoOwnedGames, "You do not own any games yet.", nil)
}
