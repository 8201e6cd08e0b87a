package domain

// Purchase represents one user's set of owned game ids, in purchase order
type Purchase struct {
	UserID     int
	OwnedGames []int
}

// Owns reports whether the user already owns the given game id.
func (p *Purchase) Owns(gameID int) bool {
	for _, id := range p.OwnedGames {
		if id == gameID {
			return true
		}
	}
	return false
}

// AddGame appends a game id to the owned list. Callers check Owns first;
// the ledger itself never deduplicates.
func (p *Purchase) AddGame(gameID int) {
	p.OwnedGames = append(p.OwnedGames, gameID)
}

// PurchaseRepository defines the interface for ledger data
type PurchaseRepository interface {
	LoadAll() ([]Purchase, error)
	SaveAll(purchases []Purchase) error
}

// SessionRepository persists the active-user pointer between invocations
type SessionRepository interface {
	CurrentUserID() (int, error)
	SetCurrentUserID(id int) error
}

// CustomerUseCase defines the interface for storefront customer logic
type CustomerUseCase interface {
	ActiveUserID() (int, error)
	SelectUser(userID int) error
	ListCatalogue() ([]Game, error)
	PurchaseGame(userID, gameID int) error
	RateGame(gameID int, value float64) (*Game, error)
	OwnedGames(userID int) ([]Game, bool, error)
	RemoveOwnedGame(userID, gameID int) error
}
