package domain

// Game represents one entry of the storefront catalog
type Game struct {
	ID          int
	Title       string
	Price       float64
	Rating      float64
	RatingCount int
}

// ApplyRating folds a submitted rating into the running mean and
// bumps the rating count.
func (g *Game) ApplyRating(value float64) {
	g.Rating = (g.Rating*float64(g.RatingCount) + value) / float64(g.RatingCount+1)
	g.RatingCount++
}

// GameRepository defines the interface for catalog data
type GameRepository interface {
	LoadAll() ([]Game, error)
	SaveAll(games []Game) error
}

// OwnedItem is one resolved entry of a user's library. Deleted marks
// ids that no longer resolve against the catalog.
type OwnedItem struct {
	GameID  int
	Title   string
	Deleted bool
}

// PurchaseView pairs a ledger record with its resolved titles
type PurchaseView struct {
	UserID int
	Items  []OwnedItem
}

// AdminUseCase defines the interface for catalog maintenance logic
type AdminUseCase interface {
	AddGame(title string, price float64) (*Game, error)
	EditGame(id int, field, value string) error
	DeleteGame(id int) error
	ListGames() ([]Game, error)
	ListPurchases() ([]PurchaseView, error)
}
