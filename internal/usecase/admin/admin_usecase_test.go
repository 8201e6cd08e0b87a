package admin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saradorri/gamestore/internal/domain"
	"github.com/saradorri/gamestore/internal/infrastructure/logger"
	"github.com/saradorri/gamestore/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	uc            domain.AdminUseCase
	gameRepo      domain.GameRepository
	purchaseRepo  domain.PurchaseRepository
	gamesPath     string
	purchasesPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	gamesPath := filepath.Join(dir, "games.txt")
	purchasesPath := filepath.Join(dir, "purchases.txt")
	gameRepo := repository.NewGameRepository(gamesPath)
	purchaseRepo := repository.NewPurchaseRepository(purchasesPath)
	uc := NewAdminUseCase(gameRepo, purchaseRepo, logger.NewLogger("test", "debug"))
	return &testEnv{
		uc:            uc,
		gameRepo:      gameRepo,
		purchaseRepo:  purchaseRepo,
		gamesPath:     gamesPath,
		purchasesPath: purchasesPath,
	}
}

func assertAppErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, code, appErr.Code)
}

func TestAddGameAssignsNextID(t *testing.T) {
	env := newTestEnv(t)

	g, err := env.uc.AddGame("Chess", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, 0.0, g.Rating)
	assert.Equal(t, 0, g.RatingCount)

	g, err = env.uc.AddGame("Go", 9.99)
	require.NoError(t, err)
	assert.Equal(t, 2, g.ID)

	// Gaps in the id sequence do not get filled.
	require.NoError(t, env.gameRepo.SaveAll([]domain.Game{
		{ID: 1, Title: "Chess"},
		{ID: 8, Title: "Go"},
	}))
	g, err = env.uc.AddGame("Backgammon", 4.5)
	require.NoError(t, err)
	assert.Equal(t, 9, g.ID)
}

func TestAddGameDuplicateTitle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.AddGame("Chess", 0)
	require.NoError(t, err)

	before, err := os.ReadFile(env.gamesPath)
	require.NoError(t, err)

	_, err = env.uc.AddGame("Chess", 12.50)
	assertAppErrCode(t, err, domain.ErrCodeDuplicateTitle)

	after, err := os.ReadFile(env.gamesPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "catalog file must be untouched on duplicate add")
}

func TestAddGameTitleMatchIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.AddGame("Chess", 0)
	require.NoError(t, err)

	g, err := env.uc.AddGame("chess", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, g.ID)
}

func TestEditGame(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantTitle string
		wantPrice float64
	}{
		{name: "EditTitle", field: "title", value: "Chess II", wantTitle: "Chess II", wantPrice: 10},
		{name: "EditPrice", field: "price", value: "24.99", wantTitle: "Chess", wantPrice: 24.99},
		{name: "UnknownFieldIsNoOp", field: "publisher", value: "Acme", wantTitle: "Chess", wantPrice: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.uc.AddGame("Chess", 10)
			require.NoError(t, err)

			require.NoError(t, env.uc.EditGame(1, tt.field, tt.value))

			games, err := env.gameRepo.LoadAll()
			require.NoError(t, err)
			require.Len(t, games, 1)
			assert.Equal(t, tt.wantTitle, games[0].Title)
			assert.Equal(t, tt.wantPrice, games[0].Price)
		})
	}
}

func TestEditGameNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.uc.EditGame(99, "title", "Ghost")
	assertAppErrCode(t, err, domain.ErrCodeGameNotFound)
}

func TestDeleteGameCascadesIntoLedger(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.gameRepo.SaveAll([]domain.Game{
		{ID: 1, Title: "Chess"},
		{ID: 2, Title: "Go"},
		{ID: 3, Title: "Backgammon"},
	}))
	require.NoError(t, env.purchaseRepo.SaveAll([]domain.Purchase{
		{UserID: 7, OwnedGames: []int{1, 2, 3}},
		{UserID: 8, OwnedGames: []int{2}},
	}))

	require.NoError(t, env.uc.DeleteGame(2))

	games, err := env.gameRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 1, games[0].ID)
	assert.Equal(t, 3, games[1].ID)

	purchases, err := env.purchaseRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, []int{1, 3}, purchases[0].OwnedGames, "remaining ids keep their order")
	assert.Empty(t, purchases[1].OwnedGames)
	assert.Equal(t, 8, purchases[1].UserID, "emptied record is kept, not deleted")
}

func TestDeleteGameNotFound(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.gameRepo.SaveAll([]domain.Game{{ID: 1, Title: "Chess"}}))

	err := env.uc.DeleteGame(99)
	assertAppErrCode(t, err, domain.ErrCodeGameNotFound)
}

func TestDeleteGameRewritesEmptyLedger(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.gameRepo.SaveAll([]domain.Game{{ID: 1, Title: "Chess"}}))

	require.NoError(t, env.uc.DeleteGame(1))

	// The ledger file is written even when there was nothing to cascade.
	_, err := os.Stat(env.purchasesPath)
	assert.NoError(t, err)
}

func TestListPurchasesResolvesTitles(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.gameRepo.SaveAll([]domain.Game{{ID: 1, Title: "Chess"}}))
	require.NoError(t, env.purchaseRepo.SaveAll([]domain.Purchase{
		{UserID: 7, OwnedGames: []int{1, 99}},
	}))

	views, err := env.uc.ListPurchases()
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 2)

	assert.Equal(t, "Chess", views[0].Items[0].Title)
	assert.False(t, views[0].Items[0].Deleted)

	// Dangling ids stay visible so a placeholder can be shown.
	assert.Equal(t, 99, views[0].Items[1].GameID)
	assert.True(t, views[0].Items[1].Deleted)
}
