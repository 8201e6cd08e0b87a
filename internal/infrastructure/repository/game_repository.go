package repository

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/saradorri/gamestore/internal/domain"
)

// GameRepository implements domain.GameRepository over the catalog file.
//
// The catalog is line-oriented: a count header, then three lines per game
// (id; title; "price rating ratingCount"). Every save rewrites the file in
// full; there is no partial update.
type GameRepository struct {
	path string
}

// NewGameRepository creates a new catalog repository
func NewGameRepository(path string) domain.GameRepository {
	return &GameRepository{path: path}
}

// LoadAll reads the whole catalog into memory. A missing file is an
// empty catalog, not an error.
func (r *GameRepository) LoadAll() ([]domain.Game, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.NewAppError(domain.ErrCodeStoreRead, "Failed to read game catalog", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, nil
	}
	count, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	games := make([]domain.Game, 0, count)
	for i := 0; i < count; i++ {
		var g domain.Game
		if !scanner.Scan() {
			break
		}
		g.ID, _ = strconv.Atoi(strings.TrimSpace(scanner.Text()))

		if !scanner.Scan() {
			break
		}
		g.Title = scanner.Text()

		if !scanner.Scan() {
			break
		}
		if fields := strings.Fields(scanner.Text()); len(fields) == 3 {
			g.Price, _ = strconv.ParseFloat(fields[0], 64)
			g.Rating, _ = strconv.ParseFloat(fields[1], 64)
			g.RatingCount, _ = strconv.Atoi(fields[2])
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeStoreRead, "Failed to read game catalog", err)
	}
	return games, nil
}

// SaveAll serializes the full catalog, overwriting prior contents.
func (r *GameRepository) SaveAll(games []domain.Game) error {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(games)))
	b.WriteByte('\n')
	for _, g := range games {
		b.WriteString(strconv.Itoa(g.ID))
		b.WriteByte('\n')
		b.WriteString(g.Title)
		b.WriteByte('\n')
		b.WriteString(formatFloat(g.Price))
		b.WriteByte(' ')
		b.WriteString(formatFloat(g.Rating))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(g.RatingCount))
		b.WriteByte('\n')
	}

	if err := writeFile(r.path, b.String()); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreWrite, "Failed to write game catalog", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
