package repository

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/saradorri/gamestore/internal/domain"
)

// PurchaseRepository implements domain.PurchaseRepository over the
// ledger file: one line per user, "userId gameId1 gameId2 ...".
type PurchaseRepository struct {
	path string
}

// NewPurchaseRepository creates a new ledger repository
func NewPurchaseRepository(path string) domain.PurchaseRepository {
	return &PurchaseRepository{path: path}
}

// LoadAll reads the whole ledger into memory. A missing file is an
// empty ledger, not an error.
func (r *PurchaseRepository) LoadAll() ([]domain.Purchase, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.NewAppError(domain.ErrCodeStoreRead, "Failed to read purchase ledger", err)
	}
	defer f.Close()

	var purchases []domain.Purchase
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		var p domain.Purchase
		p.UserID, _ = strconv.Atoi(tokens[0])
		for _, tok := range tokens[1:] {
			id, _ := strconv.Atoi(tok)
			p.OwnedGames = append(p.OwnedGames, id)
		}
		purchases = append(purchases, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeStoreRead, "Failed to read purchase ledger", err)
	}
	return purchases, nil
}

// SaveAll serializes the full ledger, overwriting prior contents.
func (r *PurchaseRepository) SaveAll(purchases []domain.Purchase) error {
	var b strings.Builder
	for _, p := range purchases {
		b.WriteString(strconv.Itoa(p.UserID))
		for _, id := range p.OwnedGames {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(id))
		}
		b.WriteByte('\n')
	}

	if err := writeFile(r.path, b.String()); err != nil {
		return domain.NewAppError(domain.ErrCodeStoreWrite, "Failed to write purchase ledger", err)
	}
	return nil
}
