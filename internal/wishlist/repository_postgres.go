package wishlist

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/wichananm65/printvogue-backend/internal/product"
)

// PostgresRepository stores the saved product ids and resolves them against
// the catalog on load, so wishlists always show current catalog data.
type PostgresRepository struct {
	db       *sql.DB
	products product.ServiceInterface
}

const (
	createWishlistsTable = `
		CREATE TABLE IF NOT EXISTS wishlists (
			session_id TEXT PRIMARY KEY,
			product_ids TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	loadWishlistQuery = `SELECT product_ids FROM wishlists WHERE session_id = $1`
	saveWishlistQuery = `
		INSERT INTO wishlists (session_id, product_ids, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET product_ids = EXCLUDED.product_ids, updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresRepository(db *sql.DB, products product.ServiceInterface) *PostgresRepository {
	return &PostgresRepository{db: db, products: products}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createWishlistsTable)
	return err
}

// Load skips ids that are no longer in the catalog.
func (r *PostgresRepository) Load(sessionID string) (State, error) {
	var ids []string
	if err := r.db.QueryRow(loadWishlistQuery, sessionID).Scan(pq.Array(&ids)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Empty(), nil
		}
		return State{}, err
	}
	s := Empty()
	for _, id := range ids {
		p, err := r.products.GetByID(id)
		if err != nil {
			continue
		}
		s.Items = append(s.Items, p)
	}
	return s, nil
}

func (r *PostgresRepository) Save(sessionID string, s State) error {
	ids := make([]string, 0, len(s.Items))
	for _, p := range s.Items {
		ids = append(ids, p.ID)
	}
	_, err := r.db.Exec(saveWishlistQuery, sessionID, pq.Array(ids), time.Now().UTC())
	return err
}
