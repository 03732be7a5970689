package cart

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	createCartsTable = `
		CREATE TABLE IF NOT EXISTS carts (
			session_id TEXT PRIMARY KEY,
			items jsonb NOT NULL DEFAULT '[]',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	loadCartQuery = `SELECT items FROM carts WHERE session_id = $1`
	saveCartQuery = `
		INSERT INTO carts (session_id, items, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (session_id) DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createCartsTable)
	return err
}

// Load reads the stored line items and recomputes the derived totals.
func (r *PostgresRepository) Load(sessionID string) (State, error) {
	var raw []byte
	if err := r.db.QueryRow(loadCartQuery, sessionID).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Empty(), nil
		}
		return State{}, err
	}
	var items []LineItem
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return State{}, err
		}
	}
	return withTotals(items), nil
}

func (r *PostgresRepository) Save(sessionID string, s State) error {
	items := s.Items
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(saveCartQuery, sessionID, string(raw), time.Now().UTC())
	return err
}
