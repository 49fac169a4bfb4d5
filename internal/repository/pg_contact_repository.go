package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/misionantigua/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact
// submissions. Rows are only ever inserted and listed; there is no
// update or delete path.
type ContactRepository interface {
	// Insert persists c and populates c.ID and c.CreatedAt from the
	// database RETURNING clause.
	Insert(ctx context.Context, c *model.Contact) error

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.Contact, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Insert stores a new contacts row as a single atomic statement; the
// database assigns id and created_at.
func (r *PgContactRepository) Insert(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (full_name, phone, email, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.FullName, c.Phone, c.Email, c.Subject, c.Message,
	).Scan(&c.ID, &c.CreatedAt)
}

// List returns every submission ordered by creation time descending.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, full_name, phone, email, subject, message, created_at
		 FROM contacts
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}
