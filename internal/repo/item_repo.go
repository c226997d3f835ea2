package repo

import (
	"context"

	dom "inventory/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const itemColumns = `id, name, quantity, price, description, created_at, updated_at`

// ItemRepo provides item persistence. Name uniqueness is enforced by a unique
// index, never by a read-then-write check.
type ItemRepo interface {
	Create(ctx context.Context, it dom.Item) (dom.Item, error)
	GetByID(ctx context.Context, id int64) (dom.Item, error)
	List(ctx context.Context) ([]dom.Item, error)
	Update(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PGItemRepo implements ItemRepo with Postgres.
type PGItemRepo struct {
	db *pgxpool.Pool
}

func NewPGItemRepo(db *pgxpool.Pool) *PGItemRepo {
	return &PGItemRepo{db: db}
}

func (r *PGItemRepo) Create(ctx context.Context, it dom.Item) (dom.Item, error) {
	query := `
		INSERT INTO items (name, quantity, price, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + itemColumns
	var out dom.Item
	err := r.db.QueryRow(ctx, query, it.Name, it.Quantity, it.Price, it.Description).Scan(
		&out.ID, &out.Name, &out.Quantity, &out.Price, &out.Description,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGItemRepo) GetByID(ctx context.Context, id int64) (dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it dom.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Quantity, &it.Price, &it.Description,
		&it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func (r *PGItemRepo) List(ctx context.Context) ([]dom.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Item
	for rows.Next() {
		var it dom.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.Price, &it.Description,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Update merges the patch in a single statement: nil fields fall back to the
// stored value via COALESCE, so the merge is atomic and race-free. A missing
// row surfaces as pgx.ErrNoRows, a name collision as a 23505 error.
func (r *PGItemRepo) Update(ctx context.Context, id int64, patch dom.ItemPatch) (dom.Item, error) {
	query := `
		UPDATE items SET
			name = COALESCE($2, name),
			quantity = COALESCE($3, quantity),
			price = COALESCE($4, price),
			description = COALESCE($5, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns
	var it dom.Item
	err := r.db.QueryRow(ctx, query, id, patch.Name, patch.Quantity, patch.Price, patch.Description).Scan(
		&it.ID, &it.Name, &it.Quantity, &it.Price, &it.Description,
		&it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

// Delete removes the row and reports whether anything matched
// (delete-and-check-result, no pre-read).
func (r *PGItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
