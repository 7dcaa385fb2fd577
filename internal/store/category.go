package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/electromart/inventory/internal/models"
)

// CategoryStore provides data access for the categories table.
type CategoryStore struct {
	Base
}

// NewCategoryStore creates a CategoryStore.
func NewCategoryStore(base Base) *CategoryStore {
	return &CategoryStore{Base: base}
}

// List returns all categories ordered by name, each with its item count.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		`SELECT c.id, c.name, c.description, c.created_at, COUNT(i.id)
		 FROM categories c
		 LEFT JOIN items i ON i.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var c models.Category

		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return categories, nil
}

// Get returns a single category by ID.
func (s *CategoryStore) Get(ctx context.Context, id int64) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c models.Category

	err := s.Pool.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return &c, nil
}

// Create inserts a category and returns the stored row.
func (s *CategoryStore) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c models.Category

	err := s.Pool.QueryRow(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2)
		 RETURNING id, name, description, created_at`,
		in.Name, in.Description,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if sqlState(err) == sqlstateUniqueViolation {
			return nil, models.ErrDuplicateName
		}

		return nil, fmt.Errorf("inserting category: %w", err)
	}

	return &c, nil
}

// Update overwrites a category's name and description.
func (s *CategoryStore) Update(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c models.Category

	err := s.Pool.QueryRow(ctx,
		`UPDATE categories SET name = $1, description = $2 WHERE id = $3
		 RETURNING id, name, description, created_at`,
		in.Name, in.Description, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCategoryNotFound
		}

		if sqlState(err) == sqlstateUniqueViolation {
			return nil, models.ErrDuplicateName
		}

		return nil, fmt.Errorf("updating category: %w", err)
	}

	return &c, nil
}

// Delete removes a category. The items foreign key is RESTRICT, so a
// category that still has items fails with ErrCategoryHasItems.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if sqlState(err) == sqlstateForeignKeyViolation {
			return models.ErrCategoryHasItems
		}

		return fmt.Errorf("deleting category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrCategoryNotFound
	}

	return nil
}

// HasItems reports whether any item still references the category.
func (s *CategoryStore) HasItems(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int

	err := s.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE category_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("counting category items: %w", err)
	}

	return count > 0, nil
}
