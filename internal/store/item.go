package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/electromart/inventory/internal/models"
)

// ItemStore provides data access for the items table.
type ItemStore struct {
	Base
}

// NewItemStore creates an ItemStore.
func NewItemStore(base Base) *ItemStore {
	return &ItemStore{Base: base}
}

// itemColumns is the select list shared by all item queries; c is the
// joined categories table.
const itemColumns = `i.id, i.category_id, i.name, i.brand, i.model, i.description,
	i.specifications, i.price, i.stock_quantity, i.sku, i.image_url,
	i.created_at, i.updated_at, c.name`

// scanItemRow scans one joined item row.
func scanItemRow(row pgx.Row) (*models.Item, error) {
	var it models.Item
	var specsJSON []byte

	if err := row.Scan(
		&it.ID, &it.CategoryID, &it.Name, &it.Brand, &it.Model, &it.Description,
		&specsJSON, &it.Price, &it.StockQuantity, &it.SKU, &it.ImageURL,
		&it.CreatedAt, &it.UpdatedAt, &it.CategoryName,
	); err != nil {
		return nil, err
	}

	if specsJSON != nil {
		if err := json.Unmarshal(specsJSON, &it.Specifications); err != nil {
			return nil, fmt.Errorf("unmarshaling specifications: %w", err)
		}
	}

	return &it, nil
}

// collectItems drains a rows result set of joined item rows.
func collectItems(rows pgx.Rows) ([]models.Item, error) {
	defer rows.Close()

	var items []models.Item

	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		items = append(items, *it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return items, nil
}

// marshalSpecs serializes the specification map, or nil when empty.
func marshalSpecs(specs map[string]any) ([]byte, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	b, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshaling specifications: %w", err)
	}

	return b, nil
}

// List returns all items joined with their category name, ordered by name.
func (s *ItemStore) List(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id ORDER BY i.name`,
		itemColumns,
	))
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	return collectItems(rows)
}

// Get returns a single item by ID joined with its category name.
func (s *ItemStore) Get(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	it, err := scanItemRow(s.Pool.QueryRow(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id WHERE i.id = $1`,
		itemColumns,
	), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrItemNotFound
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return it, nil
}

// ListByCategory returns a category's items ordered by name.
func (s *ItemStore) ListByCategory(ctx context.Context, categoryID int64) ([]models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id
		 WHERE i.category_id = $1 ORDER BY i.name`,
		itemColumns,
	), categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing items by category: %w", err)
	}

	return collectItems(rows)
}

// Create inserts an item and returns the stored row.
func (s *ItemStore) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	specsJSON, err := marshalSpecs(in.Specifications)
	if err != nil {
		return nil, err
	}

	var id int64

	err = s.Pool.QueryRow(ctx,
		`INSERT INTO items (category_id, name, brand, model, description,
			specifications, price, stock_quantity, sku, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		in.CategoryID, in.Name, in.Brand, in.Model, in.Description,
		specsJSON, in.Price, in.StockQuantity, in.SKU, in.ImageURL,
	).Scan(&id)
	if err != nil {
		switch sqlState(err) {
		case sqlstateUniqueViolation:
			return nil, models.ErrDuplicateSKU
		case sqlstateForeignKeyViolation:
			return nil, models.ErrInvalidCategory
		}

		return nil, fmt.Errorf("inserting item: %w", err)
	}

	return s.Get(ctx, id)
}

// Update overwrites all mutable item fields and bumps updated_at.
func (s *ItemStore) Update(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	specsJSON, err := marshalSpecs(in.Specifications)
	if err != nil {
		return nil, err
	}

	tag, err := s.Pool.Exec(ctx,
		`UPDATE items SET
			category_id = $1, name = $2, brand = $3, model = $4, description = $5,
			specifications = $6, price = $7, stock_quantity = $8, sku = $9,
			image_url = $10, updated_at = now()
		 WHERE id = $11`,
		in.CategoryID, in.Name, in.Brand, in.Model, in.Description,
		specsJSON, in.Price, in.StockQuantity, in.SKU, in.ImageURL, id,
	)
	if err != nil {
		switch sqlState(err) {
		case sqlstateUniqueViolation:
			return nil, models.ErrDuplicateSKU
		case sqlstateForeignKeyViolation:
			return nil, models.ErrInvalidCategory
		}

		return nil, fmt.Errorf("updating item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, models.ErrItemNotFound
	}

	return s.Get(ctx, id)
}

// Delete removes an item and returns the deleted row (the caller redirects
// to its category page).
func (s *ItemStore) Delete(ctx context.Context, id int64) (*models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tag, err := s.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, models.ErrItemNotFound
	}

	return it, nil
}

// Search matches the query against item name, brand, model, description
// and category name, case-insensitively.
func (s *ItemStore) Search(ctx context.Context, query string) ([]models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pattern := "%" + query + "%"

	rows, err := s.Pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id
		 WHERE i.name ILIKE $1
		    OR i.brand ILIKE $1
		    OR i.model ILIKE $1
		    OR i.description ILIKE $1
		    OR c.name ILIKE $1
		 ORDER BY i.name`,
		itemColumns,
	), pattern)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}

	return collectItems(rows)
}

// LowStock returns items below the low-stock threshold, scarcest first.
func (s *ItemStore) LowStock(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id
		 WHERE i.stock_quantity < $1 ORDER BY i.stock_quantity`,
		itemColumns,
	), models.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("listing low stock items: %w", err)
	}

	return collectItems(rows)
}
