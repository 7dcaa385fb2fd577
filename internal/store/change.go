package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/electromart/inventory/internal/diff"
	"github.com/electromart/inventory/internal/models"
)

// ChangeStore provides data access for the item_changes audit trail.
//
// The audit trail is optionally provisioned: the read methods probe for
// the table and return empty results when it does not exist, so item and
// category browsing keeps working on databases that predate the audit
// migration.
type ChangeStore struct {
	Base
}

// NewChangeStore creates a ChangeStore.
func NewChangeStore(base Base) *ChangeStore {
	return &ChangeStore{Base: base}
}

// defaultRecentLimit caps the global recent-changes feed.
const defaultRecentLimit = 100

// tableExists probes information_schema for the item_changes table.
func (s *ChangeStore) tableExists(ctx context.Context) (bool, error) {
	var exists bool

	err := s.Pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT FROM information_schema.tables WHERE table_name = 'item_changes'
		)`,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probing for item_changes table: %w", err)
	}

	return exists, nil
}

// Record inserts one audit row per field change, all timestamped by the
// database at insert time. An empty change set inserts nothing.
func (s *ChangeStore) Record(ctx context.Context, itemID int64, changes []diff.FieldChange, actor string) error {
	if len(changes) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var actorPtr *string
	if actor != "" {
		actorPtr = &actor
	}

	valueParts := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)*5)

	for i, c := range changes {
		base := i*5 + 1
		valueParts = append(valueParts, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d)",
			base, base+1, base+2, base+3, base+4,
		))
		args = append(args, itemID, c.Field, c.Old, c.New, actorPtr)
	}

	sql := `INSERT INTO item_changes (item_id, field_name, old_value, new_value, changed_by)
		VALUES ` + strings.Join(valueParts, ", ")

	if _, err := s.Pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("inserting item changes: %w", err)
	}

	return nil
}

// ItemHistory returns all audit records for an item, newest first.
// Returns an empty slice when the audit trail is not provisioned.
func (s *ChangeStore) ItemHistory(ctx context.Context, itemID int64) ([]models.ChangeRecord, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	exists, err := s.tableExists(ctx)
	if err != nil {
		return nil, err
	}

	if !exists {
		s.Log.Debug("item_changes table not provisioned, returning empty history")

		return nil, nil
	}

	rows, err := s.Pool.Query(ctx,
		`SELECT id, item_id, field_name, old_value, new_value, changed_at, changed_by
		 FROM item_changes
		 WHERE item_id = $1
		 ORDER BY changed_at DESC, id DESC`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying item history: %w", err)
	}
	defer rows.Close()

	var records []models.ChangeRecord

	for rows.Next() {
		var r models.ChangeRecord

		if err := rows.Scan(
			&r.ID, &r.ItemID, &r.FieldName, &r.OldValue, &r.NewValue,
			&r.ChangedAt, &r.ChangedBy,
		); err != nil {
			return nil, fmt.Errorf("scanning change row: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating change rows: %w", err)
	}

	return records, nil
}

// RecentChanges returns the most recent audit records across all items,
// newest first, enriched with item and category names. Returns an empty
// slice when the audit trail is not provisioned.
func (s *ChangeStore) RecentChanges(ctx context.Context, limit int) ([]models.ChangeRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	exists, err := s.tableExists(ctx)
	if err != nil {
		return nil, err
	}

	if !exists {
		s.Log.Debug("item_changes table not provisioned, returning empty recent changes")

		return nil, nil
	}

	rows, err := s.Pool.Query(ctx,
		`SELECT ic.id, ic.item_id, ic.field_name, ic.old_value, ic.new_value,
			ic.changed_at, ic.changed_by, i.name, c.name
		 FROM item_changes ic
		 JOIN items i ON ic.item_id = i.id
		 JOIN categories c ON i.category_id = c.id
		 ORDER BY ic.changed_at DESC, ic.id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying recent changes: %w", err)
	}
	defer rows.Close()

	var records []models.ChangeRecord

	for rows.Next() {
		var r models.ChangeRecord

		if err := rows.Scan(
			&r.ID, &r.ItemID, &r.FieldName, &r.OldValue, &r.NewValue,
			&r.ChangedAt, &r.ChangedBy, &r.ItemName, &r.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scanning recent change row: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recent change rows: %w", err)
	}

	return records, nil
}
