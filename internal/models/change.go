package models

import "time"

// ChangeRecord is one field-level audit entry capturing a before/after
// value for an item update. Records are append-only: created once per
// changed field per update and never mutated afterwards.
type ChangeRecord struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id"`
	FieldName string    `json:"field_name"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy *string   `json:"changed_by,omitempty"`

	// ItemName and CategoryName are populated by the global recent-changes
	// query only.
	ItemName     string `json:"item_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}
