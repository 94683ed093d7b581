package models

import "time"

// SessionRecord represents the 'equipment_sessions' table.
// Equipped items are stored by catalog path; overrides are JSON arrays or NULL.
type SessionRecord struct {
	ID               string    `gorm:"column:id;type:varchar(36);primaryKey"`
	MainHand         string    `gorm:"column:main_hand;type:varchar(512)"`
	OffHand          string    `gorm:"column:off_hand;type:varchar(512)"`
	Back             string    `gorm:"column:back;type:varchar(512)"`
	RotationOverride *string   `gorm:"column:rotation_override;type:varchar(128)"`
	PositionOverride *string   `gorm:"column:position_override;type:varchar(128)"`
	ScaleOverride    *float64  `gorm:"column:scale_override;type:double"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for sessions.
func (SessionRecord) TableName() string {
	return "equipment_sessions"
}

// SlotPath returns the stored item path for a slot.
func (r SessionRecord) SlotPath(s Slot) string {
	switch s {
	case SlotMainHand:
		return r.MainHand
	case SlotOffHand:
		return r.OffHand
	case SlotBack:
		return r.Back
	default:
		return ""
	}
}

// SetSlotPath stores the item path for a slot.
func (r *SessionRecord) SetSlotPath(s Slot, path string) {
	switch s {
	case SlotMainHand:
		r.MainHand = path
	case SlotOffHand:
		r.OffHand = path
	case SlotBack:
		r.Back = path
	}
}
