package equipment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"armory/core/mathutil"
	"armory/feature/equipment/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSessionNotFound is returned for unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

// Store persists equipment sessions.
type Store interface {
	// Load returns the record for id, or ErrSessionNotFound.
	Load(ctx context.Context, id string) (*models.SessionRecord, error)
	// Save inserts or replaces a record.
	Save(ctx context.Context, rec *models.SessionRecord) error
}

// GormStore is a Store backed by the 'equipment_sessions' table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on an open database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the sessions table.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.SessionRecord{}); err != nil {
		return fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	return nil
}

// Load returns the record for id.
func (s *GormStore) Load(ctx context.Context, id string) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return &rec, nil
}

// Save upserts a record.
func (s *GormStore) Save(ctx context.Context, rec *models.SessionRecord) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", rec.ID, err)
	}
	return nil
}

// recordFromSnapshot converts a snapshot into its table row.
func recordFromSnapshot(id string, snap Snapshot) (*models.SessionRecord, error) {
	rec := &models.SessionRecord{ID: id, ScaleOverride: cloneFloat(snap.Overrides.Scale)}
	for _, slot := range models.Slots {
		if item := snap.Item(slot); item != nil {
			rec.SetSlotPath(slot, item.Path)
		}
	}

	var err error
	if rec.RotationOverride, err = encodeVec(snap.Overrides.Rotation); err != nil {
		return nil, err
	}
	if rec.PositionOverride, err = encodeVec(snap.Overrides.Position); err != nil {
		return nil, err
	}
	return rec, nil
}

// stateFromRecord rebuilds a state from its row. Paths that are no longer in
// the catalog are skipped and returned so the caller can report them.
func stateFromRecord(rec *models.SessionRecord, catalog *Catalog) (*State, []string, error) {
	st := NewState()
	var dropped []string

	for _, slot := range models.Slots {
		path := rec.SlotPath(slot)
		if path == "" {
			continue
		}
		item, err := catalog.Lookup(path)
		if err != nil || item.Slot != slot {
			dropped = append(dropped, path)
			continue
		}
		if err := st.Equip(item); err != nil {
			return nil, nil, err
		}
	}

	rotation, err := decodeVec(rec.RotationOverride)
	if err != nil {
		return nil, nil, fmt.Errorf("session %s: rotation_override: %w", rec.ID, err)
	}
	position, err := decodeVec(rec.PositionOverride)
	if err != nil {
		return nil, nil, fmt.Errorf("session %s: position_override: %w", rec.ID, err)
	}
	st.SetOverrides(Overrides{Rotation: rotation, Position: position, Scale: rec.ScaleOverride})

	return st, dropped, nil
}

func encodeVec(v *mathutil.Vec3) (*string, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode override: %w", err)
	}
	s := string(raw)
	return &s, nil
}

func decodeVec(s *string) (*mathutil.Vec3, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	var v mathutil.Vec3
	if err := json.Unmarshal([]byte(*s), &v); err != nil {
		return nil, err
	}
	return &v, nil
}
