package equipment

import (
	"fmt"
	"sync"

	"armory/core/mathutil"
	"armory/feature/equipment/models"
)

// Overrides are global transform values that, when set, replace the
// per-item offsets of every equipped item. They exist for live calibration
// of assets. A nil field is unset.
type Overrides struct {
	Rotation *mathutil.Vec3 `json:"rotation"`
	Position *mathutil.Vec3 `json:"position"`
	Scale    *float64       `json:"scale"`
}

func (o Overrides) clone() Overrides {
	return Overrides{
		Rotation: cloneVec(o.Rotation),
		Position: cloneVec(o.Position),
		Scale:    cloneFloat(o.Scale),
	}
}

// Snapshot is an immutable copy of an equipment state.
type Snapshot struct {
	// Equipped maps every slot to its item, nil for an empty slot.
	Equipped  map[models.Slot]*models.ItemDefinition `json:"equipped"`
	Overrides Overrides                              `json:"overrides"`
}

// Item returns the item in a slot, or nil.
func (s Snapshot) Item(slot models.Slot) *models.ItemDefinition {
	return s.Equipped[slot]
}

// EquippedItems lists the occupied slots in slot declaration order.
func (s Snapshot) EquippedItems() []models.EquippedItem {
	items := make([]models.EquippedItem, 0, models.SlotCount)
	for _, slot := range models.Slots {
		if item := s.Equipped[slot]; item != nil {
			items = append(items, models.EquippedItem{Slot: slot, Item: *item, BoneName: item.AttachBone})
		}
	}
	return items
}

// Observer is notified with a snapshot after every state mutation.
type Observer func(Snapshot)

type subscription struct {
	id int
	fn Observer
}

// State is the mutable equipment of one viewer session: at most one item
// per slot plus the global overrides. It is safe for concurrent use; every
// mutation is applied under a single lock so the one-item-per-slot
// invariant holds with concurrent writers.
type State struct {
	mu        sync.Mutex
	equipped  [models.SlotCount]*models.ItemDefinition
	overrides Overrides
	observers []subscription
	nextID    int
}

// NewState creates a state with every slot empty and no overrides.
func NewState() *State {
	return &State{}
}

// Subscribe registers an observer called after each mutation, outside the
// state lock. The returned function removes it.
func (s *State) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Equip places item in its slot, replacing whatever was there.
// It only fails for an item whose slot is not a known slot.
func (s *State) Equip(item models.ItemDefinition) error {
	idx := item.Slot.Index()
	if idx < 0 {
		return fmt.Errorf("%w: %q", models.ErrInvalidSlot, item.Slot)
	}
	s.mutate(func() {
		s.equipped[idx] = &item
	})
	return nil
}

// Unequip empties a slot. Emptying an empty slot is a no-op.
func (s *State) Unequip(slot models.Slot) error {
	idx := slot.Index()
	if idx < 0 {
		return fmt.Errorf("%w: %q", models.ErrInvalidSlot, slot)
	}
	s.mutate(func() {
		s.equipped[idx] = nil
	})
	return nil
}

// IsEquipped reports whether the item in item's slot has the same path.
// Items compare by path so reloaded catalog entries still match.
func (s *State) IsEquipped(item models.ItemDefinition) bool {
	idx := item.Slot.Index()
	if idx < 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur := s.equipped[idx]
	return cur != nil && cur.Path == item.Path
}

// Equipped returns the item in a slot, or nil.
func (s *State) Equipped(slot models.Slot) *models.ItemDefinition {
	idx := slot.Index()
	if idx < 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur := s.equipped[idx]; cur != nil {
		item := *cur
		return &item
	}
	return nil
}

// EquippedItems lists every occupied slot in slot declaration order, pairing
// each item with its catalog attach bone.
func (s *State) EquippedItems() []models.EquippedItem {
	return s.Snapshot().EquippedItems()
}

// ClearAll empties every slot. Overrides are left untouched.
func (s *State) ClearAll() {
	s.mutate(func() {
		s.equipped = [models.SlotCount]*models.ItemDefinition{}
	})
}

// SetRotationOverride replaces the rotation override; nil clears it.
func (s *State) SetRotationOverride(rotation *mathutil.Vec3) {
	v := cloneVec(rotation)
	s.mutate(func() { s.overrides.Rotation = v })
}

// SetPositionOverride replaces the position override; nil clears it.
func (s *State) SetPositionOverride(position *mathutil.Vec3) {
	v := cloneVec(position)
	s.mutate(func() { s.overrides.Position = v })
}

// SetScaleOverride replaces the scale override; nil clears it.
func (s *State) SetScaleOverride(scale *float64) {
	v := cloneFloat(scale)
	s.mutate(func() { s.overrides.Scale = v })
}

// SetOverrides replaces all three overrides in one mutation.
func (s *State) SetOverrides(o Overrides) {
	v := o.clone()
	s.mutate(func() { s.overrides = v })
}

// RotationOverride returns the rotation override, or nil when unset.
func (s *State) RotationOverride() *mathutil.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneVec(s.overrides.Rotation)
}

// PositionOverride returns the position override, or nil when unset.
func (s *State) PositionOverride() *mathutil.Vec3 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneVec(s.overrides.Position)
}

// ScaleOverride returns the scale override, or nil when unset.
func (s *State) ScaleOverride() *float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneFloat(s.overrides.Scale)
}

// Snapshot returns a copy of the whole state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *State) snapshotLocked() Snapshot {
	snap := Snapshot{
		Equipped:  make(map[models.Slot]*models.ItemDefinition, models.SlotCount),
		Overrides: s.overrides.clone(),
	}
	for i, slot := range models.Slots {
		if cur := s.equipped[i]; cur != nil {
			item := *cur
			snap.Equipped[slot] = &item
		} else {
			snap.Equipped[slot] = nil
		}
	}
	return snap
}

// mutate applies fn under the lock, then notifies observers without it.
func (s *State) mutate(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	observers := append([]subscription(nil), s.observers...)
	s.mu.Unlock()

	for _, sub := range observers {
		sub.fn(snap)
	}
}

func cloneVec(v *mathutil.Vec3) *mathutil.Vec3 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}
