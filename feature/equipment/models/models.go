package models

import (
	"errors"
	"fmt"
	"math"

	"armory/core/mathutil"
)

// ErrInvalidSlot is returned when a slot name is not one of the known slots.
var ErrInvalidSlot = errors.New("invalid equipment slot")

// ItemType classifies an item. It does not affect bone resolution.
type ItemType string

const (
	TypeWeapon    ItemType = "weapon"
	TypeShield    ItemType = "shield"
	TypeArmor     ItemType = "armor"
	TypeAccessory ItemType = "accessory"
)

// IsValid checks if the item type is one of the known types.
func (t ItemType) IsValid() bool {
	switch t {
	case TypeWeapon, TypeShield, TypeArmor, TypeAccessory:
		return true
	default:
		return false
	}
}

// Slot identifies where an item is worn. Each slot holds at most one item.
type Slot string

const (
	SlotMainHand Slot = "mainHand"
	SlotOffHand  Slot = "offHand"
	SlotBack     Slot = "back"
)

// Slots lists every slot in declaration order. Equipped items are always
// reported in this order.
var Slots = [...]Slot{SlotMainHand, SlotOffHand, SlotBack}

// SlotCount is the number of slots.
const SlotCount = len(Slots)

// Index returns the position of the slot in Slots, or -1 for an unknown slot.
func (s Slot) Index() int {
	for i, known := range Slots {
		if s == known {
			return i
		}
	}
	return -1
}

// IsValid checks if the slot is one of the known slots.
func (s Slot) IsValid() bool {
	return s.Index() >= 0
}

// ParseSlot converts an external slot name into a Slot.
// Unknown names are a configuration error, never a silent no-op.
func ParseSlot(name string) (Slot, error) {
	s := Slot(name)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, name)
	}
	return s, nil
}

// ItemDefinition is an immutable catalog entry describing an equippable item
// and how it attaches to a character skeleton.
type ItemDefinition struct {
	// Name is the display identifier, unique within the catalog.
	Name string `json:"name" yaml:"name"`
	// Path is the opaque asset reference. It is the equality key for items.
	Path string `json:"path" yaml:"path"`
	// Type is the item classification.
	Type ItemType `json:"type" yaml:"type"`
	// Slot is where the item is worn.
	Slot Slot `json:"slot" yaml:"slot"`
	// AttachBone is the bone identifier the item attaches to.
	AttachBone string `json:"attach_bone" yaml:"attach_bone"`
	// Scale is the uniform scale applied at attach time. Zero means 1.0.
	Scale float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	// PositionOffset is applied relative to the resolved bone.
	PositionOffset mathutil.Vec3 `json:"position_offset" yaml:"position_offset"`
	// RotationOffset is an Euler XYZ rotation in radians, relative to the resolved bone.
	RotationOffset mathutil.Vec3 `json:"rotation_offset" yaml:"rotation_offset"`
}

// EffectiveScale returns the item scale, defaulting to 1.0 when unset.
func (i ItemDefinition) EffectiveScale() float64 {
	if i.Scale == 0 {
		return 1.0
	}
	return i.Scale
}

// Validate checks if the item has the required fields and valid values.
// It returns a description of the first problem, or "" when the item is valid.
func (i ItemDefinition) Validate() string {
	if i.Name == "" {
		return "missing name"
	}
	if i.Path == "" {
		return "missing path"
	}
	if !i.Type.IsValid() {
		return fmt.Sprintf("invalid type %q", i.Type)
	}
	if !i.Slot.IsValid() {
		return fmt.Sprintf("invalid slot %q", i.Slot)
	}
	if i.AttachBone == "" {
		return "missing attach_bone"
	}
	if i.Scale < 0 || math.IsNaN(i.Scale) || math.IsInf(i.Scale, 0) {
		return fmt.Sprintf("invalid scale %v", i.Scale)
	}
	if !i.PositionOffset.IsFinite() {
		return "position_offset is not finite"
	}
	if !i.RotationOffset.IsFinite() {
		return "rotation_offset is not finite"
	}
	return ""
}

// EquippedItem pairs an equipped item with the bone it asks to attach to.
// BoneName is the catalog attach bone, not yet resolved against a skeleton.
type EquippedItem struct {
	Slot     Slot           `json:"slot"`
	Item     ItemDefinition `json:"item"`
	BoneName string         `json:"bone_name"`
}
