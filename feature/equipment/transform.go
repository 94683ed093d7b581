package equipment

import (
	"armory/core/mathutil"
	"armory/feature/bones"
	"armory/feature/equipment/models"
)

// Transform is the local transform of an item root relative to its bone.
type Transform struct {
	Position mathutil.Vec3 `json:"position"`
	// Rotation is Euler XYZ in radians; Quaternion is the same rotation.
	Rotation   mathutil.Vec3 `json:"rotation"`
	Quaternion mathutil.Quat `json:"quaternion"`
	Scale      float64       `json:"scale"`
}

// EffectiveTransform computes the transform applied to item at attach time.
// Each override that is set replaces the matching per-item value.
func EffectiveTransform(item models.ItemDefinition, o Overrides) Transform {
	t := Transform{
		Position: item.PositionOffset,
		Rotation: item.RotationOffset,
		Scale:    item.EffectiveScale(),
	}
	if o.Position != nil {
		t.Position = *o.Position
	}
	if o.Rotation != nil {
		t.Rotation = *o.Rotation
	}
	if o.Scale != nil {
		t.Scale = *o.Scale
	}
	t.Quaternion = mathutil.EulerXYZToQuat(t.Rotation)
	return t
}

// Attachment tells a renderer where and how to parent one equipped item.
type Attachment struct {
	Slot models.Slot           `json:"slot"`
	Item models.ItemDefinition `json:"item"`
	// RequestedBone is the catalog attach bone.
	RequestedBone string `json:"requested_bone"`
	// ResolvedBone is the skeleton bone, empty when Found is false.
	ResolvedBone string          `json:"resolved_bone"`
	Tier         bones.Tier      `json:"tier"`
	Found        bool            `json:"found"`
	Attempts     []bones.Attempt `json:"attempts"`
	Transform    Transform       `json:"transform"`
}

// Plan resolves every equipped item of snap against a skeleton, in slot
// order. Items whose bone cannot be resolved are returned with Found=false
// so the caller can skip them; they never abort the plan.
func Plan(snap Snapshot, resolver *bones.Resolver, sk *bones.Skeleton) []Attachment {
	equipped := snap.EquippedItems()
	plan := make([]Attachment, 0, len(equipped))
	for _, eq := range equipped {
		res := resolver.Resolve(sk, eq.BoneName)
		plan = append(plan, Attachment{
			Slot:          eq.Slot,
			Item:          eq.Item,
			RequestedBone: eq.BoneName,
			ResolvedBone:  res.Bone,
			Tier:          res.Tier,
			Found:         res.Found,
			Attempts:      res.Attempts,
			Transform:     EffectiveTransform(eq.Item, snap.Overrides),
		})
	}
	return plan
}
