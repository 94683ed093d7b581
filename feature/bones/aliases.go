package bones

// AliasFamily groups the bone names different rig conventions use for the
// same joint. Variants are tried in declared order.
type AliasFamily struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
}

// Contains reports whether name is one of the family variants (case-sensitive).
func (f AliasFamily) Contains(name string) bool {
	for _, v := range f.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// defaultAliases is the built-in alias table. glTF loaders strip dots from
// node names, so both "Wrist.R" and "WristR" are listed.
var defaultAliases = []AliasFamily{
	{
		Canonical: "rightHand",
		Variants:  []string{"WristR", "Wrist.R", "mixamorigRightHand", "RightHand", "Hand_R", "hand_r", "hand.R"},
	},
	{
		Canonical: "leftHand",
		Variants:  []string{"WristL", "Wrist.L", "mixamorigLeftHand", "LeftHand", "Hand_L", "hand_l", "hand.L"},
	},
	{
		Canonical: "spine",
		Variants:  []string{"Torso", "mixamorigSpine", "Spine", "spine", "Spine1"},
	},
	{
		Canonical: "head",
		Variants:  []string{"Head", "mixamorigHead", "head"},
	},
	{
		Canonical: "hips",
		Variants:  []string{"Hips", "mixamorigHips", "hips", "pelvis"},
	},
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() []AliasFamily {
	return cloneAliases(defaultAliases)
}

func cloneAliases(src []AliasFamily) []AliasFamily {
	out := make([]AliasFamily, len(src))
	for i, f := range src {
		out[i] = AliasFamily{
			Canonical: f.Canonical,
			Variants:  append([]string(nil), f.Variants...),
		}
	}
	return out
}
