package equipment_test

import (
	"errors"
	"testing"

	"armory/core/mathutil"
	"armory/feature/equipment"
	"armory/feature/equipment/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sword() models.ItemDefinition {
	return models.ItemDefinition{
		Name:       "Sword",
		Path:       "/assets/sword.glb",
		Type:       models.TypeWeapon,
		Slot:       models.SlotMainHand,
		AttachBone: "WristR",
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := equipment.DefaultCatalog()
	require.Equal(t, 5, c.Len())

	names := make([]string, 0, c.Len())
	for _, item := range c.Items() {
		names = append(names, item.Name)
		assert.Empty(t, item.Validate())
		assert.Equal(t, 0.5, item.EffectiveScale())
	}
	assert.Equal(t, []string{"Sword", "Claymore", "Shield", "Spear", "Knife"}, names)

	shield, ok := c.ByName("Shield")
	require.True(t, ok)
	assert.Equal(t, models.SlotOffHand, shield.Slot)
	assert.Equal(t, "WristL", shield.AttachBone)
	assert.InDelta(t, mathutil.Deg2Rad(35), shield.RotationOffset[0], 1e-12)

	sw, ok := c.ByName("Sword")
	require.True(t, ok)
	assert.Equal(t, mathutil.Vec3{}, sw.RotationOffset)
}

func TestCatalogLookup(t *testing.T) {
	c, err := equipment.NewCatalog([]models.ItemDefinition{sword()})
	require.NoError(t, err)

	item, err := c.Lookup("/assets/sword.glb")
	require.NoError(t, err)
	assert.Equal(t, "Sword", item.Name)

	_, err = c.Lookup("/assets/missing.glb")
	assert.True(t, errors.Is(err, equipment.ErrItemNotFound))

	_, ok := c.ByName("Missing")
	assert.False(t, ok)
}

func TestItemsIsACopy(t *testing.T) {
	c := equipment.DefaultCatalog()
	items := c.Items()
	items[0].Name = "Mutated"

	assert.Equal(t, "Sword", c.Items()[0].Name)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ItemDefinition)
		want   string
	}{
		{"Missing Name", func(i *models.ItemDefinition) { i.Name = "" }, "missing name"},
		{"Missing Path", func(i *models.ItemDefinition) { i.Path = "" }, "missing path"},
		{"Bad Type", func(i *models.ItemDefinition) { i.Type = "potion" }, `invalid type "potion"`},
		{"Bad Slot", func(i *models.ItemDefinition) { i.Slot = "feet" }, `invalid slot "feet"`},
		{"Missing Bone", func(i *models.ItemDefinition) { i.AttachBone = "" }, "missing attach_bone"},
		{"Negative Scale", func(i *models.ItemDefinition) { i.Scale = -1 }, "invalid scale -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := sword()
			tt.mutate(&item)

			_, err := equipment.NewCatalog([]models.ItemDefinition{item})
			require.Error(t, err)
			assert.True(t, errors.Is(err, equipment.ErrInvalidItem))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewCatalogReportsEveryProblem(t *testing.T) {
	dupPath := sword()
	dupPath.Name = "Other Sword"

	dupName := sword()
	dupName.Path = "/assets/other.glb"

	broken := sword()
	broken.Name = "Broken"
	broken.Path = "/assets/broken.glb"
	broken.AttachBone = ""

	_, err := equipment.NewCatalog([]models.ItemDefinition{sword(), dupPath, dupName, broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate path "/assets/sword.glb"`)
	assert.Contains(t, err.Error(), `duplicate name "Sword"`)
	assert.Contains(t, err.Error(), "missing attach_bone")
}

func TestParseCatalogYAML(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		doc := `
items:
  - name: Axe
    path: /assets/axe.glb
    type: weapon
    slot: mainHand
    attach_bone: RightHand
    scale: 0.75
    rotation_offset: [0.5, 0, 0]
  - name: Cape
    path: /assets/cape.glb
    type: accessory
    slot: back
    attach_bone: Spine
`
		c, err := equipment.ParseCatalogYAML([]byte(doc))
		require.NoError(t, err)
		require.Equal(t, 2, c.Len())

		axe, err := c.Lookup("/assets/axe.glb")
		require.NoError(t, err)
		assert.Equal(t, 0.75, axe.Scale)
		assert.Equal(t, mathutil.Vec3{0.5, 0, 0}, axe.RotationOffset)

		cape, ok := c.ByName("Cape")
		require.True(t, ok)
		assert.Equal(t, 1.0, cape.EffectiveScale())
	})

	t.Run("Unknown Field", func(t *testing.T) {
		doc := `
items:
  - name: Axe
    path: /assets/axe.glb
    type: weapon
    slot: mainHand
    attachBone: RightHand
`
		_, err := equipment.ParseCatalogYAML([]byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "attachBone")
	})

	t.Run("Short Offset", func(t *testing.T) {
		doc := `
items:
  - name: Axe
    path: /assets/axe.glb
    type: weapon
    slot: mainHand
    attach_bone: RightHand
    position_offset: [0.1, 0.2]
`
		_, err := equipment.ParseCatalogYAML([]byte(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want 3 components, got 2")
	})

	t.Run("Invalid Slot", func(t *testing.T) {
		doc := `
items:
  - name: Boots
    path: /assets/boots.glb
    type: armor
    slot: feet
    attach_bone: FootL
`
		_, err := equipment.ParseCatalogYAML([]byte(doc))
		assert.True(t, errors.Is(err, equipment.ErrInvalidItem))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := equipment.ParseCatalogYAML(nil)
		assert.Error(t, err)
	})
}

func TestCatalogYAMLRoundTrip(t *testing.T) {
	original := equipment.DefaultCatalog()

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	parsed, err := equipment.ParseCatalogYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Items(), parsed.Items())
}
