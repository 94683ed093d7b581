package equipment

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"armory/core/mathutil"
	"armory/feature/equipment/models"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidItem marks a malformed catalog entry.
	ErrInvalidItem = errors.New("invalid catalog item")
	// ErrItemNotFound is returned when a path is not in the catalog.
	ErrItemNotFound = errors.New("item not found in catalog")
)

// Catalog is the read-only registry of equippable items.
// Items keep their declaration order.
type Catalog struct {
	items  []models.ItemDefinition
	byPath map[string]int
	byName map[string]int
}

// NewCatalog validates items and builds a catalog.
// Every malformed entry is reported, not only the first one.
func NewCatalog(items []models.ItemDefinition) (*Catalog, error) {
	c := &Catalog{
		items:  make([]models.ItemDefinition, 0, len(items)),
		byPath: make(map[string]int, len(items)),
		byName: make(map[string]int, len(items)),
	}

	var errs []error
	for i, item := range items {
		if problem := item.Validate(); problem != "" {
			errs = append(errs, fmt.Errorf("%w: entry %d (%q): %s", ErrInvalidItem, i, item.Name, problem))
			continue
		}
		if prev, dup := c.byPath[item.Path]; dup {
			errs = append(errs, fmt.Errorf("%w: entry %d (%q): duplicate path %q (entry %d)", ErrInvalidItem, i, item.Name, item.Path, prev))
			continue
		}
		if prev, dup := c.byName[item.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: entry %d: duplicate name %q (entry %d)", ErrInvalidItem, i, item.Name, prev))
			continue
		}
		c.byPath[item.Path] = i
		c.byName[item.Name] = i
		c.items = append(c.items, item)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return c, nil
}

// Items returns the catalog entries in declaration order.
func (c *Catalog) Items() []models.ItemDefinition {
	return append([]models.ItemDefinition(nil), c.items...)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Lookup returns the item with the given path.
func (c *Catalog) Lookup(path string) (models.ItemDefinition, error) {
	i, ok := c.byPath[path]
	if !ok {
		return models.ItemDefinition{}, fmt.Errorf("%w: %q", ErrItemNotFound, path)
	}
	return c.items[i], nil
}

// ByName returns the item with the given display name.
func (c *Catalog) ByName(name string) (models.ItemDefinition, bool) {
	i, ok := c.byName[name]
	if !ok {
		return models.ItemDefinition{}, false
	}
	return c.items[i], true
}

// catalogFile is the YAML layout of a catalog document.
type catalogFile struct {
	Items []models.ItemDefinition `yaml:"items"`
}

// ParseCatalogYAML decodes and validates a YAML catalog document.
// Unknown keys are rejected so typos in field names fail at load time.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc catalogFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog: empty document")
		}
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	return NewCatalog(doc.Items)
}

// MarshalYAML encodes the catalog in the layout read by ParseCatalogYAML.
func (c *Catalog) MarshalYAML() (interface{}, error) {
	return catalogFile{Items: c.Items()}, nil
}

// defaultItemScale compensates for the item pack's larger root scale.
const defaultItemScale = 0.5

// gripTilt tilts hand-held items to line up with the closed-hand pose.
var gripTilt = mathutil.Vec3{mathutil.Deg2Rad(35), 0, 0}

var defaultItems = []models.ItemDefinition{
	{
		Name:       "Sword",
		Path:       "/assets/Ultimate RPG Items Bundle-glb/Sword.glb",
		Type:       models.TypeWeapon,
		Slot:       models.SlotMainHand,
		AttachBone: "WristR",
		Scale:      defaultItemScale,
	},
	{
		Name:           "Claymore",
		Path:           "/assets/Ultimate RPG Items Bundle-glb/Claymore.glb",
		Type:           models.TypeWeapon,
		Slot:           models.SlotMainHand,
		AttachBone:     "WristR",
		Scale:          defaultItemScale,
		RotationOffset: gripTilt,
	},
	{
		Name:           "Shield",
		Path:           "/assets/Ultimate RPG Items Bundle-glb/Shield Round.glb",
		Type:           models.TypeShield,
		Slot:           models.SlotOffHand,
		AttachBone:     "WristL",
		Scale:          defaultItemScale,
		RotationOffset: gripTilt,
	},
	{
		Name:           "Spear",
		Path:           "/assets/Ultimate RPG Items Bundle-glb/Spear.glb",
		Type:           models.TypeWeapon,
		Slot:           models.SlotMainHand,
		AttachBone:     "WristR",
		Scale:          defaultItemScale,
		RotationOffset: gripTilt,
	},
	{
		Name:           "Knife",
		Path:           "/assets/Ultimate RPG Items Bundle-glb/Knife.glb",
		Type:           models.TypeWeapon,
		Slot:           models.SlotMainHand,
		AttachBone:     "WristR",
		Scale:          defaultItemScale,
		RotationOffset: gripTilt,
	},
}

// DefaultCatalog returns the built-in item catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}
