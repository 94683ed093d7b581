package equipment

// Catalog source names.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceStorage = "storage"
)

// CatalogConfig selects where the item catalog is loaded from.
type CatalogConfig struct {
	// Source is one of builtin, file, storage.
	Source string `mapstructure:"source" default:"builtin"`
	// File is the YAML catalog path used by the file source.
	File string `mapstructure:"file" default:"catalog.yaml"`
	// Object is the YAML catalog object key used by the storage source.
	Object string `mapstructure:"object" default:"catalog/items.yaml"`
	// CacheTTLSeconds is how long a catalog read from storage is reused.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// IsValidSource checks if the configured source is known.
func (c CatalogConfig) IsValidSource() bool {
	switch c.Source {
	case SourceBuiltin, SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}

// SessionConfig controls equipment sessions.
type SessionConfig struct {
	// Persist saves every session change to the database when one is connected.
	Persist bool `mapstructure:"persist" default:"true"`
}
