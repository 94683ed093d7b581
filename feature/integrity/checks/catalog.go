package checks

import (
	"context"
	"errors"
	"fmt"

	"armory/feature/bones"
	"armory/feature/equipment"
)

// CatalogReport is the result of a catalog check.
type CatalogReport struct {
	Valid bool `json:"valid"`
	Items int  `json:"items"`
	// Errors lists every malformed entry; the catalog is unusable when set.
	Errors []string `json:"errors"`
	// Warnings lists attach bones that only resolve through the substring
	// heuristics, which may pick the wrong bone on unfamiliar rigs.
	Warnings []string `json:"warnings"`
}

// CheckCatalog loads the catalog from source and reports validation errors
// and attach bones missing from the alias table.
func CheckCatalog(ctx context.Context, source equipment.CatalogSource, aliases []bones.AliasFamily) *CatalogReport {
	report := &CatalogReport{Errors: []string{}, Warnings: []string{}}

	catalog, err := source.Catalog(ctx)
	if err != nil {
		report.Errors = append(report.Errors, SplitErrors(err)...)
		return report
	}

	report.Valid = true
	report.Items = catalog.Len()
	for _, item := range catalog.Items() {
		if !isAliased(item.AttachBone, aliases) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: attach bone %q is not in the alias table", item.Name, item.AttachBone))
		}
	}
	return report
}

func isAliased(bone string, aliases []bones.AliasFamily) bool {
	for _, fam := range aliases {
		if fam.Contains(bone) {
			return true
		}
	}
	return false
}

// SplitErrors flattens a joined error into one message per entry. Wrappers
// around the joined error, such as the file or object name added by a
// catalog source, are looked through.
func SplitErrors(err error) []string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			var msgs []string
			for _, inner := range joined.Unwrap() {
				msgs = append(msgs, SplitErrors(inner)...)
			}
			return msgs
		}
	}
	return []string{err.Error()}
}
