package catalog

import (
	"fmt"
	"strings"

	"github.com/calasan/habla/internal/skills"
)

// validateItems performs all structural checks on the item set.
// Returns a combined error describing every problem found, or nil.
// Unknown axes in requirements or contributions are fatal here, at load
// time, so classification never has to handle them.
func validateItems(items []Item) error {
	var errs []string

	if len(items) == 0 {
		errs = append(errs, "catalog is empty")
	}

	idSet := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			errs = append(errs, "item with empty ID")
			continue
		}
		if idSet[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item ID: %q", it.ID))
		}
		idSet[it.ID] = true

		if it.Topic == "" {
			errs = append(errs, fmt.Sprintf("item %q: empty topic", it.ID))
		}

		for axis, level := range it.Requires {
			if !skills.ValidAxis(axis) {
				errs = append(errs, fmt.Sprintf("item %q: requirement references unknown axis %q", it.ID, axis))
			}
			if !level.Valid() {
				errs = append(errs, fmt.Sprintf("item %q: requirement level %d for axis %q out of range", it.ID, level, axis))
			}
		}
		for axis, level := range it.Contributes {
			if !skills.ValidAxis(axis) {
				errs = append(errs, fmt.Sprintf("item %q: contribution references unknown axis %q", it.ID, axis))
			}
			if !level.Valid() {
				errs = append(errs, fmt.Sprintf("item %q: contribution level %d for axis %q out of range", it.ID, level, axis))
			}
		}

		for _, f := range it.Forms {
			if !ValidForm(f) {
				errs = append(errs, fmt.Sprintf("item %q: unknown prompt form %q", it.ID, f))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
