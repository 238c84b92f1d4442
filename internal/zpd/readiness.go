// Package zpd classifies curriculum items against a learner's skill
// dimensions: the zone of proximal development is the band of items one
// step beyond current ability, where learning works best (Krashen's i+1).
package zpd

import (
	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/skills"
)

// Readiness is an item's attemptability category for a learner.
type Readiness int

const (
	NotReady Readiness = iota // too far ahead (i+3 or more)
	Stretch                   // challenging but possible (i+2)
	Ready                     // perfect ZPD (i+1)
	Mastered                  // already knows this
)

// String returns the stable label for the category.
func (r Readiness) String() string {
	switch r {
	case NotReady:
		return "not_ready"
	case Stretch:
		return "stretch"
	case Ready:
		return "ready"
	case Mastered:
		return "mastered"
	default:
		return "unknown"
	}
}

// Classify computes the learner's readiness for an item. An item is only
// as ready as its weakest required axis, so classification uses the
// maximum gap between any required level and the learner's current level:
//
//	gap > 2   -> NotReady
//	gap == 2  -> Stretch
//	gap == 1  -> Ready
//	gap <= 0  -> Mastered
//
// An item with no requirements is entry-level and always Ready. Pure and
// total: unknown axes are a catalog-load error, never handled here.
func Classify(item *catalog.Item, d skills.Dimensions) Readiness {
	if len(item.Requires) == 0 {
		return Ready
	}

	maxGap := -int(skills.MaxLevel)
	for axis, required := range item.Requires {
		gap := required.Rank() - d.Level(axis).Rank()
		if gap > maxGap {
			maxGap = gap
		}
	}

	switch {
	case maxGap > 2:
		return NotReady
	case maxGap == 2:
		return Stretch
	case maxGap == 1:
		return Ready
	default:
		return Mastered
	}
}
