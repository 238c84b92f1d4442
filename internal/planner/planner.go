package planner

import (
	"math/rand"
	"sort"
	"time"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/forms"
	"github.com/calasan/habla/internal/skills"
	"github.com/calasan/habla/internal/sm2"
	"github.com/calasan/habla/internal/zpd"
)

// Planner builds session plans from a catalog and per-learner state.
// It holds no mutable state of its own and performs no I/O.
type Planner struct {
	catalog *catalog.Catalog
}

// New creates a planner over the given catalog.
func New(cat *catalog.Catalog) *Planner {
	return &Planner{catalog: cat}
}

// BuildPlan assembles the next session for a learner, bounded to
// sessionSize slots with no duplicate items, in strict tier order:
//
//  1. Due reviews, most overdue first. Mastered items stay reachable
//     here forever since their ReviewState persists.
//  2. New items (no ReviewState) classified Ready or Stretch, Ready
//     preferred, with slots weighted 60/30/10 toward weak axes.
//
// Topics are interleaved within each tier over the full eligible pool,
// and each tier is truncated only after interleaving. Truncating first
// would let a topic-skewed pool fill the session from one topic and then
// force adjacency; a prefix of an interleaved sequence only repeats a
// topic when no other topic had eligible items left. When fewer items
// are eligible than sessionSize the plan is simply shorter; it is never
// padded.
func (p *Planner) BuildPlan(
	dims skills.Dimensions,
	reviews map[string]*sm2.ReviewState,
	now time.Time,
	sessionSize int,
	rng *rand.Rand,
) *Plan {
	if sessionSize <= 0 {
		sessionSize = DefaultSessionSize
	}

	plan := &Plan{}

	// Tier 1: due reviews.
	due := interleaveByTopic(p.dueSlots(reviews, now))
	if len(due) > sessionSize {
		due = due[:sessionSize]
	}
	plan.Slots = append(plan.Slots, due...)

	// Tier 2: new items in the ZPD.
	remaining := sessionSize - len(plan.Slots)
	if remaining > 0 {
		intro := interleaveByTopic(p.introduceSlots(dims, reviews, rng))
		if len(intro) > remaining {
			intro = intro[:remaining]
		}
		plan.Slots = append(plan.Slots, intro...)
	}

	return plan
}

// dueSlots collects items with an existing ReviewState at or past its
// due date, ordered most overdue first (ties on item ID).
func (p *Planner) dueSlots(reviews map[string]*sm2.ReviewState, now time.Time) []Slot {
	var states []*sm2.ReviewState
	for _, rs := range reviews {
		if p.catalog.Has(rs.ItemID) && rs.IsDue(now) {
			states = append(states, rs)
		}
	}
	sort.Slice(states, func(i, j int) bool {
		if !states[i].NextDue.Equal(states[j].NextDue) {
			return states[i].NextDue.Before(states[j].NextDue)
		}
		return states[i].ItemID < states[j].ItemID
	})

	slots := make([]Slot, 0, len(states))
	for _, rs := range states {
		item, err := p.catalog.Item(rs.ItemID)
		if err != nil {
			continue
		}
		slots = append(slots, Slot{
			Item:     item,
			Form:     forms.Choose(item, rs.Repetitions),
			Category: CategoryReview,
		})
	}
	return slots
}

// introduceSlots orders every eligible new item by weighted draw. Items
// already under review are skipped regardless of readiness; Mastered
// items are never introduced. The caller interleaves and truncates, so
// the weighting here decides priority, with the early picks the ones
// that survive truncation.
func (p *Planner) introduceSlots(
	dims skills.Dimensions,
	reviews map[string]*sm2.ReviewState,
	rng *rand.Rand,
) []Slot {
	var cands []candidate
	for _, item := range p.catalog.Items() {
		if _, seen := reviews[item.ID]; seen {
			continue
		}
		r := zpd.Classify(item, dims)
		if r == zpd.Ready || r == zpd.Stretch {
			cands = append(cands, candidate{item: item, readiness: r})
		}
	}

	picked := pickNewItems(cands, dims, len(cands), rng)
	slots := make([]Slot, 0, len(picked))
	for _, c := range picked {
		slots = append(slots, Slot{
			Item:      c.item,
			Form:      forms.Choose(c.item, 0),
			Category:  CategoryIntroduce,
			Readiness: c.readiness,
		})
	}
	return slots
}
