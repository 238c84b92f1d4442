// Package planner builds ordered session plans: due reviews first, then
// new material inside the learner's zone of proximal development, with
// topics interleaved and new-item slots weighted toward weak axes.
package planner

import (
	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/zpd"
)

// Category records why an item made it into the plan.
type Category string

const (
	CategoryReview    Category = "review"    // existing item due per SM-2
	CategoryIntroduce Category = "introduce" // new item in the ZPD
)

// Slot is one entry in the session plan: an item plus the elicitation
// form to use for it.
type Slot struct {
	Item      *catalog.Item
	Form      catalog.Form
	Category  Category
	Readiness zpd.Readiness
}

// Plan is the ordered, bounded item list for one session.
type Plan struct {
	Slots []Slot
}

// DefaultSessionSize is the slot count used when callers pass 0.
const DefaultSessionSize = 8

// Empty reports whether the plan has no slots. An empty plan is a valid
// terminal state: nothing due and nothing new in reach.
func (p *Plan) Empty() bool {
	return len(p.Slots) == 0
}

// Items returns the planned item IDs in order.
func (p *Plan) Items() []string {
	ids := make([]string, len(p.Slots))
	for i, s := range p.Slots {
		ids[i] = s.Item.ID
	}
	return ids
}
