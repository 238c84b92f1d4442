package planner

import (
	"math/rand"
	"sort"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/skills"
	"github.com/calasan/habla/internal/zpd"
)

// Share of new-item slots drawn from each axis group, in expectation.
// A sampling weight, not a hard rule: empty groups fall through.
const (
	weakShare   = 0.6
	variedShare = 0.3
	// strong gets the remainder (0.1)
)

// axisGroupCount is how many axes count as "weakest" / "strongest".
const axisGroupCount = 3

// candidate is a new item eligible for introduction.
type candidate struct {
	item      *catalog.Item
	readiness zpd.Readiness
}

// buckets splits candidates by which axis group their contributions
// develop: items touching one of the learner's weakest axes, the
// strongest axes, or neither (varied). Weak membership wins when an item
// touches both ends.
type buckets struct {
	weak   []candidate
	varied []candidate
	strong []candidate
}

func bucketize(cands []candidate, d skills.Dimensions) buckets {
	weakSet := make(map[skills.Axis]bool, axisGroupCount)
	for _, a := range d.WeakestAxes(axisGroupCount) {
		weakSet[a] = true
	}
	strongSet := make(map[skills.Axis]bool, axisGroupCount)
	for _, a := range d.StrongestAxes(axisGroupCount) {
		strongSet[a] = true
	}

	var b buckets
	for _, c := range cands {
		switch {
		case touchesAny(c.item, weakSet):
			b.weak = append(b.weak, c)
		case touchesAny(c.item, strongSet):
			b.strong = append(b.strong, c)
		default:
			b.varied = append(b.varied, c)
		}
	}
	return b
}

func touchesAny(it *catalog.Item, axes map[skills.Axis]bool) bool {
	for axis := range axes {
		if it.ContributesTo(axis) {
			return true
		}
	}
	return false
}

func (b *buckets) empty() bool {
	return len(b.weak)+len(b.varied)+len(b.strong) == 0
}

// take removes and returns the best candidate from the named group,
// falling through weak -> varied -> strong when the chosen group is
// exhausted. Within a group, Ready items beat Stretch items, then lower
// difficulty, then item ID, so draws are stable for a fixed rng.
func (b *buckets) take(group int) candidate {
	groups := [][]*[]candidate{
		{&b.weak, &b.varied, &b.strong},
		{&b.varied, &b.weak, &b.strong},
		{&b.strong, &b.varied, &b.weak},
	}[group]

	for _, g := range groups {
		if len(*g) > 0 {
			c := (*g)[0]
			*g = (*g)[1:]
			return c
		}
	}
	return candidate{}
}

const (
	groupWeak = iota
	groupVaried
	groupStrong
)

// pickNewItems selects up to limit new items, weighting slots toward the
// learner's weak axes. rng must be supplied by the caller so plans are
// reproducible under a fixed seed.
func pickNewItems(cands []candidate, d skills.Dimensions, limit int, rng *rand.Rand) []candidate {
	if limit <= 0 || len(cands) == 0 {
		return nil
	}

	sortCandidates(cands)
	b := bucketize(cands, d)

	picked := make([]candidate, 0, limit)
	for len(picked) < limit && !b.empty() {
		roll := rng.Float64()
		group := groupStrong
		switch {
		case roll < weakShare:
			group = groupWeak
		case roll < weakShare+variedShare:
			group = groupVaried
		}
		c := b.take(group)
		if c.item == nil {
			break
		}
		picked = append(picked, c)
	}
	return picked
}

// sortCandidates orders by readiness (Ready before Stretch), then
// difficulty, then ID.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].readiness != cands[j].readiness {
			return cands[i].readiness > cands[j].readiness // Ready > Stretch
		}
		if cands[i].item.Difficulty != cands[j].item.Difficulty {
			return cands[i].item.Difficulty < cands[j].item.Difficulty
		}
		return cands[i].item.ID < cands[j].item.ID
	})
}
