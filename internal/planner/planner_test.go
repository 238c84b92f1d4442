package planner

import (
	"math/rand"
	"testing"
	"time"

	"github.com/calasan/habla/internal/catalog"
	"github.com/calasan/habla/internal/skills"
	"github.com/calasan/habla/internal/sm2"
	"github.com/calasan/habla/internal/zpd"
)

var planNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var items []catalog.Item
	topics := []string{"greetings", "numbers", "food"}
	for i := 0; i < 10; i++ {
		items = append(items, catalog.Item{
			ID:          itemID(i),
			ContentType: catalog.ContentVocabulary,
			Spanish:     "es-" + itemID(i),
			English:     "en-" + itemID(i),
			Topic:       topics[i%3],
			Difficulty:  1,
			CEFR:        "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
			},
			Forms: []catalog.Form{
				catalog.FormRecognition,
				catalog.FormCuedProduction,
				catalog.FormFreeProduction,
				catalog.FormApplication,
			},
		})
	}
	// One item far out of reach for a fresh learner.
	items = append(items, catalog.Item{
		ID:          "advanced-debate",
		ContentType: catalog.ContentPhrase,
		Spanish:     "es-debate",
		English:     "en-debate",
		Topic:       "opinions",
		Difficulty:  5,
		CEFR:        "B2",
		Requires: map[skills.Axis]skills.Level{
			skills.AxisConditionals: skills.LevelProduction,
		},
	})
	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func dueState(itemID string, daysOverdue, repetitions int) *sm2.ReviewState {
	return &sm2.ReviewState{
		LearnerID:    "ana",
		ItemID:       itemID,
		Repetitions:  repetitions,
		EaseFactor:   2.5,
		IntervalDays: 1,
		NextDue:      planNow.AddDate(0, 0, -daysOverdue),
		LastReviewed: planNow.AddDate(0, 0, -daysOverdue-1),
	}
}

func TestBuildPlan_BoundedAndUnique(t *testing.T) {
	p := New(testCatalog(t))
	plan := p.BuildPlan(skills.NewDimensions(), nil, planNow, 4, rand.New(rand.NewSource(1)))

	if len(plan.Slots) > 4 {
		t.Errorf("plan has %d slots, want at most 4", len(plan.Slots))
	}
	seen := make(map[string]bool)
	for _, s := range plan.Slots {
		if seen[s.Item.ID] {
			t.Errorf("duplicate item %s in plan", s.Item.ID)
		}
		seen[s.Item.ID] = true
	}
}

func TestBuildPlan_DueReviewsFirstMostOverdueFirst(t *testing.T) {
	p := New(testCatalog(t))
	reviews := map[string]*sm2.ReviewState{
		"a0": dueState("a0", 1, 2),
		"a3": dueState("a3", 5, 2),
		"a6": dueState("a6", 3, 2),
	}
	plan := p.BuildPlan(skills.NewDimensions(), reviews, planNow, 8, rand.New(rand.NewSource(1)))

	if len(plan.Slots) < 3 {
		t.Fatalf("plan has %d slots, want at least the 3 due reviews", len(plan.Slots))
	}
	for i := 0; i < 3; i++ {
		if plan.Slots[i].Category != CategoryReview {
			t.Errorf("slot %d category = %s, want review before any introduction", i, plan.Slots[i].Category)
		}
	}
	// The three due items share one topic, so interleaving leaves the
	// overdue order intact.
	wantOrder := []string{"a3", "a6", "a0"}
	for i, want := range wantOrder {
		if plan.Slots[i].Item.ID != want {
			t.Errorf("slot %d = %s, want %s", i, plan.Slots[i].Item.ID, want)
		}
	}
}

func TestBuildPlan_DueItemsNotReintroduced(t *testing.T) {
	p := New(testCatalog(t))
	reviews := map[string]*sm2.ReviewState{"a0": dueState("a0", 1, 2)}
	plan := p.BuildPlan(skills.NewDimensions(), reviews, planNow, 8, rand.New(rand.NewSource(1)))

	count := 0
	for _, s := range plan.Slots {
		if s.Item.ID == "a0" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("a0 appears %d times, want exactly 1", count)
	}
}

func TestBuildPlan_NotReadyItemsExcluded(t *testing.T) {
	p := New(testCatalog(t))
	plan := p.BuildPlan(skills.NewDimensions(), nil, planNow, 20, rand.New(rand.NewSource(1)))
	for _, s := range plan.Slots {
		if s.Item.ID == "advanced-debate" {
			t.Error("NotReady item was introduced")
		}
		if s.Category == CategoryIntroduce && s.Readiness != zpd.Ready && s.Readiness != zpd.Stretch {
			t.Errorf("introduced item %s with readiness %s", s.Item.ID, s.Readiness)
		}
	}
}

func TestBuildPlan_TopicInterleaving(t *testing.T) {
	p := New(testCatalog(t))
	plan := p.BuildPlan(skills.NewDimensions(), nil, planNow, 6, rand.New(rand.NewSource(3)))
	if len(plan.Slots) < 4 {
		t.Fatalf("plan has %d slots, want at least 4", len(plan.Slots))
	}
	for i := 1; i < len(plan.Slots); i++ {
		if plan.Slots[i].Item.Topic == plan.Slots[i-1].Item.Topic {
			t.Errorf("adjacent same-topic slots at %d: %v", i, plan.Items())
		}
	}
}

func TestBuildPlan_Reproducible(t *testing.T) {
	p := New(testCatalog(t))
	a := p.BuildPlan(skills.NewDimensions(), nil, planNow, 6, rand.New(rand.NewSource(99)))
	b := p.BuildPlan(skills.NewDimensions(), nil, planNow, 6, rand.New(rand.NewSource(99)))
	ia, ib := a.Items(), b.Items()
	if len(ia) != len(ib) {
		t.Fatalf("plan lengths differ: %d vs %d", len(ia), len(ib))
	}
	for i := range ia {
		if ia[i] != ib[i] {
			t.Errorf("slot %d differs: %s vs %s", i, ia[i], ib[i])
		}
	}
}

func TestBuildPlan_ShortWhenFewEligible(t *testing.T) {
	// Catalog with a single entry-level item.
	cat, err := catalog.New([]catalog.Item{{
		ID:          "solo",
		ContentType: catalog.ContentVocabulary,
		Spanish:     "solo",
		English:     "alone",
		Topic:       "misc",
		CEFR:        "A1",
	}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	plan := New(cat).BuildPlan(skills.NewDimensions(), nil, planNow, 8, rand.New(rand.NewSource(1)))
	if len(plan.Slots) != 1 {
		t.Errorf("plan has %d slots, want 1 (never padded)", len(plan.Slots))
	}
}

func TestBuildPlan_FormFollowsRepetitions(t *testing.T) {
	p := New(testCatalog(t))
	reviews := map[string]*sm2.ReviewState{
		"a0": dueState("a0", 1, 0),
		"a1": dueState("a1", 1, 2),
		"a2": dueState("a2", 1, 7),
	}
	plan := p.BuildPlan(skills.NewDimensions(), reviews, planNow, 3, rand.New(rand.NewSource(1)))

	forms := make(map[string]catalog.Form)
	for _, s := range plan.Slots {
		forms[s.Item.ID] = s.Form
	}
	if forms["a0"] != catalog.FormRecognition {
		t.Errorf("a0 form = %s, want recognition", forms["a0"])
	}
	if forms["a1"] != catalog.FormCuedProduction {
		t.Errorf("a1 form = %s, want cued_production", forms["a1"])
	}
	if forms["a2"] != catalog.FormApplication {
		t.Errorf("a2 form = %s, want application", forms["a2"])
	}
}

// skewedCatalog has almost all eligible items under one topic, with one
// item each under two minority topics.
func skewedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	var items []catalog.Item
	add := func(id, topic string) {
		items = append(items, catalog.Item{
			ID:          id,
			ContentType: catalog.ContentVocabulary,
			Spanish:     "es-" + id,
			English:     "en-" + id,
			Topic:       topic,
			Difficulty:  1,
			CEFR:        "A1",
			Contributes: map[skills.Axis]skills.Level{
				skills.AxisVocabularyProduction: skills.LevelRecognition,
			},
			Forms: []catalog.Form{catalog.FormRecognition, catalog.FormCuedProduction},
		})
	}
	for i := 0; i < 8; i++ {
		add(itemID(i), "food")
	}
	add("num-uno", "numbers")
	add("greet-hola", "greetings")

	cat, err := catalog.New(items)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func TestBuildPlan_SkewedTopicsNoAdjacency(t *testing.T) {
	p := New(skewedCatalog(t))
	plan := p.BuildPlan(skills.NewDimensions(), nil, planNow, 4, rand.New(rand.NewSource(1)))

	if len(plan.Slots) != 4 {
		t.Fatalf("plan has %d slots, want 4", len(plan.Slots))
	}
	// The minority topics still have eligible items, so a same-topic
	// pair means selection filled the session topic-blind.
	for i := 1; i < len(plan.Slots); i++ {
		if plan.Slots[i].Item.Topic == plan.Slots[i-1].Item.Topic {
			t.Fatalf("adjacent same-topic slots with minority topics available: %v", plan.Items())
		}
	}
	topics := make(map[string]bool)
	for _, s := range plan.Slots {
		topics[s.Item.Topic] = true
	}
	if len(topics) < 2 {
		t.Errorf("plan drew from %d topics, want minority topics represented: %v", len(topics), plan.Items())
	}
}

func TestBuildPlan_SkewedDueReviewsNoAdjacency(t *testing.T) {
	p := New(skewedCatalog(t))
	// Four majority-topic items are the most overdue; the minority item
	// is barely due. Truncation must not squeeze it out into a
	// single-topic block.
	reviews := map[string]*sm2.ReviewState{
		"a0":      dueState("a0", 5, 2),
		"a1":      dueState("a1", 4, 2),
		"a2":      dueState("a2", 3, 2),
		"a3":      dueState("a3", 2, 2),
		"num-uno": dueState("num-uno", 1, 2),
	}
	plan := p.BuildPlan(skills.NewDimensions(), reviews, planNow, 3, rand.New(rand.NewSource(1)))

	if len(plan.Slots) != 3 {
		t.Fatalf("plan has %d slots, want 3", len(plan.Slots))
	}
	for i := 1; i < 3; i++ {
		if plan.Slots[i].Item.Topic == plan.Slots[i-1].Item.Topic {
			t.Fatalf("adjacent same-topic review slots: %v", plan.Items())
		}
	}
	if plan.Slots[0].Item.ID != "a0" {
		t.Errorf("slot 0 = %s, want the most overdue item a0", plan.Slots[0].Item.ID)
	}
}

func TestBuildPlan_ZeroSessionSizeUsesDefault(t *testing.T) {
	p := New(testCatalog(t))
	plan := p.BuildPlan(skills.NewDimensions(), nil, planNow, 0, rand.New(rand.NewSource(1)))
	if len(plan.Slots) > DefaultSessionSize {
		t.Errorf("plan has %d slots, want at most the default %d", len(plan.Slots), DefaultSessionSize)
	}
	if plan.Empty() {
		t.Error("plan is empty with eligible items available")
	}
}
