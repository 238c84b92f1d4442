package skills

import "testing"

func TestLevel_Valid(t *testing.T) {
	for l := MinLevel; l <= MaxLevel; l++ {
		if !l.Valid() {
			t.Errorf("Level(%d).Valid() = false, want true", int(l))
		}
	}
	for _, l := range []Level{0, 6, -1, 100} {
		if l.Valid() {
			t.Errorf("Level(%d).Valid() = true, want false", int(l))
		}
	}
}

func TestLevel_Rank_Ordering(t *testing.T) {
	order := []Level{LevelNone, LevelExposure, LevelRecognition, LevelProduction, LevelFluent}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%s.Rank() = %d, want > %s.Rank() = %d",
				order[i], order[i].Rank(), order[i-1], order[i-1].Rank())
		}
	}
}

func TestLevel_StringRoundTrip(t *testing.T) {
	for l := MinLevel; l <= MaxLevel; l++ {
		parsed, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", l.String(), err)
		}
		if parsed != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), parsed, l)
		}
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	if _, err := ParseLevel("expert"); err == nil {
		t.Error("ParseLevel(\"expert\") succeeded, want error")
	}
}

func TestCriteriaFor_CoversAllLevels(t *testing.T) {
	for _, axis := range AllAxes() {
		crit := CriteriaFor(axis)
		for l := MinLevel; l <= MaxLevel; l++ {
			c, ok := crit[l]
			if !ok {
				t.Errorf("CriteriaFor(%s) missing level %s", axis, l)
				continue
			}
			if c.Description == "" {
				t.Errorf("CriteriaFor(%s)[%s] has empty description", axis, l)
			}
		}
	}
}

func TestCriteriaFor_SpecializedAxes(t *testing.T) {
	if CriteriaFor(AxisNarration)[LevelFluent].Description == CriteriaFor(AxisPronunciation)[LevelFluent].Description {
		t.Error("narration should carry specialized criteria, got generic")
	}
	if CriteriaFor(AxisConditionals)[LevelFluent].Description == CriteriaFor(AxisPronunciation)[LevelFluent].Description {
		t.Error("conditionals should carry specialized criteria, got generic")
	}
}
