package skills

import (
	"fmt"
	"sort"
)

// Axis names one tracked skill dimension. The set of axes is closed:
// it is fixed at compile time and never grows or shrinks at runtime.
type Axis string

const (
	AxisVocabularyRecognition Axis = "vocabulary_recognition" // hear/read -> understand
	AxisVocabularyProduction  Axis = "vocabulary_production"  // idea -> produce Spanish
	AxisPronunciation         Axis = "pronunciation"          // phoneme accuracy
	AxisGrammarReceptive      Axis = "grammar_receptive"      // understand structures
	AxisGrammarProductive     Axis = "grammar_productive"     // use structures correctly
	AxisConversationalFlow    Axis = "conversational_flow"    // fillers, repairs, turn-taking
	AxisCulturalPragmatics    Axis = "cultural_pragmatics"    // when to use what (register)
	AxisNarration             Axis = "narration"              // sequence events in past tense
	AxisConditionals          Axis = "conditionals"           // express hypotheticals
)

// AllAxes returns the closed axis set in display order.
func AllAxes() []Axis {
	return []Axis{
		AxisVocabularyRecognition,
		AxisVocabularyProduction,
		AxisPronunciation,
		AxisGrammarReceptive,
		AxisGrammarProductive,
		AxisConversationalFlow,
		AxisCulturalPragmatics,
		AxisNarration,
		AxisConditionals,
	}
}

// ValidAxis reports whether a names a tracked axis.
func ValidAxis(a Axis) bool {
	switch a {
	case AxisVocabularyRecognition, AxisVocabularyProduction, AxisPronunciation,
		AxisGrammarReceptive, AxisGrammarProductive, AxisConversationalFlow,
		AxisCulturalPragmatics, AxisNarration, AxisConditionals:
		return true
	}
	return false
}

// Dimensions maps every axis to the learner's current level. Every axis
// always has a defined level; absent entries are treated as LevelNone.
type Dimensions map[Axis]Level

// NewDimensions returns dimensions with every axis at LevelNone, the
// state of a learner on first contact.
func NewDimensions() Dimensions {
	d := make(Dimensions, len(AllAxes()))
	for _, a := range AllAxes() {
		d[a] = LevelNone
	}
	return d
}

// Level returns the level for an axis, defaulting to LevelNone so the
// every-axis-defined invariant holds even for freshly stored rows.
func (d Dimensions) Level(a Axis) Level {
	if l, ok := d[a]; ok && l.Valid() {
		return l
	}
	return LevelNone
}

// Clone returns an independent copy.
func (d Dimensions) Clone() Dimensions {
	out := make(Dimensions, len(d))
	for a, l := range d {
		out[a] = l
	}
	return out
}

// WeakestAxes returns the n axes with the lowest current rank,
// lowest first; ties break on axis name for stable output.
func (d Dimensions) WeakestAxes(n int) []Axis {
	return d.rankedAxes(n, false)
}

// StrongestAxes returns the n axes with the highest current rank,
// highest first; ties break on axis name.
func (d Dimensions) StrongestAxes(n int) []Axis {
	return d.rankedAxes(n, true)
}

func (d Dimensions) rankedAxes(n int, descending bool) []Axis {
	axes := AllAxes()
	sort.SliceStable(axes, func(i, j int) bool {
		ri, rj := d.Level(axes[i]).Rank(), d.Level(axes[j]).Rank()
		if ri != rj {
			if descending {
				return ri > rj
			}
			return ri < rj
		}
		return axes[i] < axes[j]
	})
	if n > len(axes) {
		n = len(axes)
	}
	return axes[:n]
}

// String renders the dimensions axis by axis for logs and the CLI.
func (d Dimensions) String() string {
	s := ""
	for i, a := range AllAxes() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%s", a, d.Level(a))
	}
	return s
}
