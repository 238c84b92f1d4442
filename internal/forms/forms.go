// Package forms decides how an item is asked about next. Elicitation
// escalates with accumulated repetitions (Matuschak's prompt
// progression): recognize first, then produce with cues, then freely,
// then apply in novel contexts.
package forms

import "github.com/calasan/habla/internal/catalog"

// repetition thresholds for each form step.
const (
	cuedMinReps        = 1
	freeMinReps        = 3
	applicationMinReps = 6
)

// nominalForm returns the form indicated purely by repetition count.
func nominalForm(repetitions int) catalog.Form {
	switch {
	case repetitions >= applicationMinReps:
		return catalog.FormApplication
	case repetitions >= freeMinReps:
		return catalog.FormFreeProduction
	case repetitions >= cuedMinReps:
		return catalog.FormCuedProduction
	default:
		return catalog.FormRecognition
	}
}

// Choose returns the elicitation form for an item given its repetition
// count, constrained to the item's supported forms. When the indicated
// form is unsupported it falls back to the nearest earlier supported
// form, never forward; an item supporting no earlier form yields its
// least demanding supported form. Items without review history are
// treated as repetitions = 0.
func Choose(item *catalog.Item, repetitions int) catalog.Form {
	if repetitions < 0 {
		repetitions = 0
	}
	nominal := nominalForm(repetitions)

	idx := formIndex(nominal)
	for i := idx; i >= 0; i-- {
		if item.SupportsForm(catalog.FormOrder[i]) {
			return catalog.FormOrder[i]
		}
	}
	// Nothing at or before the nominal step: take the earliest form the
	// item supports at all.
	for _, f := range catalog.FormOrder {
		if item.SupportsForm(f) {
			return f
		}
	}
	return catalog.FormRecognition
}

func formIndex(f catalog.Form) int {
	for i, have := range catalog.FormOrder {
		if have == f {
			return i
		}
	}
	return 0
}
