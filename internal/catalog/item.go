// Package catalog holds the immutable curriculum: every learnable item,
// its prerequisites in skill space, and what it develops. The catalog is
// loaded once at startup and never mutated at runtime.
package catalog

import "github.com/calasan/habla/internal/skills"

// ContentType categorizes what kind of learnable unit an item is.
type ContentType string

const (
	ContentVocabulary ContentType = "vocabulary"
	ContentPhrase     ContentType = "phrase"
	ContentGrammar    ContentType = "grammar"
	ContentTexting    ContentType = "texting"
)

// Form is an elicitation form: how an item is asked about.
type Form string

const (
	FormRecognition    Form = "recognition"     // shown target, recall meaning
	FormCuedProduction Form = "cued_production" // produce with a cue/hint
	FormFreeProduction Form = "free_production" // produce from meaning alone
	FormApplication    Form = "application"     // use in a novel context
)

// FormOrder lists forms in progression order, least to most demanding.
var FormOrder = []Form{FormRecognition, FormCuedProduction, FormFreeProduction, FormApplication}

// ValidForm reports whether f is a known elicitation form.
func ValidForm(f Form) bool {
	switch f {
	case FormRecognition, FormCuedProduction, FormFreeProduction, FormApplication:
		return true
	}
	return false
}

// Item is one immutable catalog record. The textual payload (Spanish,
// English, example, notes) is opaque to the engine; selection only looks
// at topic, requirements, contributions and forms.
type Item struct {
	ID          string                       `json:"id"`
	ContentType ContentType                  `json:"content_type"`
	Spanish     string                       `json:"spanish"`
	English     string                       `json:"english"`
	Example     string                       `json:"example,omitempty"`
	Notes       string                       `json:"notes,omitempty"`
	Topic       string                       `json:"topic"`
	Difficulty  int                          `json:"difficulty"`
	CEFR        string                       `json:"cefr"`
	Requires    map[skills.Axis]skills.Level `json:"skill_requirements,omitempty"`
	Contributes map[skills.Axis]skills.Level `json:"skill_contributions,omitempty"`
	Forms       []Form                       `json:"prompt_forms"`
}

// SupportsForm reports whether the item can be elicited in form f.
// An item with no declared forms defaults to recognition only.
func (it *Item) SupportsForm(f Form) bool {
	if len(it.Forms) == 0 {
		return f == FormRecognition
	}
	for _, have := range it.Forms {
		if have == f {
			return true
		}
	}
	return false
}

// ContributesTo reports whether the item develops the given axis.
func (it *Item) ContributesTo(axis skills.Axis) bool {
	_, ok := it.Contributes[axis]
	return ok
}
