package skills

import "fmt"

// Level is a categorical skill level on a closed ordinal scale.
// Discrete ranks rather than continuous scores: grading collaborators
// (human or LLM) pick one of five categories against documented criteria,
// and comparisons always use the rank, never the label.
type Level int

const (
	LevelNone        Level = 1 // No exposure - cannot recognize or produce
	LevelExposure    Level = 2 // Has seen/heard - may recognize with hints
	LevelRecognition Level = 3 // Understands when heard/read - cannot produce reliably
	LevelProduction  Level = 4 // Produces with effort - needs time or makes minor errors
	LevelFluent      Level = 5 // Automatic - produces quickly and accurately
)

// MinLevel and MaxLevel bound the valid rank range.
const (
	MinLevel = LevelNone
	MaxLevel = LevelFluent
)

// Valid reports whether the level is one of the five defined ranks.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// Rank returns the ordinal rank (1-5) for comparisons.
func (l Level) Rank() int {
	return int(l)
}

// String returns the canonical label for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelExposure:
		return "exposure"
	case LevelRecognition:
		return "recognition"
	case LevelProduction:
		return "production"
	case LevelFluent:
		return "fluent"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel converts a stored label back to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "none":
		return LevelNone, nil
	case "exposure":
		return LevelExposure, nil
	case "recognition":
		return LevelRecognition, nil
	case "production":
		return LevelProduction, nil
	case "fluent":
		return LevelFluent, nil
	}
	return 0, fmt.Errorf("unknown skill level %q", s)
}

// Criterion describes what a rank means for one axis, in the form
// grading collaborators compare observed behavior against.
type Criterion struct {
	Level       Level
	Name        string
	Description string
	Example     string
}

// genericCriteria apply to most axes.
var genericCriteria = map[Level]Criterion{
	LevelNone: {
		Level:       LevelNone,
		Name:        "NONE",
		Description: "No exposure - cannot recognize or produce",
		Example:     "Learner has not been exposed to this concept",
	},
	LevelExposure: {
		Level:       LevelExposure,
		Name:        "EXPOSURE",
		Description: "Has seen/heard - may recognize with strong hints",
		Example:     "Learner heard this once but couldn't recall it",
	},
	LevelRecognition: {
		Level:       LevelRecognition,
		Name:        "RECOGNITION",
		Description: "Can understand when heard/read - cannot produce reliably",
		Example:     "Learner understood it when said, but couldn't say it themselves",
	},
	LevelProduction: {
		Level:       LevelProduction,
		Name:        "PRODUCTION",
		Description: "Can produce with effort - needs time or makes minor errors",
		Example:     "Learner said it correctly but took 5+ seconds to recall",
	},
	LevelFluent: {
		Level:       LevelFluent,
		Name:        "FLUENT",
		Description: "Automatic - produces quickly and accurately",
		Example:     "Learner used this naturally in conversation without prompting",
	},
}

// narrationCriteria specialize the scale for the narration axis.
var narrationCriteria = map[Level]Criterion{
	LevelNone: {
		Level:       LevelNone,
		Name:        "NONE",
		Description: "Cannot sequence events",
		Example:     "Uses only present tense to describe past events",
	},
	LevelExposure: {
		Level:       LevelExposure,
		Name:        "EXPOSURE",
		Description: "Basic past tense attempts with errors",
		Example:     "'Yo ir al mercado ayer' (significant conjugation errors)",
	},
	LevelRecognition: {
		Level:       LevelRecognition,
		Name:        "RECOGNITION",
		Description: "Understands stories told to them",
		Example:     "Follows along with narration but can't retell it",
	},
	LevelProduction: {
		Level:       LevelProduction,
		Name:        "PRODUCTION",
		Description: "Can narrate with effort",
		Example:     "Uses preterite, some time markers, may mix tenses",
	},
	LevelFluent: {
		Level:       LevelFluent,
		Name:        "FLUENT",
		Description: "Fluent storytelling",
		Example:     "Natural use of preterite/imperfect, time markers, emotional color",
	},
}

// conditionalsCriteria specialize the scale for the conditionals axis.
var conditionalsCriteria = map[Level]Criterion{
	LevelNone: {
		Level:       LevelNone,
		Name:        "NONE",
		Description: "No hypothetical constructions",
		Example:     "Only states facts, cannot express 'what if' scenarios",
	},
	LevelExposure: {
		Level:       LevelExposure,
		Name:        "EXPOSURE",
		Description: "Recognizes conditional intent",
		Example:     "Understands 'si...' but can't produce it",
	},
	LevelRecognition: {
		Level:       LevelRecognition,
		Name:        "RECOGNITION",
		Description: "Real conditionals only",
		Example:     "'Si tengo tiempo, voy' but not 'si tuviera...'",
	},
	LevelProduction: {
		Level:       LevelProduction,
		Name:        "PRODUCTION",
		Description: "Hypothetical present with effort",
		Example:     "'Si yo fuera rico, yo... um... compraría un carro'",
	},
	LevelFluent: {
		Level:       LevelFluent,
		Name:        "FLUENT",
		Description: "Natural hypotheticals",
		Example:     "Smoothly uses 'si tuviera/hubiera', 'me gustaría', 'ojalá'",
	},
}

// CriteriaFor returns the per-rank criteria for an axis. Narration and
// conditionals carry specialized descriptions; every other axis uses the
// generic scale.
func CriteriaFor(axis Axis) map[Level]Criterion {
	switch axis {
	case AxisNarration:
		return narrationCriteria
	case AxisConditionals:
		return conditionalsCriteria
	default:
		return genericCriteria
	}
}
