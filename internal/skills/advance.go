package skills

// FluencyLatencyMs is the response-time ceiling for a production to count
// toward the Production -> Fluent transition.
const FluencyLatencyMs = 3000

// Progress tracks the consecutive-correct chain toward one axis's next
// level transition. It is persisted per (learner, axis) so an in-flight
// chain survives process restarts; the counter belongs to the current
// transition only and resets to zero whenever a transition completes
// or the chain breaks.
type Progress struct {
	ConsecutiveCorrect int
}

// Outcome is one graded observation on an axis.
type Outcome struct {
	Correct   bool
	LatencyMs int // 0 means not measured
}

// required returns the consecutive-correct threshold for advancing past
// the given level. Fluent has no outgoing transition.
func required(from Level) int {
	switch from {
	case LevelNone:
		return 1
	case LevelExposure:
		return 2
	case LevelRecognition:
		return 2
	case LevelProduction:
		return 3
	default:
		return 0
	}
}

// Advance applies one graded outcome to an axis level and its in-flight
// progress counter. It returns the (possibly advanced) level and the
// updated counter. Levels only ever move up here; a failed outcome resets
// the counter but never lowers the rank. Advancing past Fluent is a no-op.
//
// The Production -> Fluent chain additionally requires each success under
// FluencyLatencyMs; a correct but slow production breaks the chain, since
// it demonstrates effortful rather than automatic recall. Unmeasured
// latency (0) is not held against the learner.
func Advance(current Level, p Progress, o Outcome) (Level, Progress) {
	if !current.Valid() {
		current = LevelNone
	}
	if current == LevelFluent {
		return current, Progress{}
	}

	success := o.Correct
	if success && current == LevelProduction && o.LatencyMs > 0 && o.LatencyMs >= FluencyLatencyMs {
		success = false
	}

	if !success {
		return current, Progress{}
	}

	p.ConsecutiveCorrect++
	if p.ConsecutiveCorrect >= required(current) {
		return current + 1, Progress{}
	}
	return current, p
}
