// Package sm2 implements the SuperMemo-2 spaced repetition algorithm
// (Wozniak). Grading is a pure function over a ReviewState; callers own
// persistence of the returned state.
package sm2

import (
	"math"
	"time"
)

// Quality is an SM-2 response quality rating.
type Quality int

const (
	QualityBlackout           Quality = 0 // complete blackout, unable to recall
	QualityIncorrect          Quality = 1 // incorrect, remembered when shown the answer
	QualityIncorrectFamiliar  Quality = 2 // incorrect, but the answer felt familiar
	QualityCorrectDifficult   Quality = 3 // correct with significant difficulty
	QualityCorrectHesitation  Quality = 4 // correct after hesitation
	QualityPerfect            Quality = 5 // perfect response, no hesitation
)

// PassThreshold is the lowest quality counted as a successful recall.
const PassThreshold = QualityCorrectDifficult

// MinEaseFactor floors the ease factor per the SM-2 definition.
const MinEaseFactor = 1.3

// DefaultEaseFactor is the ease factor for a brand-new item.
const DefaultEaseFactor = 2.5

// ReviewState is the per-(learner, item) scheduling record. It is created
// on first presentation and updated on every graded outcome; it is never
// deleted, so an item's trajectory survives mastery.
type ReviewState struct {
	LearnerID    string
	ItemID       string
	Repetitions  int
	EaseFactor   float64
	IntervalDays int
	NextDue      time.Time
	LastQuality  Quality
	LastReviewed time.Time
}

// NewReviewState returns the state for an item the learner has never seen.
func NewReviewState(learnerID, itemID string) *ReviewState {
	return &ReviewState{
		LearnerID:  learnerID,
		ItemID:     itemID,
		EaseFactor: DefaultEaseFactor,
	}
}

// Grade applies one SM-2 update and returns the new state. The input state
// is not modified. Quality outside [0,5] is rejected with
// ErrInvalidQuality rather than clamped, so a buggy caller cannot corrupt
// scheduling history.
//
//   - quality < 3: repetitions reset to 0, interval to 1 day, ease factor
//     drops by 0.2 (floored at 1.3).
//   - quality >= 3: repetitions increment; the ease factor moves by the
//     SM-2 formula (floored at 1.3); the interval is 1 day on the first
//     repetition, 6 on the second, previous * new ease rounded thereafter.
//
// NextDue is always observedAt plus the new interval, so it stays
// derivable from (interval, last-graded timestamp).
func Grade(state ReviewState, quality Quality, observedAt time.Time) (ReviewState, error) {
	if quality < QualityBlackout || quality > QualityPerfect {
		return ReviewState{}, &ErrInvalidQuality{Quality: int(quality)}
	}

	next := state
	next.LastQuality = quality
	next.LastReviewed = observedAt

	if quality >= PassThreshold {
		q := float64(quality)
		ef := state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
		if ef < MinEaseFactor {
			ef = MinEaseFactor
		}
		next.EaseFactor = ef

		switch state.Repetitions {
		case 0:
			next.IntervalDays = 1
		case 1:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * ef))
		}
		next.Repetitions = state.Repetitions + 1
	} else {
		ef := state.EaseFactor - 0.2
		if ef < MinEaseFactor {
			ef = MinEaseFactor
		}
		next.EaseFactor = ef
		next.Repetitions = 0
		next.IntervalDays = 1
	}

	next.NextDue = observedAt.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

// QualityFromOutcome converts a correctness signal plus response latency
// into an SM-2 quality rating. latencyMs <= 0 means not measured.
func QualityFromOutcome(correct bool, latencyMs int) Quality {
	if !correct {
		return QualityIncorrect
	}
	if latencyMs <= 0 {
		return QualityCorrectHesitation
	}
	switch {
	case latencyMs < 2000:
		return QualityPerfect
	case latencyMs < 5000:
		return QualityCorrectHesitation
	default:
		return QualityCorrectDifficult
	}
}
