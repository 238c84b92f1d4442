package sm2

import "fmt"

// ErrInvalidQuality indicates a quality rating outside the 0-5 range.
// Out-of-range ratings are rejected, never clamped.
type ErrInvalidQuality struct {
	Quality int
}

func (e *ErrInvalidQuality) Error() string {
	return fmt.Sprintf("invalid quality rating %d: must be in [0,5]", e.Quality)
}
