package ranking

// RankingError is a custom error type for ranking errors
type RankingError string

// Error implements the error interface
func (e RankingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilInput     RankingError = "input cannot be nil"
	ErrInvalidMode  RankingError = "unknown ranking mode"
	ErrInvalidOrder RankingError = "unknown sort order"
)
