package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      LedgerError = "config cannot be nil"
	ErrNilCourse      LedgerError = "course cannot be nil"
	ErrNilInput       LedgerError = "input cannot be nil"
	ErrInvalidHole    LedgerError = "hole number is not on the course"
	ErrInvalidStrokes LedgerError = "strokes must be a positive integer"
)
