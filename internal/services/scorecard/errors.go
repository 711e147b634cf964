package scorecard

// ScorecardError is a custom error type for scorecard errors
type ScorecardError string

// Error implements the error interface
func (e ScorecardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           ScorecardError = "config cannot be nil"
	ErrNilSync             ScorecardError = "synchronizer cannot be nil"
	ErrNilLedger           ScorecardError = "ledger cannot be nil"
	ErrNilRanking          ScorecardError = "ranking cannot be nil"
	ErrNilRoster           ScorecardError = "roster cannot be nil"
	ErrNilMessaging        ScorecardError = "messaging cannot be nil"
	ErrNilCourse           ScorecardError = "course cannot be nil"
	ErrNilInput            ScorecardError = "input cannot be nil"
	ErrInvalidHole         ScorecardError = "hole number is not on the course"
	ErrEmptyPlayerName     ScorecardError = "player name cannot be empty"
	ErrScoreRecordNotFound ScorecardError = "score record not found"
)
