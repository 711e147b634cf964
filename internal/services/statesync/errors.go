package statesync

// SyncError is a custom error type for synchronizer errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      SyncError = "config cannot be nil"
	ErrNilCache       SyncError = "local cache cannot be nil"
	ErrNilReplica     SyncError = "replica cannot be nil"
	ErrNilInput       SyncError = "input cannot be nil"
	ErrNotStarted     SyncError = "synchronizer has not been started"
	ErrAlreadyStarted SyncError = "synchronizer has already been started"
	ErrClosed         SyncError = "synchronizer is closed"

	// ErrNoChange is returned by an Apply func to leave the state untouched
	ErrNoChange SyncError = "no change"
)
