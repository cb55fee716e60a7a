package routing

const (
	// the backtracking search checks for cancellation once per this many expanded walks.
	CANCEL_CHECK_INTERVAL = 1024
)
