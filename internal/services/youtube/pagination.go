// pagination.go models the comment-page loop as an explicit state machine.
//
// Each page request depends on the continuation token from the previous
// response, so pages are strictly sequential. Keeping the stop condition in
// one pure transition function makes it testable without any network I/O:
//
//	Fetching ──page──▶ Accumulating ──▶ Fetching   (token present, under cap)
//	                                ──▶ Capped     (accumulated ≥ cap)
//	                                ──▶ Exhausted  (no continuation token)
package youtube

// pageState is the state of the comment pagination loop.
type pageState int

const (
	// stateFetching: a page request is owed.
	stateFetching pageState = iota
	// stateAccumulating: a page arrived and its comments are being appended.
	stateAccumulating
	// stateExhausted: the endpoint returned no continuation token — no more
	// pages exist (comments disabled, exhausted, or fewer comments than the
	// declared count).
	stateExhausted
	// stateCapped: enough comments were accumulated to satisfy the cap.
	stateCapped
)

// nextPageState decides where the loop goes after a page has been
// accumulated. The limit check wins over the token check: once we hold
// enough comments, a dangling continuation token must not trigger another
// fetch.
func nextPageState(tokenPresent bool, accumulated int, limit int64) pageState {
	if int64(accumulated) >= limit {
		return stateCapped
	}
	if !tokenPresent {
		return stateExhausted
	}
	return stateFetching
}
