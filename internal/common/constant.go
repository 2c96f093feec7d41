package common

// AccessTokenHeaderName is the HTTP header used to carry the bearer access
// token on authenticated requests.
const AccessTokenHeaderName = "Authorization"

// Entity and action tags used in the local sync log. The log is append-only;
// a future reconciliation worker consumes it.
const (
	SyncEntityTravel = "travel"
	SyncEntityUser   = "user"
	SyncActionDelete = "delete"
)
