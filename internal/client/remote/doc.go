// Package remote implements the record-store contract over the TravelKeeper
// HTTP API. It is the client's view of the authoritative store: an opaque
// collaborator that fails like any remote call.
//
// All transport and server faults surface as common.ErrRemoteOperationFailed;
// a 404 maps to common.ErrorNotFound. The client attaches the bearer access
// token to every authenticated request and transparently refreshes the token
// pair once when the server answers 401, mirroring how the rest of the app
// never handles token expiry itself.
package remote
