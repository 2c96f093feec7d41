package models

// User is the stub of a user mirrored locally so that a travel row never
// references a user row that does not exist in the local store. The client
// does not own user lifecycle; the server does.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Latitude     float64
	Longitude    float64
	SyncStatus   SyncStatus
}
