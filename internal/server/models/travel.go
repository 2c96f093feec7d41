package models

import "time"

// Travel is a journal record as stored on the server. The id is assigned by
// the client, so offline-created records keep their identity when pushed.
type Travel struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	UserID      string
	UserName    string
	Latitude    float64
	Longitude   float64
	PhotoURL    string
	CreatedAt   time.Time
}
