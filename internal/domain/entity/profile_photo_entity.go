package entity

import "time"

// ProfilePhoto points at the single live photo object of a user.
// PhotoName is the object key in the bucket.
type ProfilePhoto struct {
	ID        int64
	OwnerID   string
	PhotoName string
	PhotoURL  string
	IsDeleted bool
	CreatedAt time.Time
}
