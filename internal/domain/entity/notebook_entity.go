package entity

import "time"

// Notebook groups notes of a single owner. Deleting it deletes its notes.
type Notebook struct {
	ID        int64
	Title     string
	OwnerID   int64
	CreatedAt time.Time
}
