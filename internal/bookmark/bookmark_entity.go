package bookmark

import "time"

// Bookmark is identified by the (student_email, job_id) pair; at most one
// exists per pair.
type Bookmark struct {
	StudentEmail string    `bson:"student_email"`
	JobID        string    `bson:"job_id"`
	SavedAt      time.Time `bson:"saved_at"`
}

func (Bookmark) CollectionName() string {
	return "bookmarks"
}
