package bookmark

import "careernest/internal/job"

// BookmarkRequest identifies a bookmark; used for both create and delete.
type BookmarkRequest struct {
	StudentEmail string `json:"student_email" binding:"required,email"`
	JobID        string `json:"job_id" binding:"required"`
}

// BookmarkListResponse returns the bookmarked listings themselves, each
// enriched with its company. Bookmarks whose job has been deleted are
// omitted.
type BookmarkListResponse struct {
	Bookmarks []job.JobResponse `json:"bookmarks"`
	Total     int               `json:"total"`
}
