package stats

import "careernest/internal/job"

type Overview struct {
	TotalCompanies    int64 `json:"total_companies"`
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
	TotalBookmarks    int64 `json:"total_bookmarks"`
}

type StatsResponse struct {
	Overview             Overview          `json:"overview"`
	JobsByCategory       map[string]int64  `json:"jobs_by_category"`
	JobsByType           map[string]int64  `json:"jobs_by_type"`
	ApplicationsByStatus map[string]int64  `json:"applications_by_status"`
	MostViewedJobs       []job.JobResponse `json:"most_viewed_jobs"`
	MostAppliedJobs      []job.JobResponse `json:"most_applied_jobs"`
}

type HealthResponse struct {
	Status            string `json:"status"`
	TotalCompanies    int64  `json:"total_companies"`
	TotalJobs         int64  `json:"total_jobs"`
	ActiveJobs        int64  `json:"active_jobs"`
	TotalApplications int64  `json:"total_applications"`
}
