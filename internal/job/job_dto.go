package job

import (
	"time"

	"careernest/internal/company"
)

type CreateJobRequest struct {
	Title               string   `json:"title" binding:"required"`
	CompanyID           string   `json:"company_id" binding:"required"`
	Category            string   `json:"category" binding:"required"`
	JobType             string   `json:"job_type" binding:"required"`
	ExperienceLevel     string   `json:"experience_level" binding:"required"`
	Location            string   `json:"location" binding:"required"`
	IsRemote            bool     `json:"is_remote"`
	Description         string   `json:"description" binding:"required"`
	Responsibilities    []string `json:"responsibilities" binding:"required"`
	Requirements        []string `json:"requirements" binding:"required"`
	NiceToHave          []string `json:"nice_to_have"`
	SalaryMin           *int64   `json:"salary_min"`
	SalaryMax           *int64   `json:"salary_max"`
	SalaryCurrency      string   `json:"salary_currency"`
	ApplicationDeadline *string  `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
	Openings            int      `json:"openings"`
	Tags                []string `json:"tags"`
}

type UpdateJobRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	Responsibilities    []string `json:"responsibilities"`
	Requirements        []string `json:"requirements"`
	NiceToHave          []string `json:"nice_to_have"`
	SalaryMin           *int64   `json:"salary_min"`
	SalaryMax           *int64   `json:"salary_max"`
	ApplicationDeadline *string  `json:"application_deadline" binding:"omitempty,datetime=2006-01-02"`
	Openings            *int     `json:"openings"`
	IsActive            *bool    `json:"is_active"`
	Tags                []string `json:"tags"`
}

// ListJobsQuery carries the search, filter, sort and page parameters of a
// listing query. Bound from the query string.
type ListJobsQuery struct {
	Search          string `form:"search"`
	Category        string `form:"category"`
	JobType         string `form:"job_type"`
	ExperienceLevel string `form:"experience_level"`
	Location        string `form:"location"`
	IsRemote        *bool  `form:"is_remote"`
	SalaryMin       *int64 `form:"salary_min"`
	ActiveOnly      *bool  `form:"active_only"`
	SortBy          string `form:"sort_by"`
	Page            int    `form:"page"`
	PageSize        int    `form:"page_size"`
}

type JobResponse struct {
	ID                  string                   `json:"id"`
	CompanyID           string                   `json:"company_id"`
	Title               string                   `json:"title"`
	Category            string                   `json:"category"`
	JobType             string                   `json:"job_type"`
	ExperienceLevel     string                   `json:"experience_level"`
	Location            string                   `json:"location"`
	IsRemote            bool                     `json:"is_remote"`
	Description         string                   `json:"description"`
	Responsibilities    []string                 `json:"responsibilities"`
	Requirements        []string                 `json:"requirements"`
	NiceToHave          []string                 `json:"nice_to_have,omitempty"`
	SalaryMin           *int64                   `json:"salary_min,omitempty"`
	SalaryMax           *int64                   `json:"salary_max,omitempty"`
	SalaryCurrency      string                   `json:"salary_currency"`
	ApplicationDeadline *string                  `json:"application_deadline,omitempty"`
	Openings            int                      `json:"openings"`
	IsActive            bool                     `json:"is_active"`
	Views               int64                    `json:"views"`
	ApplicationsCount   int64                    `json:"applications_count"`
	Tags                []string                 `json:"tags,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
	Company             *company.CompanyResponse `json:"company"`
}

// ToResponse maps a stored listing, optionally attaching its company
// record. The attachment is computed per response and never persisted.
// Exported because the bookmark and stats modules reuse it.
func ToResponse(j *Job, comp *company.CompanyResponse) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		CompanyID:           j.CompanyID,
		Title:               j.Title,
		Category:            j.Category,
		JobType:             j.JobType,
		ExperienceLevel:     j.ExperienceLevel,
		Location:            j.Location,
		IsRemote:            j.IsRemote,
		Description:         j.Description,
		Responsibilities:    j.Responsibilities,
		Requirements:        j.Requirements,
		NiceToHave:          j.NiceToHave,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryCurrency:      j.SalaryCurrency,
		ApplicationDeadline: j.ApplicationDeadline,
		Openings:            j.Openings,
		IsActive:            j.IsActive,
		Views:               j.Views,
		ApplicationsCount:   j.ApplicationsCount,
		Tags:                j.Tags,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
		Company:             comp,
	}
}
