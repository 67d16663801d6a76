package company

import "time"

type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Industry    string  `json:"industry" binding:"required"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
	Location    string  `json:"location" binding:"required"`
}

type CompanyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Industry        string    `json:"industry"`
	Website         *string   `json:"website,omitempty"`
	Description     *string   `json:"description,omitempty"`
	LogoURL         *string   `json:"logo_url,omitempty"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
	TotalJobsPosted int64     `json:"total_jobs_posted"`
}

type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
}

// CompanyDetailResponse bundles a company with its currently active
// listings. The jobs payload is produced by the job module and passed
// through untouched.
type CompanyDetailResponse struct {
	Company         CompanyResponse `json:"company"`
	ActiveJobs      any             `json:"active_jobs"`
	ActiveJobsCount int             `json:"active_jobs_count"`
}

// ToResponse maps the stored entity to its response shape. Exported because
// the job module embeds company records when enriching listings.
func ToResponse(c *Company) CompanyResponse {
	return CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		Website:         c.Website,
		Description:     c.Description,
		LogoURL:         c.LogoURL,
		Location:        c.Location,
		CreatedAt:       c.CreatedAt,
		TotalJobsPosted: c.TotalJobsPosted,
	}
}
