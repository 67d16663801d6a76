package application

import "time"

// SubmitApplicationRequest is the canonical submission shape, used by
// POST /jobs/:id/apply.
type SubmitApplicationRequest struct {
	ApplicantName      string  `json:"applicant_name" binding:"required"`
	ApplicantEmail     string  `json:"applicant_email" binding:"required,email"`
	GoogleAccessToken  string  `json:"google_access_token"`
	Phone              *string `json:"phone"`
	ResumeURL          string  `json:"resume_url" binding:"required"`
	CoverLetter        *string `json:"cover_letter"`
	LinkedInURL        *string `json:"linkedin_url"`
	PortfolioURL       *string `json:"portfolio_url"`
	YearsOfExperience  float64 `json:"years_of_experience"`
	CurrentInstitution *string `json:"current_institution"`
	GraduationYear     *int    `json:"graduation_year"`
}

// SubmitApplicationCompatRequest is the field naming the web frontend
// sends to POST /applications. The handler remaps it onto
// SubmitApplicationRequest field-for-field; nothing else differs.
type SubmitApplicationCompatRequest struct {
	JobID             string  `json:"job_id" binding:"required"`
	FullName          string  `json:"full_name" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	GoogleAccessToken string  `json:"google_access_token"`
	Phone             *string `json:"phone"`
	ResumeURL         string  `json:"resume_url" binding:"required"`
	CoverLetter       *string `json:"cover_letter"`
	LinkedInURL       *string `json:"linkedin_url"`
	PortfolioURL      *string `json:"portfolio_url"`
	YearsExperience   float64 `json:"years_experience"`
	Institution       *string `json:"institution"`
	GraduationYear    *int    `json:"graduation_year"`
}

// Canonical renames the compat fields to the canonical shape.
func (r SubmitApplicationCompatRequest) Canonical() SubmitApplicationRequest {
	return SubmitApplicationRequest{
		ApplicantName:      r.FullName,
		ApplicantEmail:     r.Email,
		GoogleAccessToken:  r.GoogleAccessToken,
		Phone:              r.Phone,
		ResumeURL:          r.ResumeURL,
		CoverLetter:        r.CoverLetter,
		LinkedInURL:        r.LinkedInURL,
		PortfolioURL:       r.PortfolioURL,
		YearsOfExperience:  r.YearsExperience,
		CurrentInstitution: r.Institution,
		GraduationYear:     r.GraduationYear,
	}
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type ApplicationResponse struct {
	ID                 string    `json:"id"`
	JobID              string    `json:"job_id"`
	JobTitle           string    `json:"job_title"`
	CompanyName        string    `json:"company_name"`
	ApplicantName      string    `json:"applicant_name"`
	ApplicantEmail     string    `json:"applicant_email"`
	Phone              *string   `json:"phone,omitempty"`
	ResumeURL          string    `json:"resume_url"`
	CoverLetter        *string   `json:"cover_letter,omitempty"`
	LinkedInURL        *string   `json:"linkedin_url,omitempty"`
	PortfolioURL       *string   `json:"portfolio_url,omitempty"`
	YearsOfExperience  float64   `json:"years_of_experience"`
	CurrentInstitution *string   `json:"current_institution,omitempty"`
	GraduationYear     *int      `json:"graduation_year,omitempty"`
	Status             string    `json:"status"`
	Notes              *string   `json:"notes,omitempty"`
	AppliedAt          time.Time `json:"applied_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
	Message      string                `json:"message,omitempty"`
}

func toResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                 a.ID,
		JobID:              a.JobID,
		JobTitle:           a.JobTitle,
		CompanyName:        a.CompanyName,
		ApplicantName:      a.ApplicantName,
		ApplicantEmail:     a.ApplicantEmail,
		Phone:              a.Phone,
		ResumeURL:          a.ResumeURL,
		CoverLetter:        a.CoverLetter,
		LinkedInURL:        a.LinkedInURL,
		PortfolioURL:       a.PortfolioURL,
		YearsOfExperience:  a.YearsOfExperience,
		CurrentInstitution: a.CurrentInstitution,
		GraduationYear:     a.GraduationYear,
		Status:             a.Status,
		Notes:              a.Notes,
		AppliedAt:          a.AppliedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toListResponse(apps []Application) ApplicationListResponse {
	resp := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, toResponse(&apps[i]))
	}
	return ApplicationListResponse{Applications: resp, Total: len(resp)}
}
