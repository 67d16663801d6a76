package application

import "time"

// Status values form an open enumeration: any status may follow any other,
// there is no enforced transition graph.
const (
	StatusPending     = "Pending"
	StatusReviewing   = "Reviewing"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
	StatusAccepted    = "Accepted"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application records a submission against a listing. JobTitle and
// CompanyName are denormalized copies captured at submission time; they do
// not change when the job or company is later edited.
type Application struct {
	ID                 string    `bson:"id"`
	JobID              string    `bson:"job_id"`
	JobTitle           string    `bson:"job_title"`
	CompanyName        string    `bson:"company_name"`
	ApplicantName      string    `bson:"applicant_name"`
	ApplicantEmail     string    `bson:"applicant_email"`
	Phone              *string   `bson:"phone,omitempty"`
	ResumeURL          string    `bson:"resume_url"`
	CoverLetter        *string   `bson:"cover_letter,omitempty"`
	LinkedInURL        *string   `bson:"linkedin_url,omitempty"`
	PortfolioURL       *string   `bson:"portfolio_url,omitempty"`
	YearsOfExperience  float64   `bson:"years_of_experience"`
	CurrentInstitution *string   `bson:"current_institution,omitempty"`
	GraduationYear     *int      `bson:"graduation_year,omitempty"`
	Status             string    `bson:"status"`
	Notes              *string   `bson:"notes,omitempty"`
	AppliedAt          time.Time `bson:"applied_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

func (Application) CollectionName() string {
	return "applications"
}
