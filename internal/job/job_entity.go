package job

import "time"

// Enumerated field values follow the vocabulary listings are published
// with. They are stored as plain strings and matched case-insensitively, so
// the sets are open: an unknown value is filterable, never rejected at read
// time.
const (
	TypeFullTime   = "Full-Time"
	TypePartTime   = "Part-Time"
	TypeInternship = "Internship"
	TypeContract   = "Contract"
	TypeRemote     = "Remote"
	TypeHybrid     = "Hybrid"
)

const (
	LevelEntry      = "Entry Level"
	LevelMid        = "Mid Level"
	LevelSenior     = "Senior Level"
	LevelInternship = "Internship / No Experience"
)

const (
	CategoryTechnology  = "Technology"
	CategoryFinance     = "Finance"
	CategoryMarketing   = "Marketing"
	CategoryDesign      = "Design"
	CategoryOperations  = "Operations"
	CategoryHR          = "Human Resources"
	CategorySales       = "Sales"
	CategoryEngineering = "Engineering"
	CategoryHealthcare  = "Healthcare"
	CategoryEducation   = "Education"
	CategoryOther       = "Other"
)

// Job is a posted listing. ApplicationsCount is maintained incrementally by
// the application workflow: it can undercount if the process dies between
// the application insert and the counter increment. Views increments once
// per individual fetch.
type Job struct {
	ID                  string    `bson:"id"`
	CompanyID           string    `bson:"company_id"`
	Title               string    `bson:"title"`
	Category            string    `bson:"category"`
	JobType             string    `bson:"job_type"`
	ExperienceLevel     string    `bson:"experience_level"`
	Location            string    `bson:"location"`
	IsRemote            bool      `bson:"is_remote"`
	Description         string    `bson:"description"`
	Responsibilities    []string  `bson:"responsibilities"`
	Requirements        []string  `bson:"requirements"`
	NiceToHave          []string  `bson:"nice_to_have,omitempty"`
	SalaryMin           *int64    `bson:"salary_min,omitempty"`
	SalaryMax           *int64    `bson:"salary_max,omitempty"`
	SalaryCurrency      string    `bson:"salary_currency"`
	ApplicationDeadline *string   `bson:"application_deadline,omitempty"`
	Openings            int       `bson:"openings"`
	IsActive            bool      `bson:"is_active"`
	Views               int64     `bson:"views"`
	ApplicationsCount   int64     `bson:"applications_count"`
	Tags                []string  `bson:"tags,omitempty"`
	CreatedAt           time.Time `bson:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at"`
}

func (Job) CollectionName() string {
	return "jobs"
}
