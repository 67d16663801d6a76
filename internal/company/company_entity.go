package company

import "time"

// Company is a stored company profile. Jobs reference it by ID; there is no
// cascading delete, a job may outlive its company.
type Company struct {
	ID              string    `bson:"id"`
	Name            string    `bson:"name"`
	Industry        string    `bson:"industry"`
	Website         *string   `bson:"website,omitempty"`
	Description     *string   `bson:"description,omitempty"`
	LogoURL         *string   `bson:"logo_url,omitempty"`
	Location        string    `bson:"location"`
	CreatedAt       time.Time `bson:"created_at"`
	TotalJobsPosted int64     `bson:"total_jobs_posted"`
}

func (Company) CollectionName() string {
	return "companies"
}
