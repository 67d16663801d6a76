package seed

import (
	"context"
	"time"

	"careernest/internal/company"
	"careernest/internal/job"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

// Run inserts a starter data set so a fresh deployment has something to
// browse. It is a no-op when the companies collection already has data.
func Run(ctx context.Context, companies company.Repository, jobs job.Repository, logger *zap.Logger) error {
	count, err := companies.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("database already seeded, skipping")
		return nil
	}

	logger.Info("seeding initial data")
	now := time.Now().UTC()

	seedCompanies := []company.Company{
		{
			ID:          uuid.New().String(),
			Name:        "TechNova Solutions",
			Industry:    "Software Development",
			Website:     strPtr("https://technova.io"),
			LogoURL:     strPtr("https://placehold.co/100x100?text=TN"),
			Description: strPtr("Building next-gen cloud platforms for enterprises."),
			Location:    "Bangalore, India",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "FinEdge Capital",
			Industry:    "Finance & Fintech",
			Website:     strPtr("https://finedge.in"),
			LogoURL:     strPtr("https://placehold.co/100x100?text=FE"),
			Description: strPtr("Democratizing investment for retail investors."),
			Location:    "Mumbai, India",
			CreatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "DesignPulse Agency",
			Industry:    "Design & Creative",
			Website:     strPtr("https://designpulse.co"),
			LogoURL:     strPtr("https://placehold.co/100x100?text=DP"),
			Description: strPtr("Award-winning UI/UX agency."),
			Location:    "Hyderabad, India",
			CreatedAt:   now,
		},
	}

	seedJobs := []job.Job{
		{
			CompanyID:        seedCompanies[0].ID,
			Title:            "Backend Engineering Intern",
			Category:         job.CategoryTechnology,
			JobType:          job.TypeInternship,
			ExperienceLevel:  job.LevelInternship,
			Location:         "Bangalore, India",
			IsRemote:         true,
			Description:      "Join our core backend team and build production-grade REST APIs.",
			Responsibilities: []string{"Develop REST APIs", "Write unit tests", "Participate in standups"},
			Requirements:     []string{"Pursuing B.Tech/BE in CS", "Proficiency in Go or Python", "Understands HTTP/REST"},
			NiceToHave:       []string{"Docker experience", "Open-source contributions"},
			SalaryMin:        i64Ptr(15000),
			SalaryMax:        i64Ptr(25000),
			Openings:         3,
			Tags:             []string{"go", "backend", "intern"},
		},
		{
			CompanyID:        seedCompanies[0].ID,
			Title:            "Full Stack Developer",
			Category:         job.CategoryTechnology,
			JobType:          job.TypeFullTime,
			ExperienceLevel:  job.LevelMid,
			Location:         "Bangalore, India",
			Description:      "We're looking for a Full Stack Developer to join our product team.",
			Responsibilities: []string{"Ship product features", "Collaborate with designers", "Mentor junior engineers"},
			Requirements:     []string{"2+ years experience", "React + Node.js or Go", "PostgreSQL experience"},
			NiceToHave:       []string{"AWS/GCP experience", "TypeScript"},
			SalaryMin:        i64Ptr(800000),
			SalaryMax:        i64Ptr(1400000),
			Openings:         2,
			Tags:             []string{"react", "nodejs", "fullstack"},
		},
		{
			CompanyID:        seedCompanies[1].ID,
			Title:            "Finance & Investment Intern",
			Category:         job.CategoryFinance,
			JobType:          job.TypeInternship,
			ExperienceLevel:  job.LevelInternship,
			Location:         "Mumbai, India",
			Description:      "Get real-world exposure to equity research and financial modelling.",
			Responsibilities: []string{"Equity research", "Build financial models", "Prepare investment memos"},
			Requirements:     []string{"MBA (Finance) or B.Com final year", "Strong Excel skills"},
			NiceToHave:       []string{"CFA Level 1", "Bloomberg Terminal"},
			SalaryMin:        i64Ptr(20000),
			SalaryMax:        i64Ptr(30000),
			Openings:         2,
			Tags:             []string{"finance", "equity", "intern"},
		},
		{
			CompanyID:        seedCompanies[2].ID,
			Title:            "UI/UX Design Intern",
			Category:         job.CategoryDesign,
			JobType:          job.TypeInternship,
			ExperienceLevel:  job.LevelInternship,
			Location:         "Hyderabad, India",
			IsRemote:         true,
			Description:      "Work alongside senior designers on real client projects.",
			Responsibilities: []string{"Create wireframes and prototypes", "User research", "Dev handoff"},
			Requirements:     []string{"Degree in Design/HCI", "Proficient in Figma", "Portfolio required"},
			NiceToHave:       []string{"Motion design", "Design systems experience"},
			SalaryMin:        i64Ptr(12000),
			SalaryMax:        i64Ptr(18000),
			Openings:         1,
			Tags:             []string{"figma", "ux", "design", "intern"},
		},
	}

	jobsPerCompany := make(map[string]int64)
	for i := range seedJobs {
		jobsPerCompany[seedJobs[i].CompanyID]++
	}

	for i := range seedCompanies {
		seedCompanies[i].TotalJobsPosted = jobsPerCompany[seedCompanies[i].ID]
		if err := companies.Create(ctx, &seedCompanies[i]); err != nil {
			return err
		}
	}

	for i := range seedJobs {
		j := &seedJobs[i]
		j.ID = uuid.New().String()
		j.SalaryCurrency = "INR"
		j.IsActive = true
		j.CreatedAt = now
		j.UpdatedAt = now
		if err := jobs.Create(ctx, j); err != nil {
			return err
		}
	}

	logger.Info("seeded initial data",
		zap.Int("companies", len(seedCompanies)),
		zap.Int("jobs", len(seedJobs)),
	)
	return nil
}
