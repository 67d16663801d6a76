package job

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortSalaryHigh  = "salary_high"
	SortSalaryLow   = "salary_low"
	SortMostApplied = "most_applied"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// SearchQuery is the normalized form of a listing query. Build it with
// NewSearchQuery so paging bounds and defaults are always applied.
type SearchQuery struct {
	Search          string
	Category        string
	JobType         string
	ExperienceLevel string
	Location        string
	IsRemote        *bool
	SalaryMin       *int64
	ActiveOnly      bool
	SortBy          string
	Page            int
	PageSize        int
}

// NewSearchQuery normalizes raw query parameters: active_only defaults to
// true, page is floored at 1 and page_size clamped to [1, MaxPageSize].
func NewSearchQuery(q ListJobsQuery) SearchQuery {
	activeOnly := true
	if q.ActiveOnly != nil {
		activeOnly = *q.ActiveOnly
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return SearchQuery{
		Search:          strings.TrimSpace(q.Search),
		Category:        strings.TrimSpace(q.Category),
		JobType:         strings.TrimSpace(q.JobType),
		ExperienceLevel: strings.TrimSpace(q.ExperienceLevel),
		Location:        strings.TrimSpace(q.Location),
		IsRemote:        q.IsRemote,
		SalaryMin:       q.SalaryMin,
		ActiveOnly:      activeOnly,
		SortBy:          q.SortBy,
		Page:            page,
		PageSize:        pageSize,
	}
}

// Skip is the offset of the page window.
func (q SearchQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.PageSize)
}

// containsRegex matches term as a case-insensitive literal substring.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// searchFilter translates a SearchQuery into the store predicate. All
// supplied filters combine with AND; the free-text term matches title,
// description or any tag. The salary floor compares against salary_max,
// not salary_min: a listing qualifies as long as its budget can reach the
// requested floor, and a listing with no salary_max never matches.
func searchFilter(q SearchQuery) bson.M {
	filter := bson.M{}

	if q.ActiveOnly {
		filter["is_active"] = true
	}
	if q.Search != "" {
		re := containsRegex(q.Search)
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
			bson.M{"tags": bson.M{"$elemMatch": bson.M{"$regex": re}}},
		}
	}
	if q.Category != "" {
		filter["category"] = containsRegex(q.Category)
	}
	if q.JobType != "" {
		filter["job_type"] = containsRegex(q.JobType)
	}
	if q.ExperienceLevel != "" {
		filter["experience_level"] = containsRegex(q.ExperienceLevel)
	}
	if q.Location != "" {
		filter["location"] = containsRegex(q.Location)
	}
	if q.IsRemote != nil {
		filter["is_remote"] = *q.IsRemote
	}
	if q.SalaryMin != nil {
		filter["salary_max"] = bson.M{"$gte": *q.SalaryMin}
	}

	return filter
}

// searchSort maps a sort key to its ordering. Exactly one ordering is
// active per query; an unrecognized key falls back to newest-first.
func searchSort(sortBy string) bson.D {
	switch sortBy {
	case SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case SortSalaryHigh:
		return bson.D{{Key: "salary_max", Value: -1}}
	case SortSalaryLow:
		return bson.D{{Key: "salary_min", Value: 1}}
	case SortMostApplied:
		return bson.D{{Key: "applications_count", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
