package domain

// Trends is the normalized statistics container behind the trends screen.
// Every series is present; an absent source list becomes an empty series.
type Trends struct {
	ExperienceLevels      []AggregateBucket `json:"experience_levels"`
	Sectors               []AggregateBucket `json:"sectors"`
	Locations             []AggregateBucket `json:"locations"`
	ContractTypes         []AggregateBucket `json:"contract_types"`
	WorkTypes             []AggregateBucket `json:"work_types"`
	Titles                []AggregateBucket `json:"titles"`
	CompanyNames          []AggregateBucket `json:"company_names"`
	TrendsOverTime        []AggregateBucket `json:"trends_over_time"`
	ApplicationsHistogram []AggregateBucket `json:"applications_histogram"`
	TopSkills             []AggregateBucket `json:"top_skills"`

	ContractVsExperience []ComparisonPoint `json:"contract_vs_experience"`
	TitlesVsApplications []ComparisonPoint `json:"titles_vs_applications"`
	TitlesVsCompanies    []ComparisonPoint `json:"titles_vs_companies"`
}

// ComparisonPoint pairs two series by position. A missing partner counts 0.
type ComparisonPoint struct {
	Name      string `json:"name"`
	Primary   int    `json:"primary"`
	Secondary int    `json:"secondary"`
}

// Breakdown is computed locally from the job collection.
type Breakdown struct {
	Total            int               `json:"total"`
	JobTypes         []AggregateBucket `json:"job_types"`
	Sectors          []AggregateBucket `json:"sectors"`
	PostingsOverTime []AggregateBucket `json:"postings_over_time"`
}
