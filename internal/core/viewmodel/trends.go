package viewmodel

import (
	"strconv"
	"strings"
	"time"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// NormalizeStats applies NormalizeBuckets to every category of a raw
// statistics container and derives the comparison series.
func NormalizeStats(container map[string]any) domain.Trends {
	series := func(name string) []domain.AggregateBucket {
		return NormalizeBuckets(container[name], KeyField, CountField)
	}

	t := domain.Trends{
		ExperienceLevels:      series("experienceLevels"),
		Sectors:               series("sectors"),
		Locations:             series("locations"),
		ContractTypes:         series("contractTypes"),
		WorkTypes:             series("workTypes"),
		Titles:                series("titles"),
		CompanyNames:          series("companyNames"),
		TrendsOverTime:        series("trendsOverTime"),
		ApplicationsHistogram: series("applicationsHistogram"),
		TopSkills:             series("topSkills"),
	}
	t.ContractVsExperience = Compare(t.ContractTypes, t.ExperienceLevels)
	t.TitlesVsApplications = Compare(t.Titles, t.ApplicationsHistogram)
	t.TitlesVsCompanies = Compare(t.Titles, t.CompanyNames)
	return t
}

// Compare zips two series by position, named after the primary series. The
// result is as long as the primary series.
func Compare(primary, secondary []domain.AggregateBucket) []domain.ComparisonPoint {
	out := make([]domain.ComparisonPoint, 0, len(primary))
	for i, b := range primary {
		p := domain.ComparisonPoint{Name: b.Key, Primary: b.Count}
		if i < len(secondary) {
			p.Secondary = secondary[i].Count
		}
		out = append(out, p)
	}
	return out
}

// CountBy groups jobs by the key function, keeping first-seen key order.
// Empty keys are grouped under UnknownKey.
func CountBy(jobs []domain.Job, key func(domain.Job) string) []domain.AggregateBucket {
	index := make(map[string]int)
	out := make([]domain.AggregateBucket, 0)
	for _, j := range jobs {
		k := strings.TrimSpace(key(j))
		if k == "" {
			k = UnknownKey
		}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, domain.AggregateBucket{Key: k, Count: 1})
	}
	return out
}

// Breakdown computes the local statistics screen from a job collection.
func Breakdown(jobs []domain.Job) domain.Breakdown {
	return domain.Breakdown{
		Total:            len(jobs),
		JobTypes:         CountBy(jobs, func(j domain.Job) string { return j.ContractType }),
		Sectors:          CountBy(jobs, func(j domain.Job) string { return j.Sector }),
		PostingsOverTime: CountBy(jobs, func(j domain.Job) string { return PostingPeriod(string(j.PublishedAt)) }),
	}
}

var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// PostingPeriod buckets a publication date by month ("2024-03"). A bare
// year is kept as the year; anything unparseable is UnknownKey.
func PostingPeriod(published string) string {
	published = strings.TrimSpace(published)
	if published == "" {
		return UnknownKey
	}
	if y, err := strconv.Atoi(published); err == nil && y > 0 {
		return strconv.Itoa(y)
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, published); err == nil {
			return t.Format("2006-01")
		}
	}
	return UnknownKey
}
