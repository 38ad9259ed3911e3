package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Job is one posting as served by the remote job endpoints. Records are
// treated as immutable once fetched.
type Job struct {
	ID                string `json:"_id,omitempty"`
	Title             string `json:"title"`
	CompanyName       string `json:"companyName"`
	Location          string `json:"location"`
	ContractType      string `json:"contractType"`
	WorkType          string `json:"workType"`
	ExperienceLevel   string `json:"experienceLevel"`
	Sector            string `json:"sector"`
	Description       string `json:"description"`
	PublishedAt       Text   `json:"publishedAt"`
	ApplicationsCount Count  `json:"applicationsCount"`
}

// FilterField names a filterable job attribute.
type FilterField string

const (
	FieldCompany         FilterField = "company"
	FieldTitle           FilterField = "title"
	FieldLocation        FilterField = "location"
	FieldContractType    FilterField = "contract_type"
	FieldWorkType        FilterField = "work_type"
	FieldExperienceLevel FilterField = "experience_level"
	FieldSector          FilterField = "sector"
)

// FilterFields lists every filterable field in display order.
var FilterFields = []FilterField{
	FieldCompany,
	FieldTitle,
	FieldLocation,
	FieldContractType,
	FieldWorkType,
	FieldExperienceLevel,
	FieldSector,
}

// ParseFilterField maps a query parameter name to its FilterField.
func ParseFilterField(name string) (FilterField, error) {
	f := FilterField(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range FilterFields {
		if f == known {
			return f, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("unknown filter field %q", name))
}

// Value returns the job attribute the field refers to.
func (j Job) Value(f FilterField) string {
	switch f {
	case FieldCompany:
		return j.CompanyName
	case FieldTitle:
		return j.Title
	case FieldLocation:
		return j.Location
	case FieldContractType:
		return j.ContractType
	case FieldWorkType:
		return j.WorkType
	case FieldExperienceLevel:
		return j.ExperienceLevel
	case FieldSector:
		return j.Sector
	default:
		return ""
	}
}

// FilterCriteria maps a field to a free-text substring pattern. An absent or
// empty pattern places no constraint on the field.
type FilterCriteria map[FilterField]string

// Clone returns an independent copy with empty patterns dropped.
func (c FilterCriteria) Clone() FilterCriteria {
	out := make(FilterCriteria, len(c))
	for f, text := range c {
		if text != "" {
			out[f] = text
		}
	}
	return out
}

// Active returns the non-empty criteria fields in a stable order.
func (c FilterCriteria) Active() []FilterField {
	fields := make([]FilterField, 0, len(c))
	for f, text := range c {
		if text != "" {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// AggregateBucket is one slice of an aggregate statistic. Count is never
// negative.
type AggregateBucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
