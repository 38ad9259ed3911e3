package domain

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizeCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"nil", nil, 0},
		{"int", 7, 7},
		{"float truncated", 7.9, 7},
		{"numeric string", "42", 42},
		{"string with words", "42 jobs", 42},
		{"thousands separator", "1,200 applicants", 1200},
		{"no digits", "abc", 0},
		{"empty string", "", 0},
		{"negative number", -3.0, 0},
		{"nan", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
		{"bool", true, 0},
		{"object", map[string]any{"n": 1}, 0},
		{"json number", json.Number("15"), 15},
		{"overflowing digits", "99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCount(tt.in); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestJob_DecodesLooseFields(t *testing.T) {
	raw := `[
		{"title":"Go Engineer","companyName":"Acme","applicationsCount":"12 applicants","publishedAt":2024},
		{"title":"Data Analyst","companyName":"Globex","applicationsCount":31,"publishedAt":"2024-03-01"},
		{"title":"Intern","companyName":"Initech","applicationsCount":null,"publishedAt":null}
	]`

	var jobs []Job
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	if jobs[0].ApplicationsCount != 12 || jobs[0].PublishedAt != "2024" {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].ApplicationsCount != 31 || jobs[1].PublishedAt != "2024-03-01" {
		t.Fatalf("unexpected second job: %+v", jobs[1])
	}
	if jobs[2].ApplicationsCount != 0 || jobs[2].PublishedAt != "" {
		t.Fatalf("unexpected third job: %+v", jobs[2])
	}
}

func TestCount_MalformedValueDecodesAsZero(t *testing.T) {
	var job Job
	if err := json.Unmarshal([]byte(`{"title":"x","applicationsCount":{"n":3}}`), &job); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if job.ApplicationsCount != 0 {
		t.Fatalf("expected 0, got %d", job.ApplicationsCount)
	}
}
