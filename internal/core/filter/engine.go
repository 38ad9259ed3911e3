// Package filter narrows a fetched job collection by free-text criteria.
package filter

import (
	"strings"
	"sync"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// Engine holds a job collection and the active criteria, and keeps the
// visible subset in step with both.
type Engine struct {
	mu       sync.RWMutex
	all      []domain.Job
	criteria domain.FilterCriteria
	visible  []domain.Job
	loaded   bool
}

func NewEngine() *Engine {
	return &Engine{criteria: domain.FilterCriteria{}, visible: []domain.Job{}}
}

// SetCollection replaces the collection and recomputes the visible subset.
func (e *Engine) SetCollection(jobs []domain.Job) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.all = append([]domain.Job(nil), jobs...)
	e.loaded = true
	e.recompute()
}

// SetCriteria replaces every criterion at once.
func (e *Engine) SetCriteria(c domain.FilterCriteria) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria = c.Clone()
	e.recompute()
}

// SetCriterion changes one criterion; empty text clears it.
func (e *Engine) SetCriterion(field domain.FilterField, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if text == "" {
		delete(e.criteria, field)
	} else {
		e.criteria[field] = text
	}
	e.recompute()
}

// Filter replaces the criteria and returns the resulting visible subset
// under one lock, so concurrent callers each get the subset of their own
// criteria.
func (e *Engine) Filter(c domain.FilterCriteria) []domain.Job {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.criteria = c.Clone()
	e.recompute()
	return append([]domain.Job{}, e.visible...)
}

func (e *Engine) Criteria() domain.FilterCriteria {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.criteria.Clone()
}

// Visible returns a copy of the jobs matching every active criterion, in
// collection order.
func (e *Engine) Visible() []domain.Job {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]domain.Job{}, e.visible...)
}

// Collection returns a copy of the full collection.
func (e *Engine) Collection() []domain.Job {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]domain.Job{}, e.all...)
}

// Loaded reports whether a collection has been set.
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loaded
}

func (e *Engine) recompute() {
	e.visible = Apply(e.all, e.criteria)
}

// Apply returns the jobs matching every non-empty criterion. Jobs are never
// modified; order is preserved.
func Apply(jobs []domain.Job, criteria domain.FilterCriteria) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, criteria) {
			out = append(out, j)
		}
	}
	return out
}

// Matches reports whether each non-empty criterion is a case-insensitive
// substring of the job's corresponding field. Criteria are not trimmed, so
// whitespace is part of the pattern.
func Matches(j domain.Job, criteria domain.FilterCriteria) bool {
	for field, text := range criteria {
		if text == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(j.Value(field)), strings.ToLower(text)) {
			return false
		}
	}
	return true
}
