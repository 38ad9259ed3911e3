package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type searchRequest struct {
	Company  string `json:"company" form:"company"`
	JobTitle string `json:"job_title" form:"job_title"`
}

type homeResponse struct {
	Job   *domain.Job `json:"job"`
	Error string      `json:"error,omitempty"`
}

type listingResponse struct {
	Total    int                   `json:"total"`
	Count    int                   `json:"count"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Jobs     []domain.Job          `json:"jobs"`
}

// Home returns the job the last search selected, or the message of the
// failure that search ended with.
//
// @Summary      Home screen
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  homeResponse
// @Router       /home [get]
func (h *JobHandler) Home(c echo.Context) error {
	job, err := h.jobService.Selected()
	resp := homeResponse{Job: job}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// Search looks up a job by company and title.
//
// @Summary      Search for a job
// @Tags         jobs
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      searchRequest  true  "Company and job title"
// @Success      200   {object}  homeResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /home/search [post]
func (h *JobHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobService.Search(c.Request().Context(), req.Company, req.JobTitle)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, homeResponse{Job: job})
}

// Listings returns the job collection narrowed by the filter fields given
// as query parameters. refresh=true reloads the collection first.
//
// @Summary      Job listings
// @Tags         jobs
// @Produce      json
// @Param        company           query  string  false  "Company substring"
// @Param        title             query  string  false  "Title substring"
// @Param        location          query  string  false  "Location substring"
// @Param        contract_type     query  string  false  "Contract type substring"
// @Param        work_type         query  string  false  "Work type substring"
// @Param        experience_level  query  string  false  "Experience level substring"
// @Param        sector            query  string  false  "Sector substring"
// @Param        refresh           query  bool    false  "Reload the collection"
// @Success      200  {object}  listingResponse
// @Router       /jobs [get]
func (h *JobHandler) Listings(c echo.Context) error {
	criteria := criteriaFromQuery(c)

	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	jobs, total, err := h.jobService.Listing(c.Request().Context(), criteria, refresh)
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	return c.JSON(http.StatusOK, listingResponse{
		Total:    total,
		Count:    len(jobs),
		Criteria: criteria,
		Jobs:     jobs,
	})
}

// criteriaFromQuery picks the filter fields out of the query string.
// Unknown parameters are ignored.
func criteriaFromQuery(c echo.Context) domain.FilterCriteria {
	criteria := domain.FilterCriteria{}
	for _, f := range domain.FilterFields {
		if v := c.QueryParam(string(f)); v != "" {
			criteria[f] = v
		}
	}
	return criteria
}
