package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

type applyResponse struct {
	successView
	Application *domain.Application `json:"application"`
}

type applicationsResponse struct {
	Count int                  `json:"count"`
	Data  []domain.Application `json:"data"`
}

// Apply submits a resume and cover letter for a job. Without job fields the
// job selected on the home screen is used.
//
// @Summary      Apply for a job
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        job_title     formData  string  false  "Job title"
// @Param        company_name  formData  string  false  "Company name"
// @Param        resume        formData  file    true   "Resume"
// @Param        cover_letter  formData  file    true   "Cover letter"
// @Success      201  {object}  applyResponse
// @Failure      422  {object}  map[string]string
// @Router       /apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	resume, err := formDocument(c, "resume")
	if err != nil {
		return err
	}
	coverLetter, err := formDocument(c, "cover_letter")
	if err != nil {
		return err
	}

	app, err := h.applicationService.Apply(c.Request().Context(), identity, ports.ApplyInput{
		JobTitle:    c.FormValue("job_title"),
		CompanyName: c.FormValue("company_name"),
		Resume:      resume,
		CoverLetter: coverLetter,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, applyResponse{
		successView: successView{
			Title:   "Application Submitted!",
			Message: "Your job application has been received",
			Next:    "/home",
		},
		Application: app,
	})
}

// List returns the applications of the signed-in user, newest first.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  applicationsResponse
// @Router       /apply [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	apps, err := h.applicationService.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	return c.JSON(http.StatusOK, applicationsResponse{Count: len(apps), Data: apps})
}
