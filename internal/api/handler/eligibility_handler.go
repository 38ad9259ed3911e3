package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type EligibilityHandler struct {
	eligibilityService ports.EligibilityService
}

func NewEligibilityHandler(eligibilityService ports.EligibilityService) *EligibilityHandler {
	return &EligibilityHandler{eligibilityService: eligibilityService}
}

// Screen describes the eligibility form.
//
// @Summary      Eligibility screen
// @Tags         eligibility
// @Produce      json
// @Success      200  {object}  screenResponse
// @Router       /eligibility [get]
func (h *EligibilityHandler) Screen(c echo.Context) error {
	return c.JSON(http.StatusOK, screenResponse{
		Screen:        "eligibility",
		Authenticated: true,
		Links:         navigation(true),
	})
}

// Check uploads a resume and asks whether it qualifies for the role.
//
// @Summary      Check eligibility
// @Tags         eligibility
// @Accept       multipart/form-data
// @Produce      json
// @Param        job_title         formData  string  true   "Job title"
// @Param        experience_level  formData  string  false  "Experience level"
// @Param        resume            formData  file    true   "Resume (pdf, doc, docx)"
// @Success      200  {object}  domain.EligibilityResult
// @Failure      422  {object}  map[string]string
// @Router       /eligibility [post]
func (h *EligibilityHandler) Check(c echo.Context) error {
	resume, err := formDocument(c, "resume")
	if err != nil {
		return err
	}

	result, err := h.eligibilityService.Check(c.Request().Context(), domain.EligibilityRequest{
		JobTitle:        c.FormValue("job_title"),
		ExperienceLevel: c.FormValue("experience_level"),
		Resume:          resume,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
