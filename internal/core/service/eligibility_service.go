package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const invalidDocumentMessage = "Invalid file format. Please upload a PDF, DOC, or DOCX."

// RelatedCourses are suggested when the server rejects a candidate without
// naming any courses.
var RelatedCourses = []string{
	"Advanced Python for Data Science",
	"System Design Fundamentals",
	"Mastering Software Development",
	"Job Interview Prep: Tech Edition",
}

// EligibilityService submits a resume for an eligibility verdict.
type EligibilityService struct {
	gw   ports.Gateway
	path string
	log  zerolog.Logger
}

func NewEligibilityService(gw ports.Gateway, path string, log zerolog.Logger) *EligibilityService {
	return &EligibilityService{gw: gw, path: path, log: log}
}

// Check validates the resume locally, then asks the remote API. Invalid
// uploads never reach the network.
func (s *EligibilityService) Check(ctx context.Context, req domain.EligibilityRequest) (*domain.EligibilityResult, error) {
	if strings.TrimSpace(req.JobTitle) == "" {
		return nil, domain.NewValidationError("Please enter a job title.")
	}
	if req.Resume.Empty() {
		return nil, domain.NewValidationError("Please upload a resume.")
	}
	if !AcceptDocument(req.Resume) {
		return nil, domain.NewValidationError(invalidDocumentMessage)
	}

	body, contentType, err := eligibilityForm(req)
	if err != nil {
		return nil, eligibilityMessages.explain(&domain.UnexpectedError{Raw: err.Error()})
	}

	resp, err := s.gw.Do(ctx, ports.Request{
		Method:      http.MethodPost,
		Path:        s.path,
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		s.log.Info().Err(err).Str("job_title", req.JobTitle).Msg("eligibility check failed")
		return nil, eligibilityMessages.explain(err)
	}

	var result domain.EligibilityResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, eligibilityMessages.explain(&domain.UnexpectedError{Raw: err.Error()})
	}
	if !result.Eligible && len(result.Courses) == 0 {
		result.Courses = append([]string(nil), RelatedCourses...)
	}
	return &result, nil
}

func eligibilityForm(req domain.EligibilityRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("job_title", strings.TrimSpace(req.JobTitle)); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("experience_level", strings.TrimSpace(req.ExperienceLevel)); err != nil {
		return nil, "", err
	}
	if err := writeDocument(w, "resume", req.Resume); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeDocument(w *multipart.Writer, field string, doc *domain.Document) error {
	name := doc.Filename
	if name == "" {
		name = field
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, name))
	h.Set("Content-Type", DocumentType(doc))
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(doc.Content)
	return err
}

var _ ports.EligibilityService = (*EligibilityService)(nil)
