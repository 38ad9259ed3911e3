package domain

// Document is an uploaded file such as a resume or a cover letter.
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Empty reports whether nothing was uploaded.
func (d *Document) Empty() bool {
	return d == nil || len(d.Content) == 0
}

// DocumentTypes are the media types accepted for resumes and cover letters.
var DocumentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// EligibilityRequest asks whether a resume qualifies for a role.
type EligibilityRequest struct {
	JobTitle        string
	ExperienceLevel string
	Resume          *Document
}

// EligibilityResult is the verdict of an eligibility check. Courses is only
// populated for ineligible results.
type EligibilityResult struct {
	Eligible bool     `json:"eligible"`
	Message  string   `json:"message,omitempty"`
	Courses  []string `json:"courses,omitempty"`
}
