package domain

import (
	"errors"
	"time"
)

var ErrApplicationNotFound = errors.New("application not found")

// Application is a submitted job application kept by the dashboard.
type Application struct {
	ID              string    `json:"id" bson:"_id"`
	Email           string    `json:"email" bson:"email"`
	JobTitle        string    `json:"job_title" bson:"job_title"`
	CompanyName     string    `json:"company_name" bson:"company_name"`
	ResumeName      string    `json:"resume_name" bson:"resume_name"`
	CoverLetterName string    `json:"cover_letter_name" bson:"cover_letter_name"`
	SubmittedAt     time.Time `json:"submitted_at" bson:"submitted_at"`
}
