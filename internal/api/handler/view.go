package handler

import "net/http"

// Link is one navigation entry and the method that follows it.
type Link struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Method string `json:"method"`
}

// successView is the confirmation screen shown after a completed form.
type successView struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Next    string `json:"next"`
}

var (
	authenticatedLinks = []Link{
		{Label: "Home", Path: "/home", Method: http.MethodGet},
		{Label: "Job Listings", Path: "/jobs", Method: http.MethodGet},
		{Label: "Job Trends", Path: "/trends", Method: http.MethodGet},
		{Label: "Eligibility Checker", Path: "/eligibility", Method: http.MethodGet},
		{Label: "Logout", Path: "/logout", Method: http.MethodPost},
	}
	anonymousLinks = []Link{
		{Label: "Login", Path: "/login", Method: http.MethodGet},
		{Label: "Register", Path: "/register", Method: http.MethodGet},
	}
)

// navigation returns the links the navbar shows for the given state.
func navigation(authenticated bool) []Link {
	if authenticated {
		return authenticatedLinks
	}
	return anonymousLinks
}
