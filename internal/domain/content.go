package domain

import "time"

// Hero is the landing page hero block. A site has at most one.
type Hero struct {
	ID        string
	Title     string
	Subtitle  string
	ImageURL  string
	CTA       string
	CTALink   string
	UpdatedAt time.Time
}

// About is the about/profile block. A site has at most one.
type About struct {
	ID        string
	Headline  string
	Body      string
	ImageURL  string
	Skills    []string
	UpdatedAt time.Time
}

// Project is a portfolio entry.
type Project struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	DemoURL     string
	RepoURL     string
	Tags        []string
	SortOrder   int
	Published   bool
	CreatedAt   time.Time
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

var (
	ErrHeroNotFound    = &Error{Code: ENOTFOUND, Message: "Hero content not found"}
	ErrAboutNotFound   = &Error{Code: ENOTFOUND, Message: "About content not found"}
	ErrProjectNotFound = &Error{Code: ENOTFOUND, Message: "Project not found"}
)
