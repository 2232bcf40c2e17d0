// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Work setup values a career posting may carry.
const (
	WorkSetupRemote = "Fully Remote"
	WorkSetupOnsite = "Onsite"
	WorkSetupHybrid = "Hybrid"
)

// Employment type values.
const (
	EmploymentFullTime = "Full-Time"
	EmploymentPartTime = "Part-Time"
)

// Career status values. Postings are never physically deleted,
// closing one means flipping status to inactive.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Pre-screening question types. Unrecognized input falls back to short-answer.
const (
	QuestionDropdown    = "dropdown"
	QuestionRange       = "range"
	QuestionShortAnswer = "short-answer"
	QuestionLongAnswer  = "long-answer"
	QuestionCheckboxes  = "checkboxes"
)

// DefaultCurrency is used when a range question does not name one.
const DefaultCurrency = "PHP"

// UserInfo is a snapshot of the acting user captured at write time,
// not a reference to a user record.
type UserInfo struct {
	Image string `json:"image"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PreScreeningQuestion is one normalized screening question attached to a career.
type PreScreeningQuestion struct {
	ID       string         `gorm:"primaryKey;type:text" json:"id"`
	CareerID string         `gorm:"not null;index;<-:create" json:"-"`
	Position int            `gorm:"not null" json:"-"`
	Question string         `gorm:"type:text;not null" json:"question"`
	Type     string         `gorm:"type:text;not null" json:"type"`
	Options  pq.StringArray `gorm:"type:text[]" json:"options,omitempty"`
	Min      *float64       `json:"min,omitempty"`
	Max      *float64       `json:"max,omitempty"`
	Currency string         `gorm:"type:text" json:"currency,omitempty"`
	Required bool           `json:"required"`
}

// Career is gorm model for one job opening owned by an organization.
type Career struct {
	ID    string `gorm:"primaryKey;type:text;<-:create" json:"id"`
	OrgID string `gorm:"type:char(24);not null;index;<-:create" json:"orgID"`

	JobTitle         string `gorm:"type:text;not null" json:"jobTitle"`
	Description      string `gorm:"type:text;not null" json:"description"`
	Location         string `gorm:"type:text;not null" json:"location"`
	Province         string `gorm:"type:text" json:"province"`
	Country          string `gorm:"type:text" json:"country"`
	WorkSetup        string `gorm:"type:text;not null" json:"workSetup"`
	WorkSetupRemarks string `gorm:"type:text" json:"workSetupRemarks"`
	EmploymentType   string `gorm:"type:text" json:"employmentType"`
	Status           string `gorm:"type:text;not null;default:'active';index" json:"status"`
	ScreeningSetting string `gorm:"type:text" json:"screeningSetting"`

	MinimumSalary    *float64 `json:"minimumSalary,omitempty"`
	MaximumSalary    *float64 `json:"maximumSalary,omitempty"`
	SalaryNegotiable bool     `json:"salaryNegotiable"`
	RequireVideo     bool     `json:"requireVideo"`
	LastStep         int      `gorm:"not null" json:"lastStep"`

	Questions             datatypes.JSON         `gorm:"type:jsonb" json:"questions"`
	PreScreeningQuestions []PreScreeningQuestion `gorm:"foreignKey:CareerID;constraint:OnDelete:CASCADE" json:"preScreeningQuestions"`

	CreatedBy    UserInfo `gorm:"embedded;embeddedPrefix:created_by_" json:"createdBy"`
	LastEditedBy UserInfo `gorm:"embedded;embeddedPrefix:last_edited_by_" json:"lastEditedBy"`

	CreatedAt      time.Time `gorm:"type:timestamp" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"type:timestamp" json:"updatedAt"`
	LastActivityAt time.Time `gorm:"type:timestamp" json:"lastActivityAt"`
}

// ValidWorkSetups lists accepted workSetup values.
var ValidWorkSetups = []string{WorkSetupRemote, WorkSetupOnsite, WorkSetupHybrid}

// ValidEmploymentTypes lists accepted employmentType values.
var ValidEmploymentTypes = []string{EmploymentFullTime, EmploymentPartTime}

// ValidStatuses lists accepted status values.
var ValidStatuses = []string{StatusActive, StatusInactive}

// ValidQuestionTypes lists accepted pre-screening question types.
var ValidQuestionTypes = []string{
	QuestionDropdown,
	QuestionRange,
	QuestionShortAnswer,
	QuestionLongAnswer,
	QuestionCheckboxes,
}
