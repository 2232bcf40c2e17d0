// Package career implements the career posting submission pipeline: a pure
// validator/sanitizer that turns an untrusted JSON payload into a persistable
// record, and the gin handlers that wrap it with storage and quota checks.
package career

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"careerhub-backend/internal/model"
	"careerhub-backend/internal/sanitize"
	"careerhub-backend/internal/utilities"
)

// Per-field length caps, matching the legacy submission contract.
const (
	maxJobTitleLen         = 120
	maxLocationLen         = 160
	maxWorkSetupLen        = 32
	maxScreeningSettingLen = 64
	maxStatusLen           = 16
	maxCountryLen          = 80
	maxProvinceLen         = 120
	maxEmploymentTypeLen   = 32
	maxQuestionLeafLen     = 1000
	maxOptionLen           = 200
	maxCurrencyLen         = 8
	maxQuestionIDLen       = 64
)

var orgIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

// BuildCareer runs the full sanitization/validation pipeline over a decoded
// JSON payload. It is free of side effects: no identifier is assigned and no
// database is touched, so every rejection happens before any write could.
func BuildCareer(payload map[string]any) (*model.Career, *ValidationError) {
	if payload == nil {
		return nil, errInvalidPayload()
	}

	orgID, _ := payload["orgID"].(string)
	if !orgIDPattern.MatchString(orgID) {
		return nil, errInvalidOrganizationID()
	}

	career := &model.Career{
		OrgID:            orgID,
		JobTitle:         sanitize.Text(payload["jobTitle"], maxJobTitleLen),
		Description:      sanitize.HTML(payload["description"]),
		Location:         sanitize.Text(payload["location"], maxLocationLen),
		Province:         sanitize.Text(payload["province"], maxProvinceLen),
		Country:          sanitize.Text(payload["country"], maxCountryLen),
		WorkSetup:        sanitize.Text(payload["workSetup"], maxWorkSetupLen),
		WorkSetupRemarks: sanitize.HTML(payload["workSetupRemarks"]),
		EmploymentType:   sanitize.Text(payload["employmentType"], maxEmploymentTypeLen),
		Status:           sanitize.Text(payload["status"], maxStatusLen),
		ScreeningSetting: sanitize.Text(payload["screeningSetting"], maxScreeningSettingLen),
		CreatedBy:        sanitize.UserInfo(payload["createdBy"]),
		LastEditedBy:     sanitize.UserInfo(payload["lastEditedBy"]),
		SalaryNegotiable: truthy(payload["salaryNegotiable"]),
		RequireVideo:     requireVideo(payload["requireVideo"]),
	}
	if career.Status == "" {
		career.Status = model.StatusActive
	}

	// Enum membership. workSetup doubles as a required field, empty values
	// are reported by the required-field check below instead.
	if career.WorkSetup != "" && !utilities.Contains(model.ValidWorkSetups, career.WorkSetup) {
		return nil, errInvalidEnumValue("workSetup")
	}
	if career.EmploymentType != "" && !utilities.Contains(model.ValidEmploymentTypes, career.EmploymentType) {
		return nil, errInvalidEnumValue("employmentType")
	}
	if !utilities.Contains(model.ValidStatuses, career.Status) {
		return nil, errInvalidEnumValue("status")
	}

	if career.JobTitle == "" || strings.TrimSpace(career.Description) == "" ||
		career.Location == "" || career.WorkSetup == "" {
		return nil, errMissingRequiredField()
	}

	lastStep, ok := parseNumber(payload["lastStep"])
	if !ok || lastStep != math.Trunc(lastStep) || lastStep < 1 || lastStep > 10 {
		return nil, errInvalidLastStep()
	}
	career.LastStep = int(lastStep)

	if min, ok := parseNumber(payload["minimumSalary"]); ok {
		if min < 0 {
			return nil, errNegativeSalary()
		}
		career.MinimumSalary = &min
	}
	if max, ok := parseNumber(payload["maximumSalary"]); ok {
		if max < 0 {
			return nil, errNegativeSalary()
		}
		career.MaximumSalary = &max
	}
	if career.MinimumSalary != nil && career.MaximumSalary != nil &&
		*career.MinimumSalary > *career.MaximumSalary {
		return nil, errInvertedSalaryRange()
	}

	questions, verr := sanitizeQuestions(payload["questions"])
	if verr != nil {
		return nil, verr
	}
	career.Questions = questions

	career.PreScreeningQuestions = normalizePreScreening(payload["preScreeningQuestions"])

	return career, nil
}

// sanitizeQuestions deep-sanitizes the free-form questions structure. An
// absent or falsy value becomes an empty array; a truthy non-array is
// rejected rather than coerced.
func sanitizeQuestions(v any) (datatypes.JSON, *ValidationError) {
	arr, ok := v.([]any)
	if !ok {
		if truthy(v) {
			return nil, errInvalidQuestionsShape()
		}
		arr = []any{}
	}
	sanitized := sanitize.Deep(arr, maxQuestionLeafLen)
	raw, err := json.Marshal(sanitized)
	if err != nil {
		return nil, errInternal()
	}
	return datatypes.JSON(raw), nil
}

// normalizePreScreening coerces each entry into the fixed question shape.
// Bare strings (the shape the legacy form submitted) become short-answer
// questions; entries whose question text sanitizes to empty are dropped.
func normalizePreScreening(v any) []model.PreScreeningQuestion {
	items, ok := v.([]any)
	if !ok {
		return []model.PreScreeningQuestion{}
	}

	out := make([]model.PreScreeningQuestion, 0, len(items))
	for _, item := range items {
		var q model.PreScreeningQuestion
		switch entry := item.(type) {
		case string:
			q.Question = sanitize.Text(entry, maxQuestionLeafLen)
			q.Type = model.QuestionShortAnswer
		case map[string]any:
			q.ID = sanitize.Text(entry["id"], maxQuestionIDLen)
			q.Question = sanitize.Text(entry["question"], maxQuestionLeafLen)
			q.Type = normalizeQuestionType(entry["type"])
			q.Required = truthy(entry["required"])
			switch q.Type {
			case model.QuestionDropdown, model.QuestionCheckboxes:
				q.Options = filterOptions(entry["options"])
			case model.QuestionRange:
				min := 0.0
				if f, ok := parseNumber(entry["min"]); ok && f > 0 {
					min = f
				}
				// max is clamped up so a range can never be inverted
				max := min
				if f, ok := parseNumber(entry["max"]); ok && f > max {
					max = f
				}
				q.Min = &min
				q.Max = &max
				q.Currency = sanitize.Text(entry["currency"], maxCurrencyLen)
				if q.Currency == "" {
					q.Currency = model.DefaultCurrency
				}
			}
		default:
			continue
		}
		if q.Question == "" {
			continue
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		q.Position = len(out)
		out = append(out, q)
	}
	return out
}

func normalizeQuestionType(v any) string {
	t := sanitize.Text(v, maxWorkSetupLen)
	if utilities.Contains(model.ValidQuestionTypes, t) {
		return t
	}
	return model.QuestionShortAnswer
}

func filterOptions(v any) pq.StringArray {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		if s := sanitize.Text(item, maxOptionLen); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseNumber accepts JSON numbers and non-empty numeric strings. Anything
// else, including NaN/Inf spellings, counts as absent.
func parseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// truthy mirrors JSON-side truthiness for flag fields that arrive untyped.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// requireVideo defaults to true unless the caller explicitly sent false.
func requireVideo(v any) bool {
	if b, ok := v.(bool); ok && !b {
		return false
	}
	return true
}
