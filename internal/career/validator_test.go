package career

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"careerhub-backend/internal/model"
)

const testOrgID = "64a1f0b2c3d4e5f601234567"

func validPayload() map[string]any {
	return map[string]any{
		"orgID":          testOrgID,
		"jobTitle":       "Backend Engineer",
		"description":    "<p>Build and run Go services</p>",
		"location":       "Manila",
		"workSetup":      model.WorkSetupHybrid,
		"employmentType": model.EmploymentFullTime,
		"lastStep":       float64(1),
	}
}

func TestBuildCareer_nilPayload(t *testing.T) {
	_, verr := BuildCareer(nil)
	assert.NotNil(t, verr)
	assert.Equal(t, KindInvalidPayload, verr.Kind)
}

func TestBuildCareer_invalidOrganizationID(t *testing.T) {
	cases := []any{
		nil,                         // missing
		"",                          // empty
		"64a1f0b2c3d4e5f60123456",   // 23 chars
		"64a1f0b2c3d4e5f6012345678", // 25 chars
		"64a1f0b2c3d4e5f60123456g",  // non-hex
		float64(12345),              // wrong type
	}
	for _, id := range cases {
		payload := validPayload()
		payload["orgID"] = id
		if id == nil {
			delete(payload, "orgID")
		}
		_, verr := BuildCareer(payload)
		assert.NotNil(t, verr, "orgID %v", id)
		assert.Equal(t, KindInvalidOrganizationID, verr.Kind, "orgID %v", id)
	}
}

func TestBuildCareer_validSubmission(t *testing.T) {
	career, verr := BuildCareer(validPayload())
	assert.Nil(t, verr)

	assert.Equal(t, testOrgID, career.OrgID)
	assert.Equal(t, "Backend Engineer", career.JobTitle)
	assert.Equal(t, model.StatusActive, career.Status)
	assert.Equal(t, 1, career.LastStep)
	assert.True(t, career.RequireVideo)
	assert.False(t, career.SalaryNegotiable)
	assert.Empty(t, career.PreScreeningQuestions)
	assert.JSONEq(t, "[]", string(career.Questions))

	// the identifier is assigned at persist time, not during validation
	assert.Empty(t, career.ID)
}

func TestBuildCareer_sanitizesTextFields(t *testing.T) {
	payload := validPayload()
	payload["jobTitle"] = "  Senior\x00 Engineer " + strings.Repeat("x", 200)
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)

	assert.NotContains(t, career.JobTitle, "\x00")
	assert.Len(t, []rune(career.JobTitle), 120)
	assert.True(t, strings.HasPrefix(career.JobTitle, "Senior Engineer"))
}

func TestBuildCareer_sanitizesDescriptionHTML(t *testing.T) {
	payload := validPayload()
	payload["description"] = "<p>intro</p><script>alert(1)</script>"
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Equal(t, "<p>intro</p>", career.Description)
}

func TestBuildCareer_requiredFields(t *testing.T) {
	for _, field := range []string{"jobTitle", "description", "location", "workSetup"} {
		payload := validPayload()
		payload[field] = "   "
		_, verr := BuildCareer(payload)
		assert.NotNil(t, verr, "field %s", field)
		assert.Equal(t, KindMissingRequiredField, verr.Kind, "field %s", field)
	}

	// a description that sanitizes to nothing counts as missing
	payload := validPayload()
	payload["description"] = "<script>alert(1)</script>"
	_, verr := BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, KindMissingRequiredField, verr.Kind)
}

func TestBuildCareer_enumValidation(t *testing.T) {
	payload := validPayload()
	payload["workSetup"] = "Moonbase"
	_, verr := BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, KindInvalidEnumValue, verr.Kind)
	assert.Equal(t, "Invalid workSetup", verr.Message)

	payload = validPayload()
	payload["employmentType"] = "Gig"
	_, verr = BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, "Invalid employmentType", verr.Message)

	payload = validPayload()
	payload["status"] = "archived"
	_, verr = BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, "Invalid status", verr.Message)

	// employmentType is optional
	payload = validPayload()
	delete(payload, "employmentType")
	_, verr = BuildCareer(payload)
	assert.Nil(t, verr)
}

func TestBuildCareer_statusDefaultsToActive(t *testing.T) {
	payload := validPayload()
	delete(payload, "status")
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Equal(t, model.StatusActive, career.Status)

	payload["status"] = model.StatusInactive
	career, verr = BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Equal(t, model.StatusInactive, career.Status)
}

func TestBuildCareer_lastStepBounds(t *testing.T) {
	for _, bad := range []any{nil, float64(0), float64(11), float64(3.5), "eleven", true} {
		payload := validPayload()
		payload["lastStep"] = bad
		if bad == nil {
			delete(payload, "lastStep")
		}
		_, verr := BuildCareer(payload)
		assert.NotNil(t, verr, "lastStep %v", bad)
		assert.Equal(t, KindInvalidLastStep, verr.Kind, "lastStep %v", bad)
	}

	// numeric strings are accepted
	payload := validPayload()
	payload["lastStep"] = "10"
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Equal(t, 10, career.LastStep)
}

func TestBuildCareer_salaryValidation(t *testing.T) {
	payload := validPayload()
	payload["minimumSalary"] = float64(-1)
	_, verr := BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, KindInvalidSalaryRange, verr.Kind)

	payload = validPayload()
	payload["minimumSalary"] = float64(90000)
	payload["maximumSalary"] = float64(50000)
	_, verr = BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, KindInvalidSalaryRange, verr.Kind)

	payload = validPayload()
	payload["minimumSalary"] = "40000"
	payload["maximumSalary"] = float64(60000)
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Equal(t, float64(40000), *career.MinimumSalary)
	assert.Equal(t, float64(60000), *career.MaximumSalary)

	// unparseable salary counts as absent
	payload = validPayload()
	payload["minimumSalary"] = "a lot"
	career, verr = BuildCareer(payload)
	assert.Nil(t, verr)
	assert.Nil(t, career.MinimumSalary)
}

func TestBuildCareer_requireVideoDefault(t *testing.T) {
	career, _ := BuildCareer(validPayload())
	assert.True(t, career.RequireVideo)

	payload := validPayload()
	payload["requireVideo"] = false
	career, _ = BuildCareer(payload)
	assert.False(t, career.RequireVideo)

	// only an explicit boolean false disables it
	payload["requireVideo"] = "false"
	career, _ = BuildCareer(payload)
	assert.True(t, career.RequireVideo)
}

func TestBuildCareer_questionsShape(t *testing.T) {
	payload := validPayload()
	payload["questions"] = "not an array"
	_, verr := BuildCareer(payload)
	assert.NotNil(t, verr)
	assert.Equal(t, KindInvalidQuestionsShape, verr.Kind)

	// absent or falsy questions become an empty array
	for _, falsy := range []any{nil, false, "", float64(0)} {
		payload = validPayload()
		payload["questions"] = falsy
		career, verr := BuildCareer(payload)
		assert.Nil(t, verr, "questions %v", falsy)
		assert.JSONEq(t, "[]", string(career.Questions))
	}
}

func TestBuildCareer_questionsDeepSanitized(t *testing.T) {
	payload := validPayload()
	payload["questions"] = []any{
		map[string]any{
			"text":    "  What is your notice period?\x00 ",
			"weight":  float64(2),
			"answers": []any{" 30 days ", " 60 days "},
		},
	}
	career, verr := BuildCareer(payload)
	assert.Nil(t, verr)
	assert.JSONEq(t,
		`[{"text":"What is your notice period?","weight":2,"answers":["30 days","60 days"]}]`,
		string(career.Questions))
}

func TestNormalizePreScreening_rangeClamp(t *testing.T) {
	qs := normalizePreScreening([]any{
		map[string]any{
			"question": "Expected salary?",
			"type":     model.QuestionRange,
			"min":      float64(100),
			"max":      float64(50),
		},
	})

	assert.Len(t, qs, 1)
	assert.Equal(t, float64(100), *qs[0].Min)
	assert.Equal(t, float64(100), *qs[0].Max)
	assert.Equal(t, model.DefaultCurrency, qs[0].Currency)
}

func TestNormalizePreScreening_negativeRangeCoercedToZero(t *testing.T) {
	qs := normalizePreScreening([]any{
		map[string]any{
			"question": "Budget?",
			"type":     model.QuestionRange,
			"min":      float64(-5),
			"max":      float64(-1),
		},
	})

	assert.Len(t, qs, 1)
	assert.Equal(t, float64(0), *qs[0].Min)
	assert.Equal(t, float64(0), *qs[0].Max)
}

func TestNormalizePreScreening_dropsEmptyQuestions(t *testing.T) {
	qs := normalizePreScreening([]any{
		map[string]any{
			"question": "   ",
			"type":     model.QuestionDropdown,
			"options":  []any{"a", "b"},
		},
		map[string]any{"question": "Willing to relocate?"},
	})

	assert.Len(t, qs, 1)
	assert.Equal(t, "Willing to relocate?", qs[0].Question)
}

func TestNormalizePreScreening_legacyStringEntries(t *testing.T) {
	qs := normalizePreScreening([]any{"Do you have a portfolio?", "", float64(5)})

	assert.Len(t, qs, 1)
	assert.Equal(t, "Do you have a portfolio?", qs[0].Question)
	assert.Equal(t, model.QuestionShortAnswer, qs[0].Type)
	assert.NotEmpty(t, qs[0].ID)
	assert.Equal(t, 0, qs[0].Position)
}

func TestNormalizePreScreening_unknownTypeFallsBack(t *testing.T) {
	qs := normalizePreScreening([]any{
		map[string]any{"question": "Why us?", "type": "essay"},
	})

	assert.Len(t, qs, 1)
	assert.Equal(t, model.QuestionShortAnswer, qs[0].Type)
}

func TestNormalizePreScreening_filtersOptions(t *testing.T) {
	qs := normalizePreScreening([]any{
		map[string]any{
			"question": "Preferred setup?",
			"type":     model.QuestionCheckboxes,
			"options":  []any{" Onsite ", "", float64(3), "Remote", strings.Repeat("o", 300)},
		},
	})

	assert.Len(t, qs, 1)
	assert.Len(t, qs[0].Options, 3)
	assert.Equal(t, "Onsite", qs[0].Options[0])
	assert.Equal(t, "Remote", qs[0].Options[1])
	assert.Len(t, qs[0].Options[2], 200)
}

func TestNormalizePreScreening_positionsAreSequential(t *testing.T) {
	qs := normalizePreScreening([]any{
		"First?",
		map[string]any{"question": ""},
		"Second?",
	})

	assert.Len(t, qs, 2)
	assert.Equal(t, 0, qs[0].Position)
	assert.Equal(t, 1, qs[1].Position)
}
