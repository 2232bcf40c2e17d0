package career

import "net/http"

// Machine-readable kinds for submission rejections.
const (
	KindInvalidPayload        = "InvalidPayload"
	KindInvalidOrganizationID = "InvalidOrganizationId"
	KindMissingRequiredField  = "MissingRequiredField"
	KindInvalidEnumValue      = "InvalidEnumValue"
	KindInvalidLastStep       = "InvalidLastStep"
	KindInvalidSalaryRange    = "InvalidSalaryRange"
	KindInvalidQuestionsShape = "InvalidQuestionsShape"
	KindOrganizationNotFound  = "OrganizationNotFound"
	KindQuotaExceeded         = "QuotaExceeded"
	KindInternalError         = "InternalError"
)

// ValidationError is a structured rejection: a machine-readable kind, a
// human-readable message and the HTTP status the handler should respond with.
type ValidationError struct {
	Kind    string `json:"kind"`
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func badRequest(kind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message, Status: http.StatusBadRequest}
}

func errInvalidPayload() *ValidationError {
	return badRequest(KindInvalidPayload, "Invalid payload")
}

func errInvalidOrganizationID() *ValidationError {
	return badRequest(KindInvalidOrganizationID, "Invalid organization ID")
}

func errMissingRequiredField() *ValidationError {
	return badRequest(KindMissingRequiredField, "jobTitle, description, location and workSetup are required")
}

func errInvalidEnumValue(field string) *ValidationError {
	return badRequest(KindInvalidEnumValue, "Invalid "+field)
}

func errInvalidLastStep() *ValidationError {
	return badRequest(KindInvalidLastStep, "Invalid lastStep")
}

func errNegativeSalary() *ValidationError {
	return badRequest(KindInvalidSalaryRange, "Salary cannot be negative")
}

func errInvertedSalaryRange() *ValidationError {
	return badRequest(KindInvalidSalaryRange, "minimumSalary cannot be greater than maximumSalary")
}

func errInvalidQuestionsShape() *ValidationError {
	return badRequest(KindInvalidQuestionsShape, "questions must be an array")
}

func errOrganizationNotFound() *ValidationError {
	return &ValidationError{
		Kind:    KindOrganizationNotFound,
		Message: "Organization not found",
		Status:  http.StatusNotFound,
	}
}

func errQuotaExceeded() *ValidationError {
	return badRequest(KindQuotaExceeded, "You have reached the maximum number of jobs for your plan")
}

func errInternal() *ValidationError {
	return &ValidationError{
		Kind:    KindInternalError,
		Message: "Failed to add career",
		Status:  http.StatusInternalServerError,
	}
}
