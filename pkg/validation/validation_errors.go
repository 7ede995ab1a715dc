package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":                "First name",
	"Surname":             "Last name",
	"PNR":                 "Personal number",
	"Email":               "Email",
	"Password":            "Password",
	"Username":            "Username",
	"CompetenceID":        "Competence",
	"CompetenceProfileID": "Competence profile",
	"YearsOfExperience":   "Years of experience",
	"AvailabilityID":      "Availability",
	"FromDate":            "From date",
	"ToDate":              "To date",
	"Locale":              "Locale",
	"Status":              "Status",
	"CurrentStatus":       "Current status",
	"Token":               "Token",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins FormatValidationErrors into one line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters long", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters long", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)
	case "gte":
		return fmt.Sprintf("%s: must be %s or greater", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email address", label)
	case "pnr":
		return fmt.Sprintf("%s: must be in the format YYYYMMDD-XXXX and start with 19 or 20", label)
	case "strong_password":
		return fmt.Sprintf("%s: must contain an uppercase letter, a lowercase letter and a number", label)
	case "iso_date":
		return fmt.Sprintf("%s: must be a date in the format YYYY-MM-DD", label)
	case "locale":
		return fmt.Sprintf("%s: must be a two letter code", label)
	case "nefield":
		return fmt.Sprintf("%s: must differ from %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
