package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Email":              "Email",
	"Name":               "Name",
	"PreferredLocations": "Preferred Locations",
	"ExpectedSalaryMin":  "Expected Salary (Min)",
	"ExpectedSalaryMax":  "Expected Salary (Max)",
	"ExperienceYears":    "Years of Experience",
	"CurrentRole":        "Current Role",
	"PrimarySkills":      "Primary Skills",
	"ReceiverEmails":     "Receiver Emails",
	"Locations":          "Locations",
	"SalaryRanges":       "Salary Ranges",
	"JobTitle":           "Job Title",
}

// FormatError turns a validator error into a single readable message.
func FormatError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var parts []string
	for _, fe := range verrs {
		label := FieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", label))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email address", label))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must have at least %s items/characters", label, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s may have at most %s items/characters", label, fe.Param()))
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", label, fe.Param()))
		case "valid_name":
			parts = append(parts, fmt.Sprintf("%s contains invalid characters", label))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", label))
		}
	}
	return strings.Join(parts, "; ")
}
