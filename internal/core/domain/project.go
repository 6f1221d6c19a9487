package domain

import (
	"regexp"
	"time"
)

// DefaultProjectColor is applied when a project is created without a color
// or with one that does not match the accepted token format.
const DefaultProjectColor = "#3B82F6"

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidColor reports whether value is a 6-hex-digit color token.
func IsValidColor(value string) bool {
	return colorPattern.MatchString(value)
}

type Project struct {
	ID          int64
	Name        string
	Description *string
	Color       string
	CreatedAt   time.Time
}

type CreateProjectInput struct {
	Name        string
	Description *string
	Color       string
}

// UpdateProjectInput carries a partial update. The *Set flags distinguish
// "field absent" from "field present with a null/zero value".
type UpdateProjectInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Color          *string
}
