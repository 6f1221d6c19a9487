package validation

import (
	"encoding/json"
	"strings"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

var createProjectFields = map[string]struct{}{
	"name":        {},
	"description": {},
	"color":       {},
}

// BuildCreateProjectInput turns a bound request into a domain input. The raw
// map distinguishes absent fields from present-but-null ones and catches
// fields the schema does not know about.
func BuildCreateProjectInput(req dto.CreateProjectRequest, raw map[string]json.RawMessage) (domain.CreateProjectInput, error) {
	if field, ok := unknownField(raw, createProjectFields); ok {
		return domain.CreateProjectInput{}, &FieldError{Field: field}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProjectInput{}, &FieldError{Field: "name"}
	}

	// A missing or malformed color falls back to the default instead of
	// failing the request.
	color := domain.DefaultProjectColor
	if req.Color != nil && domain.IsValidColor(*req.Color) {
		color = *req.Color
	}

	return domain.CreateProjectInput{
		Name:        name,
		Description: req.Description,
		Color:       color,
	}, nil
}

func BuildUpdateProjectInput(req dto.UpdateProjectRequest, raw map[string]json.RawMessage) (domain.UpdateProjectInput, error) {
	if field, ok := unknownField(raw, createProjectFields); ok {
		return domain.UpdateProjectInput{}, &FieldError{Field: field}
	}
	if len(raw) == 0 {
		return domain.UpdateProjectInput{}, ErrEmptyUpdate
	}

	var name *string
	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateProjectInput{}, &FieldError{Field: "name"}
		}
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProjectInput{}, &FieldError{Field: "name"}
		}
		name = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateProjectInput{}, &FieldError{Field: "description"}
	}

	var color *string
	if hasJSONField(raw, "color") {
		if req.Color == nil || !domain.IsValidColor(*req.Color) {
			return domain.UpdateProjectInput{}, &FieldError{Field: "color"}
		}
		color = req.Color
	}

	return domain.UpdateProjectInput{
		Name:           name,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Color:          color,
	}, nil
}
