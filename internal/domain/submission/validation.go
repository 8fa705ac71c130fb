package submission

import (
	"fmt"
	"strings"

	"github.com/vpstudios/backlot/internal/catalog"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Validation failure reasons.
const (
	ReasonMissing   = "missing"
	ReasonWrongType = "wrong_type"
	ReasonUnknown   = "unknown_value"
)

// ValidationError reports every field that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ParseInput validates an untyped JSON-like object and produces a typed Input.
// It is total: either every required field is present and well-typed and the
// full Input is returned, or a ValidationError enumerating all failures is
// returned. Unknown keys are ignored. Whitespace-only values count as missing
// for required text fields.
func ParseInput(raw map[string]any, cat *catalog.Catalog) (Input, error) {
	var in Input
	var fails []FieldError

	addFail := func(field, reason, message string) {
		fails = append(fails, FieldError{Field: field, Reason: reason, Message: message})
	}

	requiredText := func(field string) string {
		value, ok := raw[field]
		if !ok || value == nil {
			addFail(field, ReasonMissing, "required field is missing")
			return ""
		}
		text, ok := value.(string)
		if !ok {
			addFail(field, ReasonWrongType, "must be a string")
			return ""
		}
		if strings.TrimSpace(text) == "" {
			addFail(field, ReasonMissing, "must not be empty")
			return ""
		}
		return text
	}

	optionalText := func(field string) string {
		value, ok := raw[field]
		if !ok || value == nil {
			return ""
		}
		text, ok := value.(string)
		if !ok {
			addFail(field, ReasonWrongType, "must be a string")
			return ""
		}
		return text
	}

	in.ProjectName = requiredText("projectName")
	in.BrandName = optionalText("brandName")
	in.ProjectGoals = requiredText("projectGoals")
	in.Timeline = optionalText("timeline")
	in.AdditionalNotes = optionalText("additionalNotes")

	if packageType := requiredText("packageType"); packageType != "" {
		if !cat.Has(packageType) {
			addFail("packageType", ReasonUnknown, "not a configured package type")
		} else {
			in.PackageType = packageType
		}
	}

	if value, ok := raw["files"]; ok && value != nil {
		in.Files = parseFiles(value, addFail)
	}

	if len(fails) > 0 {
		return Input{}, &ValidationError{Fields: fails}
	}
	return in, nil
}

func parseFiles(value any, addFail func(field, reason, message string)) []FileMeta {
	items, ok := value.([]any)
	if !ok {
		addFail("files", ReasonWrongType, "must be an array of file metadata")
		return nil
	}

	files := make([]FileMeta, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			addFail(fmt.Sprintf("files[%d]", i), ReasonWrongType, "must be an object")
			continue
		}

		name, ok := entry["name"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			addFail(fmt.Sprintf("files[%d].name", i), ReasonMissing, "file name is required")
			continue
		}
		// JSON numbers decode as float64.
		size, ok := entry["size"].(float64)
		if !ok || size < 0 {
			addFail(fmt.Sprintf("files[%d].size", i), ReasonWrongType, "file size must be a non-negative number")
			continue
		}
		fileType, _ := entry["type"].(string)

		files = append(files, FileMeta{Name: name, Size: int64(size), Type: fileType})
	}
	return files
}
