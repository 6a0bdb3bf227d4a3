package schema

import (
	"fmt"
	"strings"
)

// FieldError is a single constraint violation.
type FieldError struct {
	Field      string // YAML path, e.g. "personal.name.first"
	Constraint string // violated constraint, e.g. "required", "email", "max=50"
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s (%s)", e.Field, e.Constraint)
}

// SchemaError reports that a record failed validation. It lists every
// violated field; validation never partially succeeds.
type SchemaError struct {
	Fields []FieldError
}

func (e *SchemaError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "schema: invalid record: " + strings.Join(parts, ", ")
}
