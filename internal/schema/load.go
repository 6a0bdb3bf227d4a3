package schema

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"cvgen/internal/markup"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their YAML names so errors point at the data file.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate markup fields by their raw source text, so string rules
	// (required, min, max) apply directly.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if t, ok := field.Interface().(markup.Text); ok {
			return t.Raw
		}
		return nil
	}, markup.Text{})

	return v
}

// Load reads, decodes and validates a CV record from a YAML file.
func Load(path string) (*CV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	cv, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cv, nil
}

// Parse decodes a YAML record, normalizes it and validates it. The returned
// record has all markup fields compiled and ready to render.
func Parse(data []byte) (*CV, error) {
	var cv CV
	if err := yaml.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("schema: parse YAML: %w", err)
	}

	trimStrings(reflect.ValueOf(&cv).Elem())
	applyDefaults(&cv)

	if err := Validate(&cv); err != nil {
		return nil, err
	}

	// Compile markup only on schema-valid records, so a record that is both
	// incomplete and mis-marked reports the schema problems first.
	for _, t := range cv.markupTexts() {
		if err := t.Compile(); err != nil {
			return nil, err
		}
	}

	return &cv, nil
}

// Validate checks the record against the schema constraints, returning a
// *SchemaError listing every violation.
func Validate(cv *CV) error {
	err := validate.Struct(cv)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("schema: validate: %w", err)
	}

	schemaErr := &SchemaError{}
	for _, fe := range verrs {
		constraint := fe.Tag()
		if fe.Param() != "" {
			constraint += "=" + fe.Param()
		}
		schemaErr.Fields = append(schemaErr.Fields, FieldError{
			Field:      strings.TrimPrefix(fe.Namespace(), "CV."),
			Constraint: constraint,
		})
	}
	return schemaErr
}

// applyDefaults fills derived fields: link display names default to the URL
// without its scheme.
func applyDefaults(cv *CV) {
	for _, link := range []*Link{cv.Personal.Contact.LinkedIn, cv.Personal.Contact.Telegram, cv.Personal.Contact.GitHub} {
		if link != nil && link.DisplayName == "" {
			link.DisplayName = link.Display()
		}
	}
}

// trimStrings strips surrounding whitespace from every string field in the
// record, including slice elements and fields behind pointers. Data files are
// hand-edited; stray whitespace should not count against length limits or
// leak into output.
func trimStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			trimStrings(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			trimStrings(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			trimStrings(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}
