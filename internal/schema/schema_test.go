package schema

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cvgen/internal/markup"
)

func TestLoadValidRecord(t *testing.T) {
	cv, err := Load(filepath.Join("testdata", "cv.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cv.Personal.Name.First != "Ada" || cv.Personal.Name.Last != "Lovelace" {
		t.Errorf("unexpected name: %+v", cv.Personal.Name)
	}
	if cv.Personal.Contact.Email != "ada@example.com" {
		t.Errorf("unexpected email: %q", cv.Personal.Contact.Email)
	}
	if len(cv.Skills) != 2 || cv.Skills[0].Category != "Languages" {
		t.Errorf("unexpected skills: %+v", cv.Skills)
	}
	if got := cv.Skills[0].Skills; len(got) != 3 || got[0] != "Go" {
		t.Errorf("skill order not preserved: %v", got)
	}
	if len(cv.Experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %d", len(cv.Experience))
	}
	if cv.Experience[0].Stack != "Go/PostgreSQL/Kafka" {
		t.Errorf("stack should stay plain text, got %q", cv.Experience[0].Stack)
	}

	// Markup fields come back compiled.
	if len(cv.Personal.Summary.Nodes) == 0 {
		t.Error("summary markup not compiled")
	}
	for i, e := range cv.Experience {
		if len(e.Description.Nodes) == 0 {
			t.Errorf("experience[%d] description markup not compiled", i)
		}
		for j, a := range e.Achievements {
			if len(a.Nodes) == 0 {
				t.Errorf("experience[%d] achievement[%d] markup not compiled", i, j)
			}
		}
	}
}

func TestLinkDisplayDefaults(t *testing.T) {
	cv, err := Load(filepath.Join("testdata", "cv.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cv.Personal.Contact.LinkedIn.DisplayName; got != "in/ada" {
		t.Errorf("explicit display name overridden: %q", got)
	}
	if got := cv.Personal.Contact.GitHub.DisplayName; got != "github.com/ada" {
		t.Errorf("derived display name = %q, want %q", got, "github.com/ada")
	}
	if cv.Personal.Contact.Telegram != nil {
		t.Error("absent link should stay nil")
	}
}

func TestParseInvalidRecords(t *testing.T) {
	base := `
personal:
  name:
    first: Ada
    last: Lovelace
  title: Engineer
  summary: "Fine."
  location: London
  contact:
    email: ada@example.com
skills:
  - category: Languages
    skills: [Go]
languages:
  - language: English
    level: Native
education:
  - institution: UoL
    degree: BSc
    period: 2012 - 2016
    location: London
    specialization: Systems
    focus: Fault tolerance
    gpa:
      cumulative: 3.9/4.0
      major: 4.0/4.0
experience:
  - company: AEL
    position: Engineer
    period: 2019 - Present
    location: Remote
    description: "Works."
    achievements: ["Did things."]
    stack: Go
metadata:
  pdf_title: CV
  pdf_author: Ada
  pdf_subject: CV
  pdf_keywords: cv
  pdf_filename: cv
  url: https://example.com
  app_name: cvgen
`

	tests := []struct {
		name      string
		mutate    func(string) string
		wantField string
	}{
		{
			name: "missing first name",
			mutate: func(s string) string {
				return strings.Replace(s, "    first: Ada\n", "", 1)
			},
			wantField: "personal.name.first",
		},
		{
			name: "invalid email",
			mutate: func(s string) string {
				return strings.Replace(s, "email: ada@example.com", "email: not-an-email", 1)
			},
			wantField: "personal.contact.email",
		},
		{
			name: "empty achievements",
			mutate: func(s string) string {
				return strings.Replace(s, `achievements: ["Did things."]`, "achievements: []", 1)
			},
			wantField: "achievements",
		},
		{
			name: "missing skills section",
			mutate: func(s string) string {
				return strings.Replace(s, "skills:\n  - category: Languages\n    skills: [Go]\n", "", 1)
			},
			wantField: "skills",
		},
		{
			name: "missing stack",
			mutate: func(s string) string {
				return strings.Replace(s, "    stack: Go\n", "", 1)
			},
			wantField: "stack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(base)))
			if err == nil {
				t.Fatal("Parse expected error, got nil")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Fatalf("error type = %T (%v), want *SchemaError", err, err)
			}
			found := false
			for _, f := range schemaErr.Fields {
				if strings.Contains(f.Field, tt.wantField) {
					found = true
				}
			}
			if !found {
				t.Errorf("SchemaError %v does not name field %q", schemaErr, tt.wantField)
			}
		})
	}

	t.Run("unsupported markup is a markup error", func(t *testing.T) {
		data := strings.Replace(base, `summary: "Fine."`, `summary: "# Not a heading field"`, 1)
		_, err := Parse([]byte(data))
		if err == nil {
			t.Fatal("Parse expected error, got nil")
		}
		var markupErr *markup.Error
		if !errors.As(err, &markupErr) {
			t.Fatalf("error type = %T (%v), want *markup.Error", err, err)
		}
	})
}

func TestTrimStrings(t *testing.T) {
	cv := &CV{}
	cv.Personal.Name.First = "  Ada "
	cv.Personal.Contact.GitHub = &Link{URL: " https://github.com/ada "}
	cv.Skills = []SkillCategory{{Category: " Languages ", Skills: []string{" Go ", "Python"}}}

	trimStrings(reflect.ValueOf(cv).Elem())

	if cv.Personal.Name.First != "Ada" {
		t.Errorf("First = %q", cv.Personal.Name.First)
	}
	if cv.Personal.Contact.GitHub.URL != "https://github.com/ada" {
		t.Errorf("URL = %q", cv.Personal.Contact.GitHub.URL)
	}
	if cv.Skills[0].Category != "Languages" || cv.Skills[0].Skills[0] != "Go" {
		t.Errorf("skills not trimmed: %+v", cv.Skills[0])
	}
}
