package schema

import (
	"strings"

	"cvgen/internal/markup"
)

// CV is the validated in-memory representation of the CV content schema.
type CV struct {
	Personal   Personal        `yaml:"personal"`
	Skills     []SkillCategory `yaml:"skills" validate:"required,min=1,dive"`
	Languages  []Language      `yaml:"languages" validate:"required,min=1,dive"`
	Education  []Education     `yaml:"education" validate:"required,min=1,dive"`
	Experience []Experience    `yaml:"experience" validate:"required,min=1,dive"`
	Metadata   Metadata        `yaml:"metadata"`
}

// Name is a person's first and last name.
type Name struct {
	First string `yaml:"first" validate:"required,max=50"`
	Last  string `yaml:"last" validate:"required,max=50"`
}

// Link is a URL with an optional display name. A missing display name
// defaults to the URL without its scheme.
type Link struct {
	URL         string `yaml:"url" validate:"required,url"`
	DisplayName string `yaml:"display_name"`
}

// Display returns the display name, deriving one from the URL if unset.
func (l *Link) Display() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	s := strings.TrimPrefix(l.URL, "https://")
	return strings.TrimPrefix(s, "http://")
}

// Contact holds the contact methods. Email is required; the platform links
// are optional.
type Contact struct {
	Email    string `yaml:"email" validate:"required,email"`
	LinkedIn *Link  `yaml:"linkedin"`
	Telegram *Link  `yaml:"telegram"`
	GitHub   *Link  `yaml:"github"`
}

// Personal is the personal information section.
type Personal struct {
	Name     Name        `yaml:"name"`
	Title    string      `yaml:"title" validate:"required,max=50"`
	Summary  markup.Text `yaml:"summary" validate:"required"`
	Location string      `yaml:"location" validate:"required,max=50"`
	Contact  Contact     `yaml:"contact"`
}

// SkillCategory is a labeled, ordered list of skills.
type SkillCategory struct {
	Category string   `yaml:"category" validate:"required,max=50"`
	Skills   []string `yaml:"skills" validate:"required,min=1,dive,required"`
}

// Language is a language proficiency. Level is free text, not an enum.
type Language struct {
	Language string `yaml:"language" validate:"required,max=50"`
	Level    string `yaml:"level" validate:"required,max=50"`
}

// GPA holds cumulative and major GPA as free-text fraction strings.
type GPA struct {
	Cumulative string `yaml:"cumulative" validate:"required,max=20"`
	Major      string `yaml:"major" validate:"required,max=20"`
}

// Education is one education entry.
type Education struct {
	Institution    string `yaml:"institution" validate:"required,max=50"`
	Degree         string `yaml:"degree" validate:"required,max=50"`
	Period         string `yaml:"period" validate:"required,max=200"`
	Location       string `yaml:"location" validate:"required,max=50"`
	Specialization string `yaml:"specialization" validate:"required,max=50"`
	Focus          string `yaml:"focus" validate:"required,max=50"`
	GPA            GPA    `yaml:"gpa"`
}

// Experience is one job entry.
type Experience struct {
	Company      string        `yaml:"company" validate:"required,max=50"`
	Position     string        `yaml:"position" validate:"required,max=50"`
	Period       string        `yaml:"period" validate:"required,max=50"`
	Location     string        `yaml:"location" validate:"required,max=50"`
	Description  markup.Text   `yaml:"description" validate:"required"`
	Achievements []markup.Text `yaml:"achievements" validate:"required,min=1,dive,required"`

	// Stack is a slash-separated technology list, stored as plain text.
	Stack string `yaml:"stack" validate:"required,max=200"`
}

// Metadata carries document metadata consumed by the PDF/site build.
type Metadata struct {
	PDFTitle    string `yaml:"pdf_title" validate:"required,max=50"`
	PDFAuthor   string `yaml:"pdf_author" validate:"required,max=50"`
	PDFSubject  string `yaml:"pdf_subject" validate:"required,max=50"`
	PDFKeywords string `yaml:"pdf_keywords" validate:"required,max=100"`
	PDFFilename string `yaml:"pdf_filename" validate:"required,max=50"`
	URL         string `yaml:"url" validate:"required,url"`
	AppName     string `yaml:"app_name" validate:"required,max=20"`
}

// markupTexts returns pointers to every markup-bearing field, so they can be
// compiled in one pass after decoding.
func (cv *CV) markupTexts() []*markup.Text {
	texts := []*markup.Text{&cv.Personal.Summary}
	for i := range cv.Experience {
		texts = append(texts, &cv.Experience[i].Description)
		for j := range cv.Experience[i].Achievements {
			texts = append(texts, &cv.Experience[i].Achievements[j])
		}
	}
	return texts
}
