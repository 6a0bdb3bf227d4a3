// Package schema defines the CV content schema and its validation.
//
// # Record shape
//
// A record is a single YAML document with six top-level sections:
//   - personal: name, title, summary, location, contact methods
//   - skills: ordered skill categories
//   - languages: language proficiencies
//   - education: education entries
//   - experience: job entries
//   - metadata: PDF/document metadata for the downstream build
//
// Free-text fields that accept inline markup (summary, job descriptions,
// achievements) are typed markup.Text; everything else is plain strings kept
// as written, including period strings ("2019 - Present"), GPA fractions
// ("3.9/4.0") and the slash-separated technology stack, none of which are
// parsed.
//
// # Lifecycle
//
// A record is loaded once, validated as a whole, rendered, and discarded.
// There is no persistence and no mutation after Load returns.
//
// # Validation
//
// Validation is all-or-nothing: Load either returns a fully valid *CV or a
// *SchemaError listing every violated field by its YAML path (e.g.
// "personal.name.first") together with the broken constraint. Malformed
// inline markup is reported separately as a *markup.Error.
package schema
