package profile

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// The documents are regenerated by an external job, so the schemas only
// pin down the shapes of the fields the page reads. Nothing is required;
// a missing field just skips its section.
const resumeSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"personal": {
			"type": "object",
			"properties": {
				"bio": {"type": "string"},
				"certifications": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"name": {"type": "string"},
							"issuer": {"type": "string"},
							"credential": {"type": "string"}
						}
					}
				}
			}
		},
		"skills": {
			"type": "object",
			"additionalProperties": {
				"type": "array",
				"items": {"type": "string"}
			}
		}
	}
}`

const statsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"top_repos": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"url": {"type": "string"},
					"description": {"type": "string"},
					"stars": {"type": "integer"}
				}
			}
		},
		"updated_at": {"type": "string"}
	}
}`

// ValidationError reports a document that parsed as JSON but does not
// match the expected shape.
type ValidationError struct {
	Document string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s failed validation: %s", e.Document, strings.Join(e.Problems, "; "))
}

func validateDocument(name, schema string, doc []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Document: name}
	for _, desc := range result.Errors() {
		verr.Problems = append(verr.Problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return verr
}

// ValidateResume checks a raw resume document against its schema.
func ValidateResume(doc []byte) error {
	return validateDocument("resume data", resumeSchema, doc)
}

// ValidateStats checks a raw stats document against its schema.
func ValidateStats(doc []byte) error {
	return validateDocument("stats data", statsSchema, doc)
}
