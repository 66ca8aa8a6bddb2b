package compiler

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// draftSchema validates the draft blob at the persistence boundary so a
// malformed draft is rejected before it is written, not discovered when
// it is read back.
const draftSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["repos"],
  "properties": {
    "repos": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "analysis", "narrative"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "narrative": {"type": "string"},
          "analysis": {
            "type": "object",
            "required": ["name", "stars", "languages", "isFork", "commitCount", "hasTests", "isDeployed", "credibilityBaseScore"],
            "properties": {
              "name": {"type": "string"},
              "stars": {"type": "integer", "minimum": 0},
              "languages": {"type": "array", "items": {"type": "string"}},
              "isFork": {"type": "boolean"},
              "commitCount": {"type": "integer", "minimum": 0},
              "hasTests": {"type": "boolean"},
              "isDeployed": {"type": "boolean"},
              "credibilityBaseScore": {"type": "integer", "minimum": 0, "maximum": 100}
            }
          }
        }
      }
    }
  }
}`

var draftSchemaLoader = gojsonschema.NewStringLoader(draftSchema)

// ValidateDraftJSON checks a serialized draft against the schema.
func ValidateDraftJSON(data []byte) error {
	result, err := gojsonschema.Validate(draftSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("draft schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(desc.String())
	}
	return fmt.Errorf("invalid draft: %s", sb.String())
}
