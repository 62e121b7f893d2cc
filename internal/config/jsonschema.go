package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema describes the JSON form of Config.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "sizes": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "integer", "minimum": 1}
    },
    "distributions": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string"}
    },
    "variants": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string"}
    },
    "warmupRuns": {"type": "integer", "minimum": 0},
    "measurementRuns": {"type": "integer", "minimum": 1},
    "seed": {"type": "integer"},
    "verify": {"type": "boolean"},
    "timeout": {"type": ["string", "integer"]},
    "output": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "path": {"type": "string"},
        "formats": {
          "type": "array",
          "items": {"enum": ["csv", "json", "html"]}
        }
      }
    },
    "baseline": {
      "type": "object",
      "additionalProperties": false,
      "required": ["path"],
      "properties": {
        "path": {"type": "string", "minLength": 1},
        "timeTolerance": {"type": "number", "minimum": 0}
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compiledSchemaErr  error
	compiledSchemaOnce sync.Once
)

// SchemaErrors lists every JSON Schema violation in a config file.
type SchemaErrors []error

func (se SchemaErrors) Error() string {
	if len(se) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("config does not match schema: ")
	for i, err := range se {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func schema() (*jsonschema.Schema, error) {
	compiledSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
			compiledSchemaErr = fmt.Errorf("invalid schema: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = compiler.Compile("config.json")
	})
	return compiledSchema, compiledSchemaErr
}

// ValidateJSONSchema checks raw JSON config data against the config schema.
func ValidateJSONSchema(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON config: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return extractValidationErrors(verr)
		}
		return SchemaErrors{err}
	}
	return nil
}

// extractValidationErrors flattens the leaf causes of a schema violation.
func extractValidationErrors(err *jsonschema.ValidationError) SchemaErrors {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return SchemaErrors{fmt.Errorf("%s: %s", location, err.Message)}
	}

	var errs SchemaErrors
	for _, cause := range err.Causes {
		errs = append(errs, extractValidationErrors(cause)...)
	}
	return errs
}
