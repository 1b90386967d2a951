package contracts

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Register every schema as a resource first so $ref between files works.
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := schemasFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Second pass: compile and register under the derived key.
	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Fatalf("could not compile schema %s: %v", path, err)
			}
			compiledSchemas[generateKeyFromPath(path)] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath turns "schemas/property-request.json" into
// "PropertyRequest".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "schemas/")
	trimmed = strings.TrimSuffix(trimmed, ".json")

	caser := cases.Title(language.English)

	var keyBuilder strings.Builder
	for _, p := range strings.Split(trimmed, "-") {
		keyBuilder.WriteString(caser.String(p))
	}
	return keyBuilder.String()
}

// ValidationError carries the field-level details surfaced in a 400 body.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "request validation failed: " + strings.Join(e.Details, "; ")
}

// ValidateRequest checks a request body against the named schema
// ("Contact", "Newsletter", "Property", ...). It returns a
// *ValidationError with per-field details, or nil when the body is valid.
func ValidateRequest(requestType string, body []byte) error {
	schema, ok := compiledSchemas[requestType]
	if !ok {
		return fmt.Errorf("schema for request type %q not found", requestType)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return &ValidationError{Details: []string{"body is not valid JSON"}}
	}

	if err := schema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &ValidationError{Details: flattenCauses(ve)}
		}
		return &ValidationError{Details: []string{err.Error()}}
	}

	return nil
}

// flattenCauses walks the cause tree down to the leaves, producing entries
// like "/email: 'not-an-email' is not valid 'email'".
func flattenCauses(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		location := ve.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, ve.Message)}
	}

	var details []string
	for _, cause := range ve.Causes {
		details = append(details, flattenCauses(cause)...)
	}
	return details
}
