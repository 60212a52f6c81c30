package jobdesc

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// checkShape validates the raw document against the embedded JSON schema.
func checkShape(doc Document) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load job description schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(map[string]any(doc)))
	if err != nil {
		return malformed(err, "document is not valid json")
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return malformed(nil, problems...)
}
