package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const createTodoSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["task"],
  "properties": {
    "task": {"type": "string", "pattern": "\\S"}
  }
}`

const updateTodoSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["completed"],
  "properties": {
    "completed": {"type": "boolean"}
  }
}`

var (
	createSchema = mustCompile("https://todolist.local/schemas/create-todo.json", createTodoSchema)
	updateSchema = mustCompile("https://todolist.local/schemas/update-todo.json", updateTodoSchema)
)

func mustCompile(url, source string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(source)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", url, err))
	}
	return compiler.MustCompile(url)
}

// SchemaError describes the first failing location in a request body.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// validateBody parses body as JSON and checks it against schema. The
// decoded document is returned so callers can read typed fields.
func validateBody(schema *jsonschema.Schema, body []byte) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &SchemaError{Message: "invalid JSON: " + err.Error()}
	}
	if err := schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, firstCause(ve)
		}
		return nil, &SchemaError{Message: err.Error()}
	}
	obj, _ := doc.(map[string]any)
	return obj, nil
}

func firstCause(ve *jsonschema.ValidationError) *SchemaError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &SchemaError{Path: ve.InstanceLocation, Message: ve.Message}
}
