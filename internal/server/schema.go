package server

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed event_schema.json
var eventSchemaJSON []byte

// eventSchema validates one interaction event as it arrives on the
// wire, before binding. Compiled once at startup; the schema ships with
// the binary, so a compile failure is a build defect.
var eventSchema = mustCompileEventSchema()

func mustCompileEventSchema() *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal(eventSchemaJSON, &doc); err != nil {
		panic(fmt.Sprintf("parse event schema: %v", err))
	}

	c := jsonschema.NewCompiler()
	const url = "schema://interaction_event.json"
	if err := c.AddResource(url, doc); err != nil {
		panic(fmt.Sprintf("add event schema resource: %v", err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile event schema: %v", err))
	}
	return compiled
}

// validateEvent checks one raw event document against the schema.
func validateEvent(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := eventSchema.Validate(v); err != nil {
		return err
	}
	return nil
}
