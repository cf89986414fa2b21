package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var openapiSpec []byte

// loadAPIDoc parses and validates the embedded API description.
func loadAPIDoc() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi schema: %w", err)
	}
	return doc, nil
}

// requestSchema returns the JSON body schema of path+method, or nil.
func requestSchema(doc *openapi3.T, path, method string) *openapi3.Schema {
	item := doc.Paths.Find(path)
	if item == nil {
		return nil
	}
	op := item.GetOperation(method)
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	mt := op.RequestBody.Value.Content.Get("application/json")
	if mt == nil || mt.Schema == nil {
		return nil
	}
	return mt.Schema.Value
}

// propertySchema returns the schema of a named property, or nil.
func propertySchema(schema *openapi3.Schema, name string) *openapi3.Schema {
	if schema == nil {
		return nil
	}
	ref, ok := schema.Properties[name]
	if !ok || ref == nil {
		return nil
	}
	return ref.Value
}

// missingRequired lists the required properties of schema absent from body.
// allOf branches contribute their required fields too.
func missingRequired(body map[string]any, schema *openapi3.Schema) []string {
	if schema == nil {
		return nil
	}
	var missing []string
	for _, field := range requiredFields(schema) {
		if _, ok := body[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

func requiredFields(schema *openapi3.Schema) []string {
	required := append([]string{}, schema.Required...)
	for _, sub := range schema.AllOf {
		if sub.Value == nil {
			continue
		}
		required = append(required, requiredFields(sub.Value)...)
	}
	return required
}
