package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/golangid/gojsonschema"
	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
)

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// JSONSchemaValidator validator
type JSONSchemaValidator struct {
	mu      sync.RWMutex
	schemas map[string]*gojsonschema.Schema
}

// NewJSONSchemaValidator constructor, load all json schema file from given file system
func NewJSONSchemaValidator(fsys fs.FS) (*JSONSchemaValidator, error) {
	v := &JSONSchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	if fsys == nil {
		return v, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		s, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%s: %v", p, err)
		}
		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %v", p, err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.TrimPrefix(strings.TrimSuffix(p, ".json"), "jsonschema/")
		}
		return v.AddSchema(id, s)
	})
	return v, err
}

// AddSchema register schema source with id
func (v *JSONSchemaValidator) AddSchema(schemaID string, source []byte) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(source))
	if err != nil {
		return fmt.Errorf("%s: %v", schemaID, err)
	}
	v.mu.Lock()
	v.schemas[schemaID] = schema
	v.mu.Unlock()
	return nil
}

func (v *JSONSchemaValidator) getSchema(schemaID string) (*gojsonschema.Schema, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	s, ok := v.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("schema '%s' not found", schemaID)
	}
	return s, nil
}

// ValidateDocument based on schema id, document is raw json
func (v *JSONSchemaValidator) ValidateDocument(schemaID string, document []byte) error {
	schema, err := v.getSchema(schemaID)
	if err != nil {
		return err
	}

	multiError := candihelper.NewMultiError()
	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		multiError.Append("document", errors.New("malformed json document"))
		return candishared.NewValidationError("invalid payload", multiError)
	}

	if !result.Valid() {
		for _, desc := range result.Errors() {
			if notShowErrorListType[desc.Type()] {
				continue
			}
			field := desc.Field()
			if desc.Type() == "required" || desc.Type() == "additional_property_not_allowed" {
				field = fmt.Sprintf("%s.%s", field, desc.Details()["property"])
				field = strings.TrimPrefix(field, "(root).")
			}
			multiError.Append(field, errors.New(desc.Description()))
		}
	}

	if multiError.HasError() {
		return candishared.NewValidationError("invalid payload", multiError)
	}
	return nil
}
