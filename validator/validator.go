package validator

import (
	"io/fs"
	"log"

	"github.com/golangid/meetup/api"
	"github.com/golangid/meetup/candihelper"
)

// Validator instance
type Validator struct {
	*JSONSchemaValidator
	*StructValidator
}

// NewValidator constructor, using jsonschema & struct validator (github.com/go-playground/validator),
// jsonschema source loaded from embedded api/jsonschema
func NewValidator() *Validator {
	return NewValidatorFromFS(api.JSONSchema)
}

// NewValidatorFromFS constructor with custom schema source
func NewValidatorFromFS(fsys fs.FS) *Validator {
	jsonSchema, err := NewJSONSchemaValidator(fsys)
	if err != nil {
		log.Println(candihelper.StringYellow("Validator: warning, failed load json schema: " + err.Error()))
	}
	return &Validator{
		JSONSchemaValidator: jsonSchema,
		StructValidator:     NewStructValidator(),
	}
}
