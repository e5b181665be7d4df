package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validatorengine "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/candishared"
)

// StructValidatorOptionFunc type
type StructValidatorOptionFunc func(*StructValidator)

// SetCoreStructValidatorOption option func, additional config for validator engine (ex: register custom tag)
func SetCoreStructValidatorOption(additionalConfigFunc ...func(*validatorengine.Validate)) StructValidatorOptionFunc {
	return func(v *StructValidator) {
		for _, additionalFunc := range additionalConfigFunc {
			additionalFunc(v.Validator)
		}
	}
}

// StructValidator struct
type StructValidator struct {
	Validator  *validatorengine.Validate
	translator ut.Translator
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here),
// error message translated to english with json field name
func NewStructValidator(opts ...StructValidatorOptionFunc) *StructValidator {
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")

	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = entranslations.RegisterDefaultTranslations(ve, translator)
	registerObjectID(ve, translator)

	sv := &StructValidator{Validator: ve, translator: translator}
	for _, opt := range opts {
		opt(sv)
	}
	return sv
}

// ValidateStruct function
func (v *StructValidator) ValidateStruct(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	var errs validatorengine.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	multiError := candihelper.NewMultiError()
	for _, e := range errs {
		field := e.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		multiError.Append(field, errors.New(e.Translate(v.translator)))
	}
	return candishared.NewValidationError("invalid payload", multiError)
}

// registerObjectID add "objectid" tag, value must be 24 hex characters
func registerObjectID(ve *validatorengine.Validate, translator ut.Translator) {
	_ = ve.RegisterValidation("objectid", func(fl validatorengine.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	_ = ve.RegisterTranslation("objectid", translator,
		func(u ut.Translator) error {
			return u.Add("objectid", "{0} must be a valid id", true)
		},
		func(u ut.Translator, fe validatorengine.FieldError) string {
			t, _ := u.T("objectid", fe.Field())
			return t
		},
	)
}
