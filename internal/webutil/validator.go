package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is shared by every handler.
var Validator *validator.Validate

// Trans renders validation errors in English.
var Trans ut.Translator

// fieldLabels gives friendlier names than the json tag for some fields.
var fieldLabels = map[string]string{
	"languageId": "language id",
	"levelId":    "level id",
	"attemptId":  "attempt id",
	"type":       "task type",
}

func init() {
	Validator = validator.New()

	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0} is required.")
	registerTranslation("oneof", "{0} must be one of [{1}].")
	registerTranslation("max", "{0} must be at most {1} characters.")
}

func registerTranslation(tag, msg string) {
	Validator.RegisterTranslation(tag, Trans, func(t ut.Translator) error {
		return t.Add(tag, msg, true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(tag, fieldLabel(fe.Field()), fe.Param())
		return msg
	})
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// ValidateStruct runs the validate tags of v and converts failures into a VALIDATION_ERROR.
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationErrorResponse(verrs)
	}
	return err
}
