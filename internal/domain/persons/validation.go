package persons

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError agrupa un mensaje por regla fallida, en el orden de los campos.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// mensajes por campo+regla; si falta la combinación se usa el genérico del campo
var validationMessages = map[string]map[string]string{
	"ID": {
		"required": "Person id can't be blank.",
	},
	"Name": {
		"required": "Person name can't be blank.",
		"max":      "Person name can't exceed 40 characters.",
	},
	"Email": {
		"required": "Email can't be blank.",
		"email":    "Email value should be a valid email.",
		"max":      "Email can't exceed 40 characters.",
	},
	"Gender": {
		"required": "Gender can't be blank",
		"oneof":    "Gender should be Male, Female or Other",
	},
	"CountryID": {
		"required": "Please select a country",
		"uuid":     "Please select a country",
	},
	"Address": {
		"required": "Address can't be blank",
		"max":      "Address can't exceed 200 characters.",
	},
	"TIN": {
		"len": "Tax identification number should be exactly 8 characters.",
	},
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Messages: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Messages = append(out.Messages, messageFor(fe.Field(), fe.Tag()))
	}
	return out
}

func messageFor(field, tag string) string {
	if byTag, ok := validationMessages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return field + " is invalid"
}
