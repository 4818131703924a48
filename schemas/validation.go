package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// RegisterValidations installs the cross-field rules and makes field errors
// report wire names (json or form tag) instead of Go field names.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(wireName)
	v.RegisterStructValidation(bookingCreateRules, BookingCreate{})
	v.RegisterStructValidation(searchQueryRules, PropertySearchQuery{})
}

func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func bookingCreateRules(sl validator.StructLevel) {
	b := sl.Current().Interface().(BookingCreate)
	if b.StartDate == nil || b.EndDate == nil {
		return
	}
	if !b.EndDate.After(b.StartDate.Time) {
		sl.ReportError(b.EndDate, "end_date", "EndDate", "gtfield", "start_date")
	}
}

func searchQueryRules(sl validator.StructLevel) {
	q := sl.Current().Interface().(PropertySearchQuery)
	if q.MinPrice == nil || q.MaxPrice == nil {
		return
	}
	if *q.MinPrice > *q.MaxPrice {
		sl.ReportError(q.MaxPrice, "max_price", "MaxPrice", "gtefield", "min_price")
	}
}

// FieldErrors converts binding failures into per-field messages. It
// understands validator errors and the decoding errors encoding/json returns
// for wrong types or malformed timestamps.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "request body is required"}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: fmt.Sprintf("must be of type %s", typeErr.Type.String())}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []FieldError{{Field: "body", Message: "malformed JSON"}}
	}

	return []FieldError{{Field: "body", Message: err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gtfield":
		return fmt.Sprintf("%s must be after %s", fe.Field(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fe.Error()
	}
}
