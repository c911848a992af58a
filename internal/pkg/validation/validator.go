// Package validation turns form structs tagged with gin `binding` rules into
// field-level error lists. The same rules run inside gin's binding engine and
// standalone through Struct.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"rental-console/internal/pkg/calc"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the structured result of a failed validation.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Has reports whether field was rejected.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

var std = New()

// New returns a validator reading `binding` tags with the custom rules registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// Register installs the console's custom rules and json field naming on v.
// It is called on gin's binding engine at startup.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"strongpwd": strongPassword,
		"isodate":   isoDate,
		"afterdate": afterDate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s rule: %w", tag, err)
		}
	}
	return nil
}

// Struct validates s and returns nil when every rule passes.
func Struct(s interface{}) Errors {
	if err := std.Struct(s); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate converts binding/validation errors into field errors.
func Translate(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fieldPath(fe), Message: messageFor(fe)})
		}
		return out
	}

	var nerr *NumberError
	if errors.As(err, &nerr) {
		return Errors{{Message: nerr.Error()}}
	}

	return Errors{{Message: err.Error()}}
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s characters", field, fe.Param())
	case "uuid", "uuid4":
		return field + " must be a valid identifier"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return field + " does not match"
	case "strongpwd":
		return field + " must contain an uppercase letter, a lowercase letter and a number"
	case "isodate":
		return field + " must be a valid date"
	case "afterdate":
		return fmt.Sprintf("%s must be after %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// fieldPath drops the root struct name: "CreatePropertyRequest.endereco.cep" -> "endereco.cep".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func strongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// isoDate accepts empty values; pair it with required when the date is mandatory.
func isoDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := calc.ParseDate(s)
	return err == nil
}

// afterDate compares the field with the sibling whose json name is the rule param.
// Unparseable values pass here and are reported by isodate.
func afterDate(fl validator.FieldLevel) bool {
	sibling, ok := siblingByJSONName(fl.Parent(), fl.Param())
	if !ok {
		return false
	}
	end, err := calc.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	start, err := calc.ParseDate(sibling.String())
	if err != nil {
		return true
	}
	return end.After(start)
}

func siblingByJSONName(parent reflect.Value, name string) (reflect.Value, bool) {
	for parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	t := parent.Type()
	for i := 0; i < t.NumField(); i++ {
		if jsonFieldName(t.Field(i)) == name {
			f := parent.Field(i)
			return f, f.Kind() == reflect.String
		}
	}
	return reflect.Value{}, false
}
