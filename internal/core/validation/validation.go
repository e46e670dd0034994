package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

// Validator decodes untyped JSON payloads into request structs and checks them
// against their `validate` tags, reporting every violated field in one pass.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return domain.ValidateID(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Decode fills dst (a pointer to a request struct) from body and validates it.
// An empty body decodes as an empty object. A body that is not a JSON object is an
// invalid request; type mismatches and constraint violations are returned together
// as a validation error.
func (v *Validator) Decode(body []byte, dst any) error {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("validation: destination must be a pointer to struct, got %T", dst)
	}
	target = target.Elem()

	raw := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return serviceerrors.NewInvalidRequestError("Request body must be a JSON object")
		}
	}

	order := make(map[string]int, target.NumField())
	var failures []serviceerrors.FieldError
	typeFailed := map[string]bool{}

	for i := 0; i < target.NumField(); i++ {
		name := jsonName(target.Type().Field(i))
		if name == "" {
			continue
		}
		order[name] = i

		value, ok := raw[name]
		if !ok {
			continue
		}
		field := target.Field(i)
		decoded := reflect.New(field.Type())
		if err := json.Unmarshal(value, decoded.Interface()); err != nil {
			failures = append(failures, serviceerrors.FieldError{Field: name, Message: typeMessage(field.Type())})
			typeFailed[name] = true
			continue
		}
		field.Set(decoded.Elem())
	}

	if err := v.validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("validation: %w", err)
		}
		for _, fe := range validationErrs {
			if typeFailed[fe.Field()] {
				continue
			}
			failures = append(failures, serviceerrors.FieldError{Field: fe.Field(), Message: message(fe)})
		}
	}

	if len(failures) == 0 {
		return nil
	}
	sort.SliceStable(failures, func(i, j int) bool {
		return order[failures[i].Field] < order[failures[j].Field]
	})
	return serviceerrors.NewValidationError(failures)
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Expected string"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "Expected integer"
	case reflect.Float32, reflect.Float64:
		return "Expected number"
	case reflect.Bool:
		return "Expected boolean"
	default:
		return "Invalid type"
	}
}

func message(fe validator.FieldError) string {
	label := strings.ToUpper(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must not be empty", label)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "objectid":
		return fmt.Sprintf("Invalid %s ID format", fe.Field())
	case "email":
		return "Invalid email"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
