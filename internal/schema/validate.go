package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation codes reported in FieldError.Code.
const (
	CodeTooSmall     = "too_small"
	CodeInvalidEnum  = "invalid_enum_value"
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeInvalidJSON  = "invalid_json"
	CodeInvalidValue = "invalid_value"
)

// FieldError is a single violation. Field is the dotted JSON path of the
// offending value, empty when the whole document is at fault.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in one payload, in struct
// field order.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			parts = append(parts, fe.Message)
			continue
		}
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Defaulter is implemented by inputs with enum fields that fall back to a
// default when omitted. Those fields carry a `default` struct tag naming the
// value ApplyDefaults fills in.
type Defaulter interface {
	ApplyDefaults()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Messages for length constraints, keyed by the JSON field name.
var minMessages = map[string]string{
	"name":               "Name is required",
	"background":         "Background should be at least 10 characters",
	"communicationStyle": "Communication style is required",
	"personality":        "Personality traits are required",
	"userMessage":        "Message is required",
	"content":            "Content is required",
	"processDescription": "Process description should be at least 10 characters",
	"topic":              "Topic should be at least 3 characters",
}

// Validate applies defaults to in (which must be a pointer) and checks all
// field constraints. It returns nil or a *ValidationError.
func Validate(in any) error {
	if d, ok := in.(Defaulter); ok {
		d.ApplyDefaults()
	}
	return check(in)
}

// ValidateResult checks a parsed model response against its result shape.
// Defaults are never applied to results.
func ValidateResult(out any) error {
	return check(out)
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Errors: []FieldError{{Code: CodeInvalidValue, Message: err.Error()}}}
	}
	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			if msg, ok := minMessages[fe.Field()]; ok {
				return FieldError{Field: field, Code: CodeTooSmall, Message: msg}
			}
			return FieldError{Field: field, Code: CodeTooSmall, Message: fmt.Sprintf("String must contain at least %s character(s)", fe.Param())}
		}
		return FieldError{Field: field, Code: CodeTooSmall, Message: fmt.Sprintf("Array must contain at least %s element(s)", fe.Param())}
	case "oneof":
		return FieldError{
			Field:   field,
			Code:    CodeInvalidEnum,
			Message: fmt.Sprintf("Invalid enum value. Expected %s, received '%v'", quoteOptions(fe.Param()), fe.Value()),
		}
	case "required":
		return FieldError{Field: field, Code: CodeRequired, Message: "Required"}
	default:
		return FieldError{Field: field, Code: CodeInvalidValue, Message: fmt.Sprintf("Failed on the '%s' rule", fe.Tag())}
	}
}

// quoteOptions renders a oneof parameter as 'a' | 'b' | 'c'.
func quoteOptions(param string) string {
	options := strings.Fields(param)
	for i, o := range options {
		options[i] = "'" + o + "'"
	}
	return strings.Join(options, " | ")
}

// fieldPath turns "PersonaChatRequest.messages[0].role" into "messages.0.role".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		namespace = namespace[i+1:]
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

// Decode reads one JSON document from r into v. Syntax and type errors are
// returned as a *ValidationError; other read failures are returned as is.
// A defaulted field that is present but empty or null is rejected, so only
// an omitted field receives its default.
func Decode(r io.Reader, v any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return &ValidationError{Errors: []FieldError{{Code: CodeRequired, Message: "Request body is required"}}}
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &typeErr):
			return &ValidationError{Errors: []FieldError{{
				Field:   typeErr.Field,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
			}}}
		case errors.As(err, &syntaxErr):
			return &ValidationError{Errors: []FieldError{{Code: CodeInvalidJSON, Message: "Malformed JSON body"}}}
		}
		return err
	}
	return checkPresentDefaults(body, v)
}

func checkPresentDefaults(body []byte, v any) error {
	if _, ok := v.(Defaulter); !ok {
		return nil
	}
	rt := reflect.TypeOf(v)
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil || present == nil {
		return nil
	}

	var errs []FieldError
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if _, ok := f.Tag.Lookup("default"); !ok {
			continue
		}
		name := jsonName(f)
		raw, ok := present[name]
		if !ok {
			continue
		}
		options := quoteOptions(oneofParam(f.Tag.Get("validate")))
		switch string(bytes.TrimSpace(raw)) {
		case "null":
			errs = append(errs, FieldError{Field: name, Code: CodeInvalidType, Message: fmt.Sprintf("Expected %s, received null", options)})
		case `""`:
			errs = append(errs, FieldError{Field: name, Code: CodeInvalidEnum, Message: fmt.Sprintf("Invalid enum value. Expected %s, received ''", options)})
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func oneofParam(tag string) string {
	for _, rule := range strings.Split(tag, ",") {
		if param, ok := strings.CutPrefix(rule, "oneof="); ok {
			return param
		}
	}
	return ""
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
