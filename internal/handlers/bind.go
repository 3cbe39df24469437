package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldIssue describes one problem with a request body, shaped like the
// entries of a FastAPI validation error.
type FieldIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned by Bind when the body cannot be decoded into
// the target or fails its validate tags.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(is.Loc, "."), is.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Bind decodes the JSON request body into dst and validates it.
// Client mistakes are reported as *ValidationError.
func Bind(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeIssue(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return invalidJSON()
	}

	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validating request body")
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Issues = append(verr.Issues, fieldIssue(fe))
	}
	return verr
}

func decodeIssue(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return &ValidationError{Issues: []FieldIssue{{
			Loc: []string{"body"}, Msg: "Field required", Type: "missing",
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return invalidJSON()
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return &ValidationError{Issues: []FieldIssue{{
			Loc:  loc,
			Msg:  "Input should be a valid " + jsonTypeName(typeErr.Type),
			Type: jsonTypeName(typeErr.Type) + "_type",
		}}}
	}
	return errors.Wrap(err, "decoding request body")
}

func invalidJSON() *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{
		Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid",
	}}}
}

func fieldIssue(fe validator.FieldError) FieldIssue {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldIssue{Loc: loc, Msg: "Field required", Type: "missing"}
	default:
		return FieldIssue{Loc: loc, Msg: fmt.Sprintf("Failed %q validation", fe.Tag()), Type: fe.Tag()}
	}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "object"
	}
}

// WriteValidationError writes a 422 response listing every issue in err.
func WriteValidationError(w http.ResponseWriter, err *ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(map[string][]FieldIssue{
		"detail": err.Issues,
	})
}
