package apierr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegisterValidation(v, "handle", func(fl validator.FieldLevel) bool {
		return handleRegex.MatchString(fl.Field().String())
	})
	mustRegisterValidation(v, "day", func(fl validator.FieldLevel) bool {
		_, err := ParseDay(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation [" + tag + "]: " + err.Error())
	}
}

// DecodeJSON reads the request body into dst and validates it.
// Failures come back as a validation *Error.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return Validation("request body required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return Validation("request body required")
		}
		return Validation("invalid JSON body")
	}
	return Validate(dst)
}

// Validate runs the struct validation rules on v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Validation(err.Error())
	}

	apiErr := Validation("invalid request")
	apiErr.Details = make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		apiErr.Details[field] = rule
	}
	return apiErr
}

// ParseDay parses a YYYY-MM-DD calendar day as UTC midnight.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// ParseID reads a positive integer path variable.
func ParseID(r *http.Request, name string) (int, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, Validation("invalid " + name)
	}
	return id, nil
}
