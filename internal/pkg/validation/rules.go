package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/geojson"
)

// TagName is shared by gin request binding and standalone struct validation
const TagName = "binding"

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Register installs the JSON field naming and the custom rules on v
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	if err := v.RegisterValidation("linestring", func(fl validator.FieldLevel) bool {
		return geojson.ValidateLineString(fl.Field().String()) == nil
	}); err != nil {
		return fmt.Errorf("register linestring rule: %w", err)
	}

	if err := v.RegisterValidation("jsondoc", func(fl validator.FieldLevel) bool {
		return geojson.ValidDocument(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register jsondoc rule: %w", err)
	}

	return nil
}

// RegisterWithGin configures the validator behind gin's ShouldBind* calls
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return Register(v)
}

func validate() *validator.Validate {
	standaloneOnce.Do(func() {
		standalone = validator.New()
		standalone.SetTagName(TagName)
		// only fails on duplicate or malformed tag names
		_ = Register(standalone)
	})
	return standalone
}

// Struct validates s outside a request and reports the first violation
func Struct(s interface{}) error {
	if err := validate().Struct(s); err != nil {
		return FromBindError(err)
	}
	return nil
}

// FromBindError converts binding and validation failures into a ValidationError that names the field
func FromBindError(err error) error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
	)

	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), Describe(fe))
	case errors.As(err, &typeErr):
		return apperrors.NewValidationError(typeErr.Field, "must be a "+typeErr.Type.String())
	case errors.As(err, &timeErr):
		return apperrors.NewValidationError("", "dates must use RFC 3339 format")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.NewValidationError("body", "malformed JSON")
	case errors.Is(err, io.EOF):
		return apperrors.NewValidationError("body", "request body is required")
	default:
		return apperrors.NewValidationError("", err.Error())
	}
}

// Describe renders the violated constraint of a field error
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "linestring":
		return "must be a GeoJSON LineString"
	case "jsondoc":
		return "must be valid JSON"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}
