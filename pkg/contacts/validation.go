package contacts

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/case-framework/contact-manager/pkg/apperrors"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/go-playground/validator/v10"
)

const (
	MSG_INVALID_PHONE = "Phone number should be exactly 10 digits"
)

// exactly ten decimal digits, no separators or country code
var phoneNumberRule = regexp.MustCompile(`^\d{10}$`)

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneNumberRule.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func IsValidPhoneNumber(phone string) bool {
	return phoneNumberRule.MatchString(phone)
}

// ValidatePayload checks the payload against its struct rules and returns a
// ValidationError for the first failing field in declaration order.
func ValidatePayload(payload types.ContactPayload) error {
	err := payloadValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(`"%s" is required`, fe.Field())
	case "email":
		return fmt.Sprintf(`"%s" must be a valid email`, fe.Field())
	case "phone10":
		return MSG_INVALID_PHONE
	case "max":
		return fmt.Sprintf(`"%s" length must be less than or equal to %s characters long`, fe.Field(), fe.Param())
	default:
		return fmt.Sprintf(`"%s" is invalid`, fe.Field())
	}
}
