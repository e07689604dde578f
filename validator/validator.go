package validator

import (
	"strings"
	"time"

	"staybook/constants"
	"staybook/errors"

	"github.com/go-playground/validator/v10"
)

// TranslateBindingError chuyển lỗi binding của gin thành map field -> message
func TranslateBindingError(err error) map[string]string {
	fields := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["body"] = "Malformed request body"
		return fields
	}

	for _, fe := range validationErrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Must be a valid email address"
		case "min":
			fields[name] = "Must be at least " + fe.Param()
		case "max":
			fields[name] = "Must be at most " + fe.Param()
		case "len":
			fields[name] = "Must be exactly " + fe.Param() + " characters"
		case "gt":
			fields[name] = "Must be greater than " + fe.Param()
		case "oneof":
			fields[name] = "Must be one of: " + fe.Param()
		case "datetime":
			fields[name] = "Must be a date in " + fe.Param() + " format"
		default:
			fields[name] = "Invalid value"
		}
	}

	return fields
}

// ParseDate parse một calendar date dạng 2006-01-02
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date, expected "+constants.DateLayout, err)
	}
	return parsed, nil
}

// ValidateDateRange yêu cầu check-out sau check-in
func ValidateDateRange(checkIn, checkOut string) error {
	in, err := ParseDate(checkIn)
	if err != nil {
		return err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return err
	}

	if !out.After(in) {
		return errors.NewAppError(errors.ErrCodeValidation, "checkOutDate must be after checkInDate", nil)
	}

	return nil
}
