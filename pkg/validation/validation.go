package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"cms-backend/pkg/apperror"
	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^(\w|\.|_|-)+@(\w|_|-|\.)+\.\w{2,3}$`)

	// Allowed password characters; the case-class requirements are
	// checked separately because RE2 has no lookaheads.
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9@$!#%*?&]{8,25}$`)
)

// DigitLength reports whether value has exactly length decimal digits.
// The count is over the integer value, so values <= 0 never match.
func DigitLength(value int64, length int) bool {
	if value <= 0 {
		return false
	}
	return int(math.Log10(float64(value)))+1 == length
}

// Email checks the local@domain.tld shape with a 2-3 letter tld.
func Email(email string) bool {
	return emailPattern.MatchString(email)
}

// Password requires 8-25 characters from the allowed set with at least
// one lowercase and one uppercase letter.
func Password(password string) bool {
	if !passwordCharset.MatchString(password) {
		return false
	}

	var hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasLower && hasUpper
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// digitlen=N: exact decimal digit count on integer fields.
	_ = v.RegisterValidation("digitlen", func(fl validator.FieldLevel) bool {
		length, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return DigitLength(fl.Field().Int(), length)
	})

	return v
}

// Struct runs tag-level validation over an entity and folds failures
// into a single validation error.
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		return apperror.New(apperror.ErrValidation, FormatValidationError(err))
	}
	return nil
}

func FormatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}
	return strings.Join(messages, "; ")
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := getFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "digitlen":
		return field + " should be exactly " + fe.Param() + " digits"
	default:
		return field + " is not valid"
	}
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Title":   "title",
		"Body":    "body",
		"Summary": "summary",
		"Pdf":     "pdf",
		"PhoneNo": "phone_no",
		"PinCode": "pin_code",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
