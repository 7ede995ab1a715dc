package validation

import (
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	// Swedish personal identity number, YYYYMMDD-XXXX, 19xx or 20xx
	pnrRegex = regexp.MustCompile(`^(19|20)[0-9]{6}-[0-9]{4}$`)

	localeRegex = regexp.MustCompile(`^[a-zA-Z]{2}$`)
)

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("pnr", ValidPNR)
	_ = v.RegisterValidation("strong_password", StrongPassword)
	_ = v.RegisterValidation("iso_date", ISODate)
	_ = v.RegisterValidation("locale", Locale)
}

// ValidPNR validates a personal number. Empty values pass; combine with required.
func ValidPNR(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return pnrRegex.MatchString(val)
}

// StrongPassword requires at least one upper case letter, one lower case
// letter and one digit. Length is checked with min.
func StrongPassword(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	var upper, lower, digit bool
	for _, r := range val {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// ISODate validates a YYYY-MM-DD calendar date.
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := time.Parse(DateLayout, val)
	return err == nil
}

// Locale validates a two letter locale code.
func Locale(fl validator.FieldLevel) bool {
	return localeRegex.MatchString(fl.Field().String())
}
