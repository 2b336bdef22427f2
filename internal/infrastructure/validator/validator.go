package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

const passwordSymbols = "!@#$%^&*()_+-=[]{};:'\\|,.<>/?"

// AppValidator implements usecasecontract.IValidator.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

func NewValidator() *AppValidator {
	return &AppValidator{validate: validator.New()}
}

func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength requires 8+ characters with upper, lower, digit and symbol.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{len(password) >= 8, "password must be at least 8 characters long"},
		{containsRune(password, unicode.IsUpper), "password must contain at least one uppercase letter"},
		{containsRune(password, unicode.IsLower), "password must contain at least one lowercase letter"},
		{containsRune(password, unicode.IsNumber), "password must contain at least one number"},
		{containsRune(password, isSymbol), "password must contain at least one special character"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%s", c.msg)
		}
	}
	return nil
}

// RegisterCustomValidators adds the tags used by request DTOs to gin's validator.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	tags := map[string]validator.Func{
		"containsuppercase": fieldHas(unicode.IsUpper),
		"containslowercase": fieldHas(unicode.IsLower),
		"containsdigit":     fieldHas(unicode.IsNumber),
		"containssymbol":    fieldHas(isSymbol),
		"postfilter":        isPostFilterOption,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func isSymbol(r rune) bool {
	return strings.ContainsRune(passwordSymbols, r)
}

func containsRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func fieldHas(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return containsRune(fl.Field().String(), pred)
	}
}

// isPostFilterOption accepts an empty value or one of the known sort options.
func isPostFilterOption(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "latest", "oldest", "most_liked":
		return true
	}
	return false
}
