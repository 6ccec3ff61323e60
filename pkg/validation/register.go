package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Vinit-Sahare-Dev/HiringPlatformforVeridia/internal/domain"
)

// Standard local@domain.tld shape; intentionally loose beyond that
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateRegistration checks a registration form and returns a map of field
// name to error message. An absent key means the field is valid; the form may
// not submit while any key is present.
func ValidateRegistration(form *domain.RegistrationForm) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(email) {
		errs["email"] = "Email is invalid"
	}

	if form.Password == "" {
		errs["password"] = "Password is required"
	} else if len(form.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	} else if !hasComposition(form.Password) {
		errs["password"] = "Password must contain uppercase, lowercase, and number"
	}

	if form.Password != form.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	if !form.TermsAgreement {
		errs["terms"] = "You must agree to the terms and conditions"
	}

	return errs
}

// hasComposition checks the lowercase+uppercase+digit minimum rule
func hasComposition(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// Strength labels, indexed by score band
var strengthLabels = []string{"Very Weak", "Weak", "Fair", "Good", "Strong"}

// PasswordStrength scores a password 0-5: one point each for length >= 8,
// length >= 12, mixed case, a digit, and a non-alphanumeric character.
// Advisory only; it never blocks submission beyond the minimum rule.
func PasswordStrength(password string) (int, string) {
	if password == "" {
		return 0, ""
	}

	score := 0
	if len(password) >= 8 {
		score++
	}
	if len(password) >= 12 {
		score++
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if symbol {
		score++
	}

	label := strengthLabels[len(strengthLabels)-1]
	if score < len(strengthLabels) {
		label = strengthLabels[score]
	}
	return score, label
}
