package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// commonPasswords is a short list of frequently compromised passwords,
// compared case-insensitively.
var commonPasswords = map[string]bool{
	"password": true, "password1": true, "password123": true, "123456": true,
	"12345678": true, "123456789": true, "1234567890": true, "qwerty": true,
	"qwerty123": true, "qwertyuiop": true, "abc123": true, "letmein": true,
	"welcome": true, "monkey": true, "dragon": true, "sunshine": true,
	"iloveyou": true, "princess": true, "football": true, "admin": true,
	"admin123": true, "administrator": true, "root": true, "guest": true,
	"111111": true, "000000": true, "123123": true, "passw0rd": true,
}

// PasswordPolicy configures StrongPassword.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	// MinCharClasses is the minimum number of distinct character classes.
	MinCharClasses int
}

// DefaultPasswordPolicy requires 8-128 characters and three character classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:      8,
		MaxLength:      128,
		MinCharClasses: 3,
	}
}

// StrongPassword checks value against policy. Length is counted in characters.
func StrongPassword(path, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			n := len([]rune(value))
			if n < policy.MinLength || (policy.MaxLength > 0 && n > policy.MaxLength) {
				return false
			}

			var upper, lower, digit, special bool
			for _, r := range value {
				switch {
				case unicode.IsUpper(r):
					upper = true
				case unicode.IsLower(r):
					lower = true
				case unicode.IsDigit(r):
					digit = true
				case unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r):
					special = true
				}
			}

			if (policy.RequireUppercase && !upper) || (policy.RequireLowercase && !lower) ||
				(policy.RequireDigits && !digit) || (policy.RequireSpecial && !special) {
				return false
			}

			classes := 0
			for _, has := range []bool{upper, lower, digit, special} {
				if has {
					classes++
				}
			}
			return classes >= policy.MinCharClasses
		},
		Error: newError(path, KindCustom,
			fmt.Sprintf("must be %d-%d characters and mix at least %d of: uppercase, lowercase, digits, symbols",
				policy.MinLength, policy.MaxLength, policy.MinCharClasses),
			nil),
	}
}

// NotCommonPassword rejects passwords found in the common password list.
func NotCommonPassword(path, value string) Rule {
	return Rule{
		Check: func() bool { return !commonPasswords[strings.ToLower(value)] },
		Error: newError(path, KindCustom, "is too common", nil),
	}
}
