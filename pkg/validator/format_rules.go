package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsEmail reports whether value is a single RFC 5322 address with a dotted domain.
func IsEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// IsURL reports whether value is an absolute URL with a scheme and host.
func IsURL(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsAlphanumeric reports whether value is a non-empty run of ASCII letters and digits.
func IsAlphanumeric(value string) bool {
	return alphanumericRegex.MatchString(value)
}

// IsUUID reports whether value is a canonical hyphenated UUID.
func IsUUID(value string) bool {
	// Fast rejection before parsing
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// ValidEmail validates that a string is a valid email address.
func ValidEmail(path, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: newError(path, KindEmail, "must be a valid email address", value),
	}
}

// ValidURL validates that a string is a valid URL.
func ValidURL(path, value string) Rule {
	return Rule{
		Check: func() bool { return IsURL(value) },
		Error: newError(path, KindURL, "must be a valid URL", value),
	}
}

// ValidAlphanumeric validates that a string contains only letters and numbers.
func ValidAlphanumeric(path, value string) Rule {
	return Rule{
		Check: func() bool { return IsAlphanumeric(value) },
		Error: newError(path, KindAlphanumeric, "must contain only letters and numbers", value),
	}
}

// ValidUUID validates standard UUID format.
func ValidUUID(path, value string) Rule {
	return Rule{
		Check: func() bool { return IsUUID(value) },
		Error: newError(path, KindUUID, "must be a valid UUID", value),
	}
}
