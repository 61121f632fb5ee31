package errors

import (
	"strings"
	"unicode"
)

const maxArgLength = 64

// ValidatePlayerName checks an in-game name before it is placed in a
// checkout URL. Empty names are rejected; callers that treat the player as
// optional must check for "" themselves.
func ValidatePlayerName(name string) error {
	return validateArg("player name", name)
}

// ValidateGateway checks a payment gateway identifier such as "paypal".
func ValidateGateway(gateway string) error {
	if err := validateArg("gateway", gateway); err != nil {
		return err
	}
	if strings.ContainsAny(gateway, " /?&=#") {
		return New(ErrCodeInvalidInput, "gateway contains invalid characters: %q", gateway)
	}
	return nil
}

func validateArg(label, s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", label)
	}
	if len(s) > maxArgLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", label, maxArgLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", label)
		}
	}
	return nil
}
