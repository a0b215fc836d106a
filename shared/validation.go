package shared

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Compiled regexes for validation (compiled once for performance)
var (
	validPrefixedHexRegex = regexp.MustCompile(`^0x[0-9a-f]+$`)
	validAddressRegex     = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// IsHelpFlag reports whether arg requests the help menu (case-insensitive)
func IsHelpFlag(arg string) bool {
	return strings.EqualFold(arg, HelpFlag)
}

// ValidateCount checks that a batch size lies in [MinKeyPairs, MaxKeyPairs]
func ValidateCount(count int) error {
	if count < MinKeyPairs || count > MaxKeyPairs {
		return ErrInvalidCount(count)
	}
	return nil
}

// ParseCount parses the CLI argument into a batch size.
// Only plain decimal integers are accepted: "3.5" and "5abc" are rejected.
func ParseCount(arg, program string) (int, error) {
	if arg == "" {
		return 0, ErrInvalidValue(program, fmt.Errorf("argument required"))
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, ErrInvalidValue(program, err)
	}
	if err := ValidateCount(n); err != nil {
		return 0, ErrInvalidValue(program, err)
	}
	return n, nil
}

// IsValidPrefixedHex checks if s is 0x followed by lowercase hex
func IsValidPrefixedHex(s string) bool {
	return validPrefixedHexRegex.MatchString(s)
}

// IsValidPrivateKeyHex checks for 0x + 64 lowercase hex chars
func IsValidPrivateKeyHex(s string) bool {
	return len(s) == PrivateKeyHexLength && IsValidPrefixedHex(s)
}

// IsValidCompressedPubKeyHex checks for 0x + 66 lowercase hex chars with an 02 or 03 parity prefix
func IsValidCompressedPubKeyHex(s string) bool {
	if len(s) != CompressedPubKeyHexLength || !IsValidPrefixedHex(s) {
		return false
	}
	parity := s[len(HexPrefix) : len(HexPrefix)+2]
	return parity == "02" || parity == "03"
}

// IsValidAddress checks for 0x + 40 hex chars (checksummed or not)
func IsValidAddress(s string) bool {
	return validAddressRegex.MatchString(s)
}
