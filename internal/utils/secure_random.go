package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateCompanyCode derives a join code from the company name: up to four
// upper-cased letters or digits followed by a number in [1000, 9999].
func GenerateCompanyCode(companyName string) (string, error) {
	var prefix strings.Builder
	for _, r := range companyName {
		if prefix.Len() == 4 {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			prefix.WriteRune(unicode.ToUpper(r))
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("CO")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate company code: %w", err)
	}
	return fmt.Sprintf("%s%d", prefix.String(), n.Int64()+1000), nil
}
