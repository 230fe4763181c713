package utils

import (
	"clinic-staff-service/internal/pkg/constvars"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateUsername builds "first.last" from the given names, lower-cased and
// with everything but letters and digits removed, followed by two random
// digits.
func GenerateUsername(firstName, lastName string) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(constvars.UsernameSuffixMax))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s%02d", usernamePart(firstName), usernamePart(lastName), suffix.Int64()), nil
}

func usernamePart(name string) string {
	var builder strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func secondsToDuration(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}
