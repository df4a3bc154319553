package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// Record identifiers are 24-character lowercase hex tokens (12 random
// bytes). The directory and every repository key on this format.
const idLen = 24

func NewID() (string, error) {
	bytes := make([]byte, idLen/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// ValidID reports whether value is a well-formed record identifier.
func ValidID(value string) bool {
	if len(value) != idLen {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
