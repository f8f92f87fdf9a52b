// internal/utils/ids.go
package utils

import (
	"crypto/rand"
	"math/big"
)

func randomDigits(length int) (string, error) {
	const charset = "0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// NewOrderID generates ids in the "ORD-123456" format the storefront uses.
func NewOrderID() (string, error) {
	digits, err := randomDigits(6)
	if err != nil {
		return "", err
	}
	return "ORD-" + digits, nil
}

// NewTrackingID generates ids in the "TRK-1234567" format assigned when an
// order ships.
func NewTrackingID() (string, error) {
	digits, err := randomDigits(7)
	if err != nil {
		return "", err
	}
	return "TRK-" + digits, nil
}
