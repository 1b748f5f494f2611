package sellercenter

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidKey is returned when signing with an empty secret
var ErrInvalidKey = errors.New("sellercenter: invalid signing key")

// Signature authenticates a request; it is a pure function of the
// canonical parameters and the API key
type Signature string

// String returns the signature value
func (s Signature) String() string {
	return string(s)
}

// GenerateSignature signs a canonical parameter set
func GenerateSignature(params *Parameters, secretKey string) (Signature, error) {
	return Sign(params.All(), secretKey)
}

// Sign computes HMAC-SHA256 over the strict-encoded pairs joined with "&",
// in the order given, and returns it as lowercase hex
func Sign(pairs []Parameter, secretKey string) (Signature, error) {
	if secretKey == "" {
		return "", ErrInvalidKey
	}
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(encodePairs(pairs)))
	return Signature(escape(hex.EncodeToString(mac.Sum(nil)))), nil
}
