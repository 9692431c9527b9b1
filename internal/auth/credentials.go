package auth

import (
	"encoding/base64"
	"strings"
)

// Authorization methods accepted by ExtractCredentials. MethodXBasic carries
// the same payload as MethodBasic; browsers do not recognize it and therefore
// skip their native login prompt.
const (
	MethodBasic  = "Basic"
	MethodXBasic = "xBasic"
)

// Credentials is one name/secret pair presented for authentication. It lives
// for a single attempt and is never persisted.
type Credentials struct {
	Name   string
	Secret string
}

// ExtractCredentials parses an Authorization header value into credentials.
// The method token is matched case sensitively; the payload is base64 with a
// name and a secret separated by the first colon.
func ExtractCredentials(header string) (*Credentials, error) {
	if header == "" {
		return nil, ErrMissingCredentials
	}

	method, payload, found := strings.Cut(header, " ")
	if !found || (method != MethodBasic && method != MethodXBasic) {
		return nil, ErrUnknownMethod
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, ErrInvalidFormat
	}

	// the secret may itself contain colons
	name, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil, ErrInvalidFormat
	}

	return &Credentials{Name: name, Secret: secret}, nil
}
