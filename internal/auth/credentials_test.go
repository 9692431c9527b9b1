package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodedHeader(method, payload string) string {
	return method + " " + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestExtractCredentials(t *testing.T) {
	testCases := []struct {
		name          string
		header        string
		expectedError error
		expected      *Credentials
	}{
		{
			name:          "missing header",
			header:        "",
			expectedError: ErrMissingCredentials,
		},
		{
			name:          "unknown method",
			header:        encodedHeader("Bearer", "user:pass"),
			expectedError: ErrUnknownMethod,
		},
		{
			name:          "method is case sensitive",
			header:        encodedHeader("basic", "user:pass"),
			expectedError: ErrUnknownMethod,
		},
		{
			name:          "method without payload",
			header:        "Basic",
			expectedError: ErrUnknownMethod,
		},
		{
			name:          "invalid base64",
			header:        "Basic %%%%",
			expectedError: ErrInvalidFormat,
		},
		{
			name:          "payload without colon",
			header:        encodedHeader(MethodBasic, "useronly"),
			expectedError: ErrInvalidFormat,
		},
		{
			name:     "basic credentials",
			header:   encodedHeader(MethodBasic, "user:pass"),
			expected: &Credentials{Name: "user", Secret: "pass"},
		},
		{
			name:     "xBasic credentials",
			header:   encodedHeader(MethodXBasic, "user:pass"),
			expected: &Credentials{Name: "user", Secret: "pass"},
		},
		{
			name:     "secret keeps its colons",
			header:   encodedHeader(MethodBasic, "user:pass:extra"),
			expected: &Credentials{Name: "user", Secret: "pass:extra"},
		},
		{
			name:     "empty name and secret",
			header:   encodedHeader(MethodBasic, ":"),
			expected: &Credentials{Name: "", Secret: ""},
		},
		{
			name:     "payload surrounded by whitespace",
			header:   MethodBasic + "  " + base64.StdEncoding.EncodeToString([]byte("user:pass")) + " ",
			expected: &Credentials{Name: "user", Secret: "pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			credentials, err := ExtractCredentials(tc.header)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, credentials)
		})
	}
}
