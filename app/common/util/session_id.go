package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const sessionIdBytes = 32

// SessionIdLen is the length of a minted session id: 32 random bytes in unpadded base64url.
var SessionIdLen = base64.RawURLEncoding.EncodedLen(sessionIdBytes)

// NewSessionId mints an unguessable shopper session id.
func NewSessionId() string {
	buf := make([]byte, sessionIdBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Errorf("failed to read random bytes: %w", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}

// WellFormedSessionId reports whether id has the shape of a minted session id.
func WellFormedSessionId(id string) bool {
	if len(id) != SessionIdLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
