// Package token generates the opaque capability tokens that stand in for
// authentication: possession of the token authorizes the action.
package token

import (
	"crypto/rand"
	"encoding/hex"

	"meet-scheduler/internal/pkg/errs"
)

// tokens are 256-bit so they cannot be guessed or brute-forced via the
// capability URLs they are embedded in
const tokenBytes = 32

func New() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to read random bytes")
	}
	return hex.EncodeToString(buf), nil
}
