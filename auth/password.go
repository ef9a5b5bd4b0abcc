package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Method     = "pbkdf2:sha256"
	pbkdf2Iterations = 600_000
	saltLength       = 16
	keyLength        = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives a salted PBKDF2-HMAC-SHA256 hash of the plaintext and
// encodes it as "pbkdf2:sha256:<iterations>$<salt>$<hash>". The plaintext is
// never stored and cannot be recovered from the encoding.
func HashPassword(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := pbkdf2.Key([]byte(plaintext), salt, pbkdf2Iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s",
		pbkdf2Method,
		pbkdf2Iterations,
		hex.EncodeToString(salt),
		hex.EncodeToString(key),
	), nil
}

// VerifyPassword reports whether plaintext matches the encoded hash. The
// comparison is constant-time; malformed encodings verify as false.
func VerifyPassword(plaintext, encoded string) bool {
	method, iterations, salt, want, err := parseHash(encoded)
	if err != nil || method != pbkdf2Method {
		return false
	}

	got := pbkdf2.Key([]byte(plaintext), salt, iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseHash(encoded string) (method string, iterations int, salt, hash []byte, err error) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return "", 0, nil, nil, ErrMalformedHash
	}

	methodPart := parts[0]
	idx := strings.LastIndex(methodPart, ":")
	if idx < 0 {
		return "", 0, nil, nil, ErrMalformedHash
	}
	method = methodPart[:idx]

	iterations, err = strconv.Atoi(methodPart[idx+1:])
	if err != nil || iterations <= 0 {
		return "", 0, nil, nil, ErrMalformedHash
	}

	salt, err = hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return "", 0, nil, nil, ErrMalformedHash
	}

	hash, err = hex.DecodeString(parts[2])
	if err != nil || len(hash) == 0 {
		return "", 0, nil, nil, ErrMalformedHash
	}

	return method, iterations, salt, hash, nil
}
