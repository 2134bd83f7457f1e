package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"passkeep/internal/crypto"
)

const (
	// DefaultLength is the length offered when the caller does not pick one.
	DefaultLength = 16
	// MinLength and MaxLength bound user-facing length inputs.
	MinLength = 1
	MaxLength = 128
)

// Character classes, in the order they are appended to the alphabet.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("password length must not be negative")
)

// Classes selects the optional character classes. Lowercase letters are
// always included.
type Classes struct {
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// Alphabet returns the candidate characters for c.
func Alphabet(c Classes) string {
	var b strings.Builder
	b.WriteString(Lowercase)
	if c.Uppercase {
		b.WriteString(Uppercase)
	}
	if c.Digits {
		b.WriteString(Digits)
	}
	if c.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generator draws passwords from Rand. A zero Generator uses crypto/rand.
type Generator struct {
	Rand io.Reader
}

// Generate returns a password of length characters drawn from a
// cryptographically secure source.
func Generate(length int, c Classes) (string, error) {
	return Generator{}.Generate(length, c)
}

// Generate returns length characters, each drawn independently and
// uniformly from Alphabet(c). No class is guaranteed to appear.
func (g Generator) Generate(length int, c Classes) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if length == 0 {
		return "", nil
	}

	src := g.Rand
	if src == nil {
		src = rand.Reader
	}

	alphabet := Alphabet(c)
	n := len(alphabet)
	// Bytes at or above limit would bias the modulo; they are rejected.
	limit := 256 - 256%n

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)
	defer crypto.Wipe(buf)

	for len(out) < length {
		if _, err := io.ReadFull(src, buf); err != nil {
			crypto.Wipe(out)
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%n])
			if len(out) == length {
				break
			}
		}
	}
	password := string(out)
	crypto.Wipe(out)
	return password, nil
}

// ValidateLength checks a user-supplied length against MinLength and MaxLength.
func ValidateLength(length int) error {
	if length < MinLength || length > MaxLength {
		return fmt.Errorf("length must be between %d and %d, got %d", MinLength, MaxLength, length)
	}
	return nil
}
