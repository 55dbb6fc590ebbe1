package shortener

import (
	"crypto/rand"
	"regexp"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	IDLength = 5

	// largest multiple of len(alphabet) that fits in a byte; bytes at or above
	// it are rejected so every symbol is equally likely.
	acceptBelow = 256 - 256%len(alphabet)
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9]{5}$`)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() string {
	id := make([]byte, 0, IDLength)
	buf := make([]byte, IDLength*2)

	for len(id) < IDLength {
		// crypto/rand.Read never returns an error since Go 1.24.
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= acceptBelow {
				continue
			}
			id = append(id, alphabet[int(b)%len(alphabet)])
			if len(id) == IDLength {
				break
			}
		}
	}
	return string(id)
}

// ValidID reports whether id has the shape of a generated identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
