// Package shortcode generates the random codes that identify short URLs.
package shortcode

import "crypto/rand"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength matches the code length of the public API.
	DefaultLength = 8
)

// New returns a random code of n characters from the base62 alphabet.
func New(n int) string {
	if n <= 0 {
		n = DefaultLength
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
