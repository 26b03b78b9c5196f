package common

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SplitList splits a comma separated flag value, dropping blanks.
// Example: ".txt, .html," -> [".txt", ".html"]
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
