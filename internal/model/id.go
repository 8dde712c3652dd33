package model

import (
	"math/rand"
	"strconv"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewStoryID builds an id like "ai-1764682400123-k3j9x0q2f". Uniqueness is
// probabilistic: millisecond timestamp plus a random base36 suffix, no
// central sequence.
func NewStoryID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
