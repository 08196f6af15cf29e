package service

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newReservationCode builds an uppercase alphanumeric code from the creation
// timestamp in base36 plus a random base36 suffix. The timestamp keeps codes
// roughly sortable; the suffix makes same-millisecond collisions negligible.
func newReservationCode(now time.Time) string {
	suffix := make([]byte, 6)
	random := make([]byte, 6)
	if _, err := rand.Read(random); err != nil {
		// Degrade to a timestamp-derived suffix; codes stay well-formed.
		nanos := now.UnixNano()
		for i := range suffix {
			suffix[i] = codeAlphabet[nanos%36]
			nanos /= 36
		}
		return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36) + string(suffix))
	}

	for i, b := range random {
		suffix[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36) + string(suffix))
}
