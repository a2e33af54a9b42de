package ticket

import (
	"fmt"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
)

// SlotLetter is the marker written before every line by Encode.
const SlotLetter = 'm'

// Encode writes p back into payload form, prefixed with base (may be empty).
// Decode(Encode(base, p)) reproduces p for rounds 0-9999, numbers 0-99
// and lines that are not all zero.
func Encode(base string, p models.DecodedPayload) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(PayloadMarker)
	fmt.Fprintf(&b, "%04d", p.Round)
	for _, line := range p.Lines {
		b.WriteByte(SlotLetter)
		for _, n := range line {
			fmt.Fprintf(&b, "%02d", n)
		}
	}
	return b.String()
}
