// Package ticket decodes the QR payload printed on a lottery ticket.
//
// A payload looks like
//
//	https://ticket.example/?v=1100q031122334145m000000000000n010203040506
//
// Everything after the first "v=" is the data: four digits of round number,
// then one slot per line made of a letter and twelve digits (six two-digit
// numbers). Slots of all zeros are unused and skipped.
package ticket

import (
	"strconv"
	"strings"

	"github.com/ArowuTest/fakelotto-backend/internal/models"
)

const (
	PayloadMarker = "v="

	roundWidth  = 4
	groupWidth  = 2
	digitsWidth = groupWidth * len(models.TicketLine{})
)

// step is the outcome of scanning one line slot.
type step struct {
	consumed int
	line     models.TicketLine
	used     bool // false for an all-zero slot
}

// Decode parses raw into a round number and the ticket lines it carries.
// A missing marker or an unreadable round is an error; a slot that cannot be
// read ends the scan and the lines read so far are returned.
func Decode(raw string) (models.DecodedPayload, error) {
	idx := strings.Index(raw, PayloadMarker)
	if idx < 0 {
		return models.DecodedPayload{}, &DecodeError{Op: "locate marker", Input: raw, Err: ErrMarkerNotFound}
	}
	data := raw[idx+len(PayloadMarker):]

	round, err := parseRound(data)
	if err != nil {
		return models.DecodedPayload{}, &DecodeError{Op: "parse round", Input: raw, Err: err}
	}

	lines := make([]models.TicketLine, 0, 5)
	for pos := roundWidth; pos < len(data); {
		st, ok := scanSlot(data, pos)
		if !ok {
			break
		}
		if st.used {
			lines = append(lines, st.line)
		}
		pos += st.consumed
	}

	return models.DecodedPayload{Round: round, Lines: lines}, nil
}

// DecodeLines is Decode with failures folded into an empty result. The
// payload is always usable; err only reports why it came back empty.
func DecodeLines(raw string) (models.DecodedPayload, error) {
	p, err := Decode(raw)
	if err != nil {
		return models.DecodedPayload{Lines: []models.TicketLine{}}, err
	}
	return p, nil
}

// parseRound reads the leading decimal digits of the first four characters.
func parseRound(data string) (int, error) {
	head := data
	if len(head) > roundWidth {
		head = head[:roundWidth]
	}
	end := 0
	for end < len(head) && isDigit(head[end]) {
		end++
	}
	if end == 0 {
		return 0, ErrInvalidRound
	}
	round, err := strconv.Atoi(head[:end])
	if err != nil {
		return 0, ErrInvalidRound
	}
	return round, nil
}

// scanSlot reads the letter-prefixed slot starting at pos.
func scanSlot(data string, pos int) (step, bool) {
	if pos >= len(data) || !isLetter(data[pos]) {
		return step{}, false
	}
	start := pos + 1
	if len(data)-start < digitsWidth {
		return step{}, false
	}

	var line models.TicketLine
	zero := true
	for i := range line {
		g := data[start+i*groupWidth : start+(i+1)*groupWidth]
		if !isDigit(g[0]) || !isDigit(g[1]) {
			return step{}, false
		}
		line[i] = int(g[0]-'0')*10 + int(g[1]-'0')
		if line[i] != 0 {
			zero = false
		}
	}

	return step{consumed: 1 + digitsWidth, line: line, used: !zero}, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
