package models

// TicketLine is one play on a ticket: six numbers in the order they were printed.
type TicketLine [6]int

// DecodedPayload is the content of a ticket QR payload
type DecodedPayload struct {
	Round int          `json:"round"`
	Lines []TicketLine `json:"lines"`
}

// LineCount returns the number of usable lines on the ticket
func (p DecodedPayload) LineCount() int {
	return len(p.Lines)
}

// HasLines reports whether the payload carried at least one usable line
func (p DecodedPayload) HasLines() bool {
	return len(p.Lines) > 0
}
