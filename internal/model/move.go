package model

// MoveRequest is the wire form of a move attempt, arriving over the REST or
// websocket surface. Coordinate ranges are enforced by the validator tags on
// Position; (0,0) is a legal square, so the fields themselves carry no
// required tag.
type MoveRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// SimpleMove records a committed from/to pair, used for last-move highlights.
type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
