// Package control turns remote pointer messages into mouse actions.
package control

import (
	"encoding/json"

	"github.com/frudas24/deskmouse/internal/cage"
)

// Message types accepted from clients.
const (
	MsgMove         = "move"
	MsgDown         = "down"
	MsgUp           = "up"
	MsgClick        = "click"
	MsgWheel        = "wheel"
	MsgPosition     = "position"
	MsgInputEnabled = "inputEnabled"
	MsgSetMonitor   = "setMonitor"
	MsgSetCage      = "setCage"
)

// Message types sent back to clients.
const (
	MsgError = "error"
)

// Message is a control payload exchanged over websocket or a data channel.
type Message struct {
	T       string     `json:"t"`
	X       float64    `json:"x,omitempty"`
	Y       float64    `json:"y,omitempty"`
	Norm    bool       `json:"norm,omitempty"`
	Button  string     `json:"button,omitempty"`
	DX      int        `json:"dx,omitempty"`
	DY      int        `json:"dy,omitempty"`
	Idx     int        `json:"idx,omitempty"`
	Rect    *cage.Rect `json:"rect,omitempty"`
	Enabled *bool      `json:"enabled,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// positionReply always carries both coordinates, including the origin.
type positionReply struct {
	T string `json:"t"`
	X int    `json:"x"`
	Y int    `json:"y"`
}

// MarshalJSON encodes position replies with explicit coordinates and every
// other message with the omitempty field set.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.T == MsgPosition {
		return json.Marshal(positionReply{T: m.T, X: int(m.X), Y: int(m.Y)})
	}
	type plain Message
	return json.Marshal(plain(m))
}

// PositionMessage builds a position reply.
func PositionMessage(x, y int) *Message {
	return &Message{T: MsgPosition, X: float64(x), Y: float64(y)}
}

// ErrorMessage builds an error reply.
func ErrorMessage(err error) *Message {
	return &Message{T: MsgError, Error: err.Error()}
}
