// Package rtcinput carries control messages over a WebRTC data channel.
package rtcinput

import "github.com/pion/webrtc/v3"

// Signal is a websocket signaling payload.
type Signal struct {
	T         string                   `json:"t"`
	SDP       string                   `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit `json:"candidate,omitempty"`
	Error     string                   `json:"error,omitempty"`
}

// InputLabel is the label of the data channel that carries control messages.
const InputLabel = "input"
