package control

import (
	"encoding/json"
	"errors"
	"testing"
)

// TestProtocol_Move verifies decoding a normalized move message.
func TestProtocol_Move(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"move","x":0.1,"y":0.25,"norm":true}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgMove || msg.X != 0.1 || msg.Y != 0.25 || !msg.Norm {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Down verifies decoding a button message.
func TestProtocol_Down(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"down","button":"right"}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgDown || msg.Button != "right" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Wheel verifies decoding a wheel message.
func TestProtocol_Wheel(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"wheel","dx":-1,"dy":3}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.T != MsgWheel || msg.DX != -1 || msg.DY != 3 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_SetCage verifies decoding a cage rectangle.
func TestProtocol_SetCage(t *testing.T) {
	var msg Message
	if err := json.Unmarshal([]byte(`{"t":"setCage","rect":{"x":1,"y":2,"w":3,"h":4}}`), &msg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if msg.Rect == nil || msg.Rect.X != 1 || msg.Rect.H != 4 {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

// TestProtocol_Replies verifies reply encoding.
func TestProtocol_Replies(t *testing.T) {
	data, err := json.Marshal(PositionMessage(12, 34))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"position","x":12,"y":34}` {
		t.Fatalf("unexpected position reply: %s", data)
	}
	data, err = json.Marshal(ErrorMessage(errors.New("boom")))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"error","error":"boom"}` {
		t.Fatalf("unexpected error reply: %s", data)
	}
}

// TestProtocol_PositionAtOrigin verifies a cursor at (0,0) still reports both coordinates.
func TestProtocol_PositionAtOrigin(t *testing.T) {
	data, err := json.Marshal(PositionMessage(0, 0))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"position","x":0,"y":0}` {
		t.Fatalf("expected zero coordinates, got %s", data)
	}
	data, err = json.Marshal(Message{T: MsgPosition, Y: 5})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"t":"position","x":0,"y":5}` {
		t.Fatalf("expected x present, got %s", data)
	}
}
