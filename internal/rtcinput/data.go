package rtcinput

import (
	"encoding/json"
	"fmt"

	"github.com/frudas24/deskmouse/internal/control"
)

// HandleData decodes one data channel payload, applies it and returns the
// encoded reply, or nil when there is nothing to send back.
func HandleData(ctrl *control.Controller, data []byte) []byte {
	var msg control.Message
	var reply *control.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		reply = control.ErrorMessage(fmt.Errorf("decode message: %w", err))
	} else {
		r, err := ctrl.Handle(msg)
		if err != nil {
			r = control.ErrorMessage(err)
		}
		reply = r
	}
	if reply == nil {
		return nil
	}
	out, err := json.Marshal(reply)
	if err != nil {
		return nil
	}
	return out
}
