package websocket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Request is an inbound message with its payload normalised. Clients send
// the room id either as a bare string or inside an object, so every field a
// handler may need lives here.
type Request struct {
	From        string
	Event       string
	RoomID      string
	Name        string
	Attribute   string
	TargetIndex int
	CardIndices []int
	Item        string
}

type requestPayload struct {
	RoomID      string `json:"roomId"`
	PlayerName  string `json:"playerName"`
	Name        string `json:"name"`
	Attribute   string `json:"attribute"`
	TargetIndex *int   `json:"targetIndex"`
	CardIndices []int  `json:"cardIndices"`
	Item        string `json:"item"`
}

// ParseRequest decodes msg into a Request. An absent or null payload is
// allowed; anything other than a string or an object is rejected.
func ParseRequest(msg IncomingMessage) (Request, error) {
	req := Request{From: msg.From, Event: msg.Event, TargetIndex: -1}

	raw := bytes.TrimSpace(msg.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req, nil
	}

	switch raw[0] {
	case '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return req, fmt.Errorf("%s: bad payload: %w", msg.Event, err)
		}
		req.RoomID = normaliseRoomID(id)
		return req, nil
	case '{':
		var p requestPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return req, fmt.Errorf("%s: bad payload: %w", msg.Event, err)
		}
		req.RoomID = normaliseRoomID(p.RoomID)
		req.Name = strings.TrimSpace(p.PlayerName)
		if req.Name == "" {
			req.Name = strings.TrimSpace(p.Name)
		}
		req.Attribute = strings.ToLower(strings.TrimSpace(p.Attribute))
		if p.TargetIndex != nil {
			req.TargetIndex = *p.TargetIndex
		}
		req.CardIndices = p.CardIndices
		req.Item = strings.ToLower(strings.TrimSpace(p.Item))
		return req, nil
	}
	return req, fmt.Errorf("%s: payload must be a room id or an object", msg.Event)
}

// room codes are upper case; clients often type them in lower case
func normaliseRoomID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
