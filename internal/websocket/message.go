package websocket

import "encoding/json"

// inbound events
const (
	EventCreateRoom  = "create_room"
	EventJoinRoom    = "join_room"
	EventGetRooms    = "get_rooms"
	EventAddCPU      = "add_cpu"
	EventStartGame   = "start_game"
	EventMakeMove    = "make_move"
	EventNextTurn    = "next_turn"
	EventDropGame    = "drop_game"
	EventStealMove   = "steal_move"
	EventActivateSpy = "activate_spy"
	EventBuyItem     = "buy_item"
	EventLeaveRoom   = "leave_room"
)

// outbound events
const (
	EventRoomsList    = "rooms_list"
	EventRoomCreated  = "room_created"
	EventPlayerJoined = "player_joined"
	EventGameStarted  = "game_started"
	EventGameUpdate   = "game_update"
	EventSpyView      = "spy_view"
	EventSuggestCPU   = "suggest_cpu"
	EventError        = "error"
)

type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// IncomingMessage is a frame as read from the socket. From is set by the
// server, never by the client.
type IncomingMessage struct {
	From  string          `json:"-"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func ErrorMessage(text string) OutgoingMessage {
	return OutgoingMessage{Event: EventError, Data: text}
}
