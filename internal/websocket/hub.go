package websocket

import (
	"sync"

	"CricketTrumps/internal/utils"
)

type HubInterface interface {
	BroadcastToPlayers(addrs []string, msg OutgoingMessage)
	BroadcastAll(msg OutgoingMessage)
	SendToPlayer(addr string, msg OutgoingMessage)
	ClientByAddress(addr string) (*Client, bool)
	Close()
}

type Hub struct {
	clients    map[string]*Client // identity -> client
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	quit       chan struct{}
	closeOnce  sync.Once
	mu         sync.RWMutex

	// OnIncoming runs on the sender's read goroutine, so one client's
	// messages are handled in order.
	OnIncoming func(IncomingMessage)
	// OnDisconnect runs on its own goroutine after a client is removed.
	OnDisconnect func(addr string)
}

type broadcastReq struct {
	Addresses []string // nil means every client
	Message   OutgoingMessage
}

type sendReq struct {
	Address string
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Log.Info("hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[c.Address]; ok && old != c {
				// a second tab replaces the first connection
				close(old.Send)
			}
			h.clients[c.Address] = c
			n := len(h.clients)
			h.mu.Unlock()
			utils.Log.Debug("hub register", "player", c.Address, "clients", n)

		case c := <-h.unregister:
			h.mu.Lock()
			current, ok := h.clients[c.Address]
			if ok && current == c {
				delete(h.clients, c.Address)
				close(c.Send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			if ok && current == c {
				utils.Log.Debug("hub unregister", "player", c.Address, "clients", n)
				if h.OnDisconnect != nil {
					go h.OnDisconnect(c.Address)
				}
			}

		case req := <-h.broadcast:
			h.mu.RLock()
			if req.Addresses == nil {
				for _, client := range h.clients {
					h.deliver(client, req.Message)
				}
			} else {
				for _, addr := range req.Addresses {
					if client, ok := h.clients[addr]; ok {
						h.deliver(client, req.Message)
					}
				}
			}
			h.mu.RUnlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			if client, ok := h.clients[req.Address]; ok {
				h.deliver(client, req.Message)
			}
			h.mu.RUnlock()

		case <-h.quit:
			h.mu.Lock()
			for addr, c := range h.clients {
				close(c.Send)
				delete(h.clients, addr)
			}
			h.mu.Unlock()
			utils.Log.Info("hub stopped")
			return
		}
	}
}

// deliver never blocks the hub; a client whose buffer is full misses the message.
func (h *Hub) deliver(c *Client, msg OutgoingMessage) {
	select {
	case c.Send <- msg:
	default:
		utils.Log.Warn("client send buffer full, dropping message", "player", c.Address, "event", msg.Event)
	}
}

// Broadcast to multiple players
func (h *Hub) BroadcastToPlayers(addrs []string, msg OutgoingMessage) {
	if addrs == nil {
		addrs = []string{}
	}
	select {
	case h.broadcast <- broadcastReq{Addresses: addrs, Message: msg}:
	case <-h.quit:
	}
}

// BroadcastAll sends to every connected client.
func (h *Hub) BroadcastAll(msg OutgoingMessage) {
	select {
	case h.broadcast <- broadcastReq{Message: msg}:
	case <-h.quit:
	}
}

// Send to a single player
func (h *Hub) SendToPlayer(addr string, msg OutgoingMessage) {
	select {
	case h.sendOne <- sendReq{Address: addr, Message: msg}:
	case <-h.quit:
	}
}

func (h *Hub) ClientByAddress(addr string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[addr]
	return c, ok
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.quit) })
}

func (h *Hub) dispatch(msg IncomingMessage) {
	if h.OnIncoming != nil {
		h.OnIncoming(msg)
	}
}
