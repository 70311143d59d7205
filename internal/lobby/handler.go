package lobby

import (
	"net/http"
	"strings"

	"CricketTrumps/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the room routes on an authenticated group.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/rooms", h.List)
	r.POST("/rooms", h.Create)
	r.DELETE("/rooms/membership", h.Leave)
	r.GET("/rooms/:id", h.Get)
	r.POST("/rooms/:id/join", h.Join)
	r.POST("/rooms/:id/cpu", h.AddCpu)
	r.POST("/rooms/:id/start", h.Start)
}

func roomParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("id")))
}

// bindName reads an optional {name} body.
func bindName(c *gin.Context) (string, bool) {
	var req NameRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return "", false
		}
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = c.GetString("name")
	}
	return name, true
}

func serverError(c *gin.Context, err error) {
	utils.Log.Error("lobby request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /rooms
func (h *Handler) List(c *gin.Context) {
	rooms, err := h.svc.PublicRooms(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// POST /rooms  body: {name?}
func (h *Handler) Create(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	id, err := h.svc.CreateRoom(c.Request.Context(), c.GetString("identity"), name)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"roomId": id})
}

// GET /rooms/:id
func (h *Handler) Get(c *gin.Context) {
	room, err := h.svc.GetRoom(c.Request.Context(), roomParam(c))
	if err != nil {
		serverError(c, err)
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrRoomNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// POST /rooms/:id/join  body: {name?}
func (h *Handler) Join(c *gin.Context) {
	name, ok := bindName(c)
	if !ok {
		return
	}
	id := roomParam(c)
	joined, err := h.svc.JoinRoom(c.Request.Context(), id, c.GetString("identity"), name)
	if err != nil {
		serverError(c, err)
		return
	}
	if !joined {
		c.JSON(http.StatusConflict, gin.H{"error": "Room not found or full"})
		return
	}
	h.respondSeats(c, id)
}

// POST /rooms/:id/cpu  (members only)
func (h *Handler) AddCpu(c *gin.Context) {
	id := roomParam(c)
	if !h.member(c, id) {
		return
	}
	added, err := h.svc.AddCpu(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "Room not found or full"})
		return
	}
	h.respondSeats(c, id)
}

// POST /rooms/:id/start  (host only)
func (h *Handler) Start(c *gin.Context) {
	id := roomParam(c)
	room, err := h.svc.GetRoom(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrRoomNotFound.Error()})
		return
	}
	if len(room.Players) == 0 || room.Players[0].ID != c.GetString("identity") {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the host can start the game"})
		return
	}
	game, err := h.svc.StartGame(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	if game == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "game cannot start"})
		return
	}
	c.JSON(http.StatusOK, game)
}

// DELETE /rooms/membership
func (h *Handler) Leave(c *gin.Context) {
	id, err := h.svc.LeaveRoom(c.Request.Context(), c.GetString("identity"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "roomId": id})
}

func (h *Handler) member(c *gin.Context, id string) bool {
	room, err := h.svc.GetRoom(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return false
	}
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrRoomNotFound.Error()})
		return false
	}
	if !room.Has(c.GetString("identity")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this room"})
		return false
	}
	return true
}

func (h *Handler) respondSeats(c *gin.Context, id string) {
	room, err := h.svc.GetRoom(c.Request.Context(), id)
	if err != nil {
		serverError(c, err)
		return
	}
	players := 0
	if room != nil {
		players = len(room.Players)
	}
	c.JSON(http.StatusOK, JoinResponse{OK: true, RoomID: id, Players: players})
}
