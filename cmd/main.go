package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"CricketTrumps/config"
	"CricketTrumps/internal/auth"
	"CricketTrumps/internal/game/card"
	"CricketTrumps/internal/game/history"
	"CricketTrumps/internal/game/manager"
	"CricketTrumps/internal/lobby"
	"CricketTrumps/internal/middleware"
	"CricketTrumps/internal/storage"
	"CricketTrumps/internal/utils"
	"CricketTrumps/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	utils.Init(config.C.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	//-------------------------------------------------------
	// 1. Room store: Redis when configured, memory otherwise
	//-------------------------------------------------------
	repo := lobby.NewMemoryRepo()
	if addr := config.C.Redis.Addr; addr != "" {
		rdb, err := storage.OpenRedis(ctx, addr, config.C.Redis.Password, config.C.Redis.DB)
		if err != nil {
			utils.Log.Fatal("Redis init failed", "err", err)
		}
		defer rdb.Close()
		repo = lobby.NewRedisRepo(rdb, config.C.Redis.TTL)
		utils.Log.Info("rooms stored in redis", "addr", addr)
	}

	//-------------------------------------------------------
	// 2. Match history: Postgres when configured
	//-------------------------------------------------------
	recorder := history.NewMemoryRecorder()
	if dsn := config.C.Database.DSN; dsn != "" {
		db, err := storage.OpenPostgres(ctx, dsn)
		if err != nil {
			utils.Log.Fatal("Postgres init failed", "err", err)
		}
		defer db.Close()
		recorder, err = history.NewPostgresRecorder(ctx, db)
		if err != nil {
			utils.Log.Fatal("match history init failed", "err", err)
		}
	}

	//-------------------------------------------------------
	// 3. Hub, lobby and game manager
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	svc := lobby.NewService(repo, hub, config.C.Game.Seed)
	gameMgr := manager.NewGameManager(svc, hub, recorder, config.C.Game.CPUDelay)

	svc.OnGameStarted = gameMgr.StartRoom
	hub.OnIncoming = gameMgr.HandlePlayerMessage
	hub.OnDisconnect = gameMgr.HandleDisconnect

	//-------------------------------------------------------
	// 4. Stale lobby sweep
	//-------------------------------------------------------
	sweep, err := utils.StartCron(config.C.Game.SweepSpec, "suggest-cpu", func() {
		ids, err := svc.SuggestCPU(ctx, config.C.Game.CPUSuggestAfter)
		if err != nil {
			utils.Log.Error("suggest cpu sweep", "err", err)
			return
		}
		if len(ids) > 0 {
			utils.Log.Info("suggested cpu players", "rooms", ids)
		}
	})
	if err != nil {
		utils.Log.Fatal("cron init failed", "err", err)
	}
	defer sweep.Stop()

	//-------------------------------------------------------
	// 5. HTTP routes
	//-------------------------------------------------------
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/catalog", func(c *gin.Context) {
		c.JSON(http.StatusOK, card.Catalog())
	})
	r.GET("/matches", func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		res, err := recorder.Recent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	})

	secret := []byte(config.C.JWT.Secret)
	ah := auth.NewHandler(secret, config.C.JWT.TTL)
	r.POST("/auth/guest", ah.Guest)

	authed := r.Group("/", middleware.JwtAuthMiddleware(secret))
	{
		authed.GET("/ws", websocket.ServeWS(hub))
		lobby.NewHandler(svc).Register(authed)
	}

	//-------------------------------------------------------
	// 6. Serve until SIGINT / SIGTERM
	//-------------------------------------------------------
	srv := &http.Server{Addr: config.C.Server.Port, Handler: r}
	go func() {
		utils.Log.Info("Server running", "addr", config.C.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatal("listen", "err", err)
		}
	}()

	<-ctx.Done()
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		utils.Log.Error("shutdown", "err", err)
	}
	utils.Log.Info("Server stopped")
}
