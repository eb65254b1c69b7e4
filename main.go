package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"arenaserver/arena"
	"arenaserver/arena/broadcast"
	"arenaserver/arena/connection"
	"arenaserver/arena/game"
	"arenaserver/utils"
)

func main() {
	logger, err := utils.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	config, err := utils.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	registry := connection.NewRegistry(logger)
	directory := game.NewDirectory(logger)
	directory.SetOnChange(func() {
		broadcast.RoomList(registry, directory, logger)
	})

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	go utils.CronJobs(directory, registry, logger)

	router := gin.New()
	router.Use(gin.Recovery(), utils.RequestLogger(logger))

	if len(config.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     config.AllowedOrigins,
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Static client assets; the game itself runs over /ws.
	router.StaticFile("/", config.PublicDir+"/index.html")
	router.Static("/public", config.PublicDir)

	router.GET("/ws", func(c *gin.Context) {
		arena.HandleConnections(c.Writer, c.Request, registry, directory, upgrader, logger)
	})

	logger.Info("arena server listening", zap.String("addr", config.ListenAddr))
	if err := router.Run(config.ListenAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
