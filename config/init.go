package config

import (
	"fmt"
	"log"
	"strconv"

	"hotelflow/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

// InitApp wires the router, websocket hub and cron scheduler.
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %v", err)
	}

	ConnectDB()

	ConnectCloudinary()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}

// InitWebSocket exposes the live room-board channel. Authenticated clients
// pass their access token and the hotel scope is read from it; the hotelId
// query parameter remains as a fallback for lobby displays. The scope is
// stored on the session so broadcasts can be filtered per hotel.
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		hotelId := c.Query("hotelId")
		if token := c.Query("token"); token != "" {
			if info, err := services.GetTokenInfo(token); err == nil && info.HotelID != 0 {
				hotelId = strconv.FormatUint(uint64(info.HotelID), 10)
			}
		}
		keys := map[string]interface{}{
			"hotelId": hotelId,
		}
		m.HandleRequestWithKeys(c.Writer, c.Request, keys)
	})
	log.Println("WebSocket initialized successfully")
}
