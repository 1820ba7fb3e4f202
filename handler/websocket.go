package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"travel_agency/config"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

func tourChannel(tourId uint) string {
	return fmt.Sprintf("tour_seats:%d", tourId)
}

// PublishSeatUpdate đẩy delta ghế lên Redis cho tất cả instance
func PublishSeatUpdate(tourId uint, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Lỗi marshal seat update: %v", err)
		return
	}
	if err := getRedisClient().Publish(context.Background(), tourChannel(tourId), data).Err(); err != nil {
		log.Printf("Lỗi publish seat update: %v", err)
	}
}

// SeatWebsocket xử lý WS connection xem sơ đồ ghế realtime của một tour
func SeatWebsocket(c *websocket.Conn) {
	tourIdStr := c.Params("tourId")
	id64, err := strconv.ParseUint(tourIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid tourId: %s", tourIdStr)
		c.Close()
		return
	}
	tourId := uint(id64)

	// Khi WS disconnect → xoá client
	defer func() {
		mu.Lock()
		if clients[tourId] != nil {
			delete(clients[tourId], c)
			if len(clients[tourId]) == 0 {
				delete(clients, tourId)
			}
		}
		mu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	mu.Lock()
	if clients[tourId] == nil {
		clients[tourId] = make(map[*websocket.Conn]bool)
	}
	clients[tourId][c] = true
	mu.Unlock()

	// Gửi full state sơ đồ ghế lần đầu
	seatMap, err := FetchTourSeatMap(tourId)
	if err != nil {
		log.Printf("Lỗi load sơ đồ ghế tour %d: %v", tourId, err)
	} else {
		c.WriteJSON(seatMap)
	}

	// Sub kênh Redis
	pubsub := getRedisClient().Subscribe(context.Background(), tourChannel(tourId))
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[tourId] {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[tourId], conn)
			}
		}
		mu.Unlock()
	}
}
