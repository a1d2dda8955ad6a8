package realtime

import (
	"log"
	"sync"

	"oasis/models"

	"github.com/gorilla/websocket"
)

var (
	leaderboardClients = make(map[*websocket.Conn]bool) // Connected leaderboard clients
	broadcast          = make(chan LeaderboardUpdate)   // Broadcast channel for updates
	mutex              sync.Mutex                       // Mutex to protect leaderboardClients map
)

// LeaderboardUpdate carries the freshly ranked standings pushed after an accepted submission
type LeaderboardUpdate struct {
	Type    string                    `json:"type"` // always "leaderboard"
	Entries []models.LeaderboardEntry `json:"entries"`
}

// RegisterClient adds a WebSocket client to the leaderboard stream
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	leaderboardClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the leaderboard stream
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(leaderboardClients, conn)
	mutex.Unlock()
}

// BroadcastLeaderboard sends the given standings to all connected clients
func BroadcastLeaderboard(entries []models.LeaderboardEntry) {
	broadcast <- LeaderboardUpdate{Type: "leaderboard", Entries: entries}
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range leaderboardClients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(leaderboardClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
