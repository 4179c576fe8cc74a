package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"judge/models"
)

var (
	contestClients = make(map[string]map[*websocket.Conn]bool) // contest ID -> connected clients
	broadcast      = make(chan AttemptUpdate, 64)
	mutex          sync.Mutex
)

// AttemptUpdate is pushed to every client watching a contest whenever an
// attempt is created or resolved
type AttemptUpdate struct {
	ContestID  string         `json:"contest_id"`
	Attempt    models.Attempt `json:"attempt"`
	UpdateType string         `json:"update_type"` // "new" or "verdict"
}

// RegisterClient adds a WebSocket client to a specific contest
func RegisterClient(contestID string, conn *websocket.Conn) {
	mutex.Lock()
	if contestClients[contestID] == nil {
		contestClients[contestID] = make(map[*websocket.Conn]bool)
	}
	contestClients[contestID][conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from a specific contest
func UnregisterClient(contestID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := contestClients[contestID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(contestClients, contestID)
		}
	}
	mutex.Unlock()
}

// BroadcastAttemptUpdate queues an update for all clients watching the
// contest. Updates are dropped rather than blocking the scoring path when the
// queue is full.
func BroadcastAttemptUpdate(update AttemptUpdate) {
	select {
	case broadcast <- update:
	default:
		log.Println("Dropping attempt update, broadcast queue full")
	}
}

// HandleUpdates drains the broadcast channel and fans updates out to the
// contest's clients. Run once, as a goroutine, at startup.
func HandleUpdates() {
	for update := range broadcast {
		mutex.Lock()
		clients := contestClients[update.ContestID]
		for conn := range clients {
			if err := conn.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				conn.Close()
				delete(clients, conn)
			}
		}
		mutex.Unlock()
	}
}
