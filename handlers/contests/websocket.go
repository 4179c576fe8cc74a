package contests

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"judge/database"
	"judge/models"
	"judge/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ContestWebSocket upgrades the connection and streams attempt verdicts for a contest
// @Summary Live attempt feed
// @Description WebSocket stream of attempt updates for a contest
// @Tags Contests
// @Param id path string true "Contest ID"
// @Router /contests/{id}/live [get]
// @Security Bearer
func ContestWebSocket(c *gin.Context) {
	contestID := c.Param("id")

	var count int64
	database.DB.Model(&models.Contest{}).Where("id = ?", contestID).Count(&count)
	if count == 0 {
		respondWithError(c, http.StatusNotFound, ErrContestNotFound)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(contestID, conn)
	defer func() {
		realtime.UnregisterClient(contestID, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
