package measurementHandler

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

// HandleLiveQuality scores camera frames streamed over the socket so the
// client can frame the face before submitting the real measurement photo.
// Each binary message is one encoded image; each reply is one quality report.
func (h *MeasurementHandler) HandleLiveQuality(c *websocket.Conn) {
	h.log.Info("Live quality WebSocket client connected")
	defer h.log.Info("Live quality WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Live quality WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.BinaryMessage {
			continue
		}

		frameCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		report, err := h.measurementService.CheckQuality(frameCtx, message)
		cancel()

		if err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				h.log.Errorf("Error sending error response: %v", writeErr)
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(report); err != nil {
			h.log.Errorf("Error writing quality report: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}
