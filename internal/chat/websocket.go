package chat

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// writeWait bounds a single frame write so a stalled client cannot hold up
// session teardown.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// frame is the WebSocket message format in both directions.
type frame struct {
	Type      string    `json:"type"` // client: "message"; server: "history", "message", "error"
	SessionID string    `json:"session_id,omitempty"`
	Content   string    `json:"content,omitempty"`
	Message   *Message  `json:"message,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	State     State     `json:"state,omitempty"`
}

// frameWriter is the write half of *websocket.Conn.
type frameWriter interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v any) error
}

// wsConn serialises writes; replies arrive on timer goroutines.
type wsConn struct {
	mu     sync.Mutex
	conn   frameWriter
	wait   time.Duration
	logger *zap.Logger
}

func (c *wsConn) send(f frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.wait)); err != nil {
		c.logger.Debug("chat: websocket write deadline", zap.Error(err))
		return
	}
	if err := c.conn.WriteJSON(f); err != nil {
		c.logger.Debug("chat: websocket write", zap.Error(err))
	}
}

// handleWebSocket binds one session to the connection. The session lives
// exactly as long as the socket: when the client goes away, pending replies
// are cancelled.
func handleWebSocket(hub *Hub, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("chat: websocket upgrade", zap.Error(err))
			return
		}
		defer conn.Close()

		sess := hub.CreateBound()
		defer hub.Close(sess.ID())

		c := &wsConn{conn: conn, wait: writeWait, logger: logger}
		unsubscribe := sess.Subscribe(func(m Message) {
			c.send(frame{Type: "message", SessionID: sess.ID(), Message: &m, State: sess.State()})
		})
		defer unsubscribe()

		c.send(frame{Type: "history", SessionID: sess.ID(), Messages: sess.Messages(), State: sess.State()})

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logger.Warn("chat: websocket read", zap.Error(err))
				}
				return
			}

			var req frame
			if err := json.Unmarshal(raw, &req); err != nil {
				c.send(frame{Type: "error", SessionID: sess.ID(), Content: "invalid message format"})
				continue
			}

			switch req.Type {
			case "message":
				if _, err := sess.Send(req.Content); err != nil {
					c.send(frame{Type: "error", SessionID: sess.ID(), Content: err.Error(), State: sess.State()})
				}
			default:
				c.send(frame{Type: "error", SessionID: sess.ID(), Content: "unknown message type: " + req.Type})
			}
		}
	}
}
