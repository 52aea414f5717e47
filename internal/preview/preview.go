// Package preview mirrors outbound frames to browser clients over a
// websocket, for watching the animation without hardware attached.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const writeDeadline = 200 * time.Millisecond

type frameMsg struct {
	T       int64  `json:"t"`
	FrameID uint64 `json:"frame_id"`
	LEDs    int    `json:"leds"`
	RGB     []byte `json:"rgb"` // base64 by encoding/json
}

// Server fans outbound frames out to connected websocket clients. Slow
// clients are dropped rather than allowed to stall the send loop.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	up      websocket.Upgrader
	log     zerolog.Logger
}

func New(log zerolog.Logger) *Server {
	return &Server{
		clients: map[*websocket.Conn]bool{},
		up:      websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		log:     log,
	}
}

// Handler serves GET /ws/frames.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/frames", s.handleFrames)
	return mux
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	conn, err := s.up.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()
	s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("preview client connected")

	// Reader loop only notices disconnects; clients send nothing.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends one frame's channel data to every client. Satisfies
// stream.FrameTap.
func (s *Server) Broadcast(frameID uint64, channels []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return
	}
	b, err := json.Marshal(frameMsg{
		T:       time.Now().UnixNano(),
		FrameID: frameID,
		LEDs:    len(channels) / 3,
		RGB:     channels,
	})
	if err != nil {
		return
	}
	for c := range s.clients {
		c.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.WriteMessage(websocket.TextMessage, b); err != nil {
			s.log.Debug().Err(err).Msg("preview write failed, dropping client")
			delete(s.clients, c)
			c.Close()
		}
	}
}
