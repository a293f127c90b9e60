package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"golang.org/x/net/websocket"
)

// DebugStream fans out every published Frame to all currently connected
// websocket viewers as newline-delimited JSON. It is purely additive: the
// CLI runs fine with zero viewers attached, a slow viewer misses frames
// rather than blocking the pipeline, and a viewer whose write fails is
// disconnected.
type DebugStream struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan Frame
}

// NewDebugStream returns an empty stream ready to accept connections on
// its Handler.
func NewDebugStream() *DebugStream {
	return &DebugStream{clients: make(map[*websocket.Conn]chan Frame)}
}

// Handler returns an http.Handler suitable for mounting at /debug/ws.
func (s *DebugStream) Handler() http.Handler {
	return websocket.Handler(s.serve)
}

func (s *DebugStream) serve(conn *websocket.Conn) {
	ch := make(chan Frame, 8)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for frame := range ch {
		payload, err := json.Marshal(frame)
		if err != nil {
			continue
		}
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			return
		}
	}
}

// Broadcast mirrors frame to every connected viewer. A viewer whose
// buffer is full is skipped for this frame rather than blocking the
// broadcaster.
func (s *DebugStream) Broadcast(frame Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn, ch := range s.clients {
		select {
		case ch <- frame:
		default:
			log.Printf("lanedetect: debug stream viewer %v is slow, dropping frame", conn.RemoteAddr())
		}
	}
}
