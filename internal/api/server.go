// Package api exposes an optional WebSocket command source for producers
// that cannot attach to the process's stdin.
package api

import (
	"context"
	"io"
	"net/http"

	"github.com/edaniels/golog"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins; this is a local-network tool.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server accepts WebSocket producers on /ws and republishes each received
// text frame as protocol lines. The protocol stays one-directional: nothing
// is ever written back to a producer.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	pr         *io.PipeReader
	pw         *io.PipeWriter
	logger     golog.Logger
}

// NewServer returns a server that will listen on addr once started.
func NewServer(addr string, logger golog.Logger) *Server {
	pr, pw := io.Pipe()
	s := &Server{pr: pr, pw: pw, logger: logger}
	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/ws", s.handleWS)
	s.httpServer = &http.Server{Addr: addr, Handler: s.mux}
	return s
}

// Lines is the merged line stream from all connected producers. It sees end
// of input only when the server stops, not when an individual producer
// disconnects.
func (s *Server) Lines() io.Reader {
	return s.pr
}

// Handler exposes the route table; used by tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	s.logger.Infow("listening for command producers", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	// Listen failure: fail the line stream so the run loop surfaces the
	// error instead of parking forever or reporting a clean end of input.
	s.pw.CloseWithError(err)
	return err
}

// Stop closes the listener and ends the line stream, which the dispatcher
// observes as a graceful end of input.
func (s *Server) Stop(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	_ = s.pw.Close()
	return err
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.logger.Infow("producer connected", "remote", r.RemoteAddr)
	s.readPump(conn, r.RemoteAddr)
}

// readPump forwards frames until the producer goes away. Pipe writes are
// serialized by the pipe itself, so concurrent producers interleave at frame
// granularity.
func (s *Server) readPump(conn *websocket.Conn, remote string) {
	defer func() {
		_ = conn.Close()
	}()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			s.logger.Infow("producer disconnected", "remote", remote)
			return
		}
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			msg = append(msg, '\n')
		}
		if _, err := s.pw.Write(msg); err != nil {
			return
		}
	}
}
