// Package network реализует транспортный слой: WebSocket-соединения,
// разбор входящих интентов и доставку снапшотов. Ядро симуляции не знает
// про сокеты — обмен идет через типизированный фасад game.Engine.
package network

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/annel0/cell-arena/internal/game"
	"github.com/annel0/cell-arena/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server принимает WebSocket-соединения игроков
type Server struct {
	engine     *game.Engine
	httpServer *http.Server
	upgrader   websocket.Upgrader
	log        *logging.Logger

	mu      sync.Mutex
	clients map[string]*Client
}

// NewServer создает WebSocket-сервер на указанном адресе
func NewServer(addr string, engine *game.Engine) *Server {
	s := &Server{
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Браузерные клиенты подключаются с любых origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log:     logging.GetNetworkLogger(),
		clients: make(map[string]*Client),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

// Start запускает прием соединений. Метод неблокирующий.
func (s *Server) Start() {
	go func() {
		s.log.Info("WebSocket сервер слушает %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("Ошибка WebSocket сервера: %v", err)
		}
	}()
}

// Stop закрывает все соединения и останавливает HTTP-сервер
func (s *Server) Stop() error {
	s.mu.Lock()
	for _, c := range s.clients {
		c.close()
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("остановка WebSocket сервера: %w", err)
	}
	return nil
}

// ClientCount возвращает число открытых соединений
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// handleWS апгрейдит HTTP-запрос и запускает насосы клиента
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Отказ в апгрейде соединения от %s: %v", r.RemoteAddr, err)
		return
	}

	client := newClient(uuid.NewString(), conn, s)
	s.mu.Lock()
	s.clients[client.connID] = client
	s.mu.Unlock()

	s.log.Debug("Соединение %s открыто (%s)", client.connID, r.RemoteAddr)

	go client.writePump()
	go client.readPump()
}

// removeClient убирает клиента из реестра соединений
func (s *Server) removeClient(c *Client) {
	s.mu.Lock()
	delete(s.clients, c.connID)
	s.mu.Unlock()
}
