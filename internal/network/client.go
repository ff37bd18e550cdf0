package network

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/annel0/cell-arena/internal/logging"
	"github.com/annel0/cell-arena/internal/protocol"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 32
)

// Client представляет одно WebSocket-соединение.
// Реализует game.SnapshotSink: снапшоты складываются в буферизованный
// канал и уходят через writePump; цикл симуляции никогда не блокируется
// на медленном потребителе.
type Client struct {
	connID string
	conn   *websocket.Conn
	server *Server

	send chan []byte
	done chan struct{}
	once sync.Once

	playerID uint64
	joined   bool
}

func newClient(connID string, conn *websocket.Conn, server *Server) *Client {
	return &Client{
		connID: connID,
		conn:   conn,
		server: server,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// SendSnapshot сериализует снапшот и ставит его в очередь отправки.
// Возвращает false, если буфер заполнен — кадр пропускается.
func (c *Client) SendSnapshot(snap *protocol.Snapshot) bool {
	data, err := json.Marshal(snap)
	if err != nil {
		return false
	}
	return c.enqueue(data)
}

func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// readPump читает интенты до разрыва соединения.
// Любой выход из цикла (ошибка чтения, дисконнект) синхронно удаляет
// игрока из мира.
func (c *Client) readPump() {
	defer func() {
		c.close()
		c.server.removeClient(c)
		if c.joined {
			c.server.engine.Leave(c.playerID)
		}
		c.server.log.Debug("Соединение %s закрыто", c.connID)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.log.Warn("Соединение %s: ошибка чтения: %v", c.connID, err)
			}
			return
		}

		intent, err := protocol.DecodeIntent(data)
		if err != nil {
			if errors.Is(err, protocol.ErrUnknownIntent) {
				// Неизвестные типы молча игнорируются
				c.server.log.Debug("Соединение %s: %v", c.connID, err)
				continue
			}
			// Нечитаемый кадр — диагностика в лог, соединение живет дальше
			logging.LogProtocolError(c.connID, err, data)
			continue
		}

		c.dispatch(intent)
	}
}

// dispatch передает типизированный интент в движок
func (c *Client) dispatch(intent protocol.Intent) {
	switch in := intent.(type) {
	case protocol.JoinIntent:
		if c.joined {
			return
		}
		res, ok := c.server.engine.Join(in.Name, in.Color, c)
		if !ok {
			return
		}
		c.playerID = res.ID
		c.joined = true
		if data, err := json.Marshal(protocol.NewWelcome(res.ID, res.MapSize)); err == nil {
			c.enqueue(data)
		}

	case protocol.InputIntent:
		if c.joined {
			c.server.engine.SetInput(c.playerID, in.X, in.Y)
		}

	case protocol.SplitIntent:
		if c.joined {
			c.server.engine.Split(c.playerID)
		}

	case protocol.EjectIntent:
		if c.joined {
			c.server.engine.Eject(c.playerID)
		}
	}
}

// writePump пишет исходящие кадры и поддерживает соединение ping'ами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close закрывает соединение ровно один раз
func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}
