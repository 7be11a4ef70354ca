package server

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// Connection serves analysis requests over a single websocket. Each
// request yields exactly one response; idle connections are closed after
// the configured timeout.
type Connection struct {
	conn        *websocket.Conn
	send        chan any
	logger      *log.Logger
	clock       quartz.Clock
	idleTimeout time.Duration
	ctx         context.Context
	cancel      context.CancelFunc
	closeOnce   sync.Once
}

// NewConnection wraps an upgraded websocket.
func NewConnection(conn *websocket.Conn, logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:        conn,
		send:        make(chan any, 16),
		logger:      logger.WithPrefix("conn"),
		clock:       clock,
		idleTimeout: idleTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start begins the read and write loops.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close tears the connection down once.
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// Done is closed when the connection has shut down.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)

	var idle *quartz.Timer
	if c.idleTimeout > 0 {
		idle = c.clock.AfterFunc(c.idleTimeout, func() {
			c.logger.Info("Closing idle connection", "timeout", c.idleTimeout)
			_ = c.Close()
		})
		defer idle.Stop()
	}

	for {
		var req Request
		if err := c.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		if idle != nil {
			idle.Reset(c.idleTimeout)
		}

		c.logger.Debug("Received request", "type", req.Type)
		resp, err := handleRequest(&req)
		if err != nil {
			c.enqueue(newErrorResponse(err))
			continue
		}
		c.enqueue(resp)
	}
}

func (c *Connection) writePump() {
	defer func() { _ = c.Close() }()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *Connection) enqueue(msg any) {
	select {
	case c.send <- msg:
	case <-c.ctx.Done():
	}
}
