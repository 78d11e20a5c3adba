package server

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/hanabi/engine"
	"github.com/minaorangina/hanabi/protocol"
	"github.com/minaorangina/hanabi/store"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. A full 50 card deck fits.
	maxMessageSize = 1024
)

var errConnClosed = errors.New("websocket connection closed")

// wsConn carries one session: each text message in is a command line,
// each line of a report goes out as its own text message.
// Only writePump writes to the connection.
type wsConn struct {
	conn      *websocket.Conn
	sessionID string
	store     store.SessionStore
	send      chan []byte
	done      chan struct{}
	closeMsg  []byte
}

func newWSConn(conn *websocket.Conn, sessionID string, st store.SessionStore) *wsConn {
	c := &wsConn{
		conn:      conn,
		sessionID: sessionID,
		store:     st,
		send:      make(chan []byte),
		done:      make(chan struct{}),
	}

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go c.writePump()
	return c
}

func (c *wsConn) ReadLine() (string, error) {
	for {
		msgType, msg, err := c.conn.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return "", io.EOF
			}
			return "", err
		}
		if msgType != websocket.TextMessage {
			continue
		}
		return strings.TrimRight(string(msg), "\r\n"), nil
	}
}

func (c *wsConn) WriteReport(r protocol.Report) error {
	if err := c.store.Record(c.sessionID, []protocol.Report{r}); err != nil {
		return err
	}

	for _, line := range engine.FormatReport(r) {
		select {
		case c.send <- []byte(line):
		case <-c.done:
			return errConnClosed
		}
	}
	return nil
}

// close sends a close frame with the given code, then waits for the
// connection to be torn down
func (c *wsConn) close(code int, text string) {
	c.closeMsg = websocket.FormatCloseMessage(code, text)
	close(c.send)
	<-c.done
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
		close(c.done)
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, c.closeMsg)
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
