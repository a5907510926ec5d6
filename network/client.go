package network

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/automoto/cyberia-client/logger"
	"github.com/automoto/cyberia-client/presenter"
	"github.com/automoto/cyberia-client/shared/messages"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

var errNotConnected = errors.New("not connected")

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// Client manages a WebSocket connection to the game server and feeds every
// received entity state into a presenter.SnapshotBuffer.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      esync.NetworkId
	reconnectToken string
	serverName     string
	tickRate       int
	level          string
	conn           *websocket.Conn

	buffer  *presenter.SnapshotBuffer
	present map[netconfig.EntityID]struct{}
	now     func() time.Time
}

func NewClient(buffer *presenter.SnapshotBuffer) *Client {
	return &Client{
		state:   StateDisconnected,
		buffer:  buffer,
		present: make(map[netconfig.EntityID]struct{}),
		now:     time.Now,
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	token := c.reconnectToken
	c.mu.Unlock()

	log := logger.Log.WithField("address", address)

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Info("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.SendMessage(messages.JoinRequest{
			Version:        version,
			PlayerName:     playerName,
			ReconnectToken: token,
		})
		if err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.WithFields(logrus.Fields{
			"network_id": msg.NetworkID,
			"server":     msg.ServerName,
			"tick_rate":  msg.TickRate,
			"level":      msg.Level,
		}).Info("join accepted")
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.reconnectToken = msg.ReconnectToken
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.level = msg.Level
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.WithField("reason", msg.Reason).Warn("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		c.applyWorld(snapshot)
	})

	router.On(func(_ *router.NetworkClient, evt messages.TeleportEvent) {
		c.applyTeleport(evt)
	})

	router.On(func(_ *router.NetworkClient, evt messages.DespawnEvent) {
		id := netconfig.EntityID(evt.NetworkID)
		c.mu.Lock()
		delete(c.present, id)
		c.mu.Unlock()
		c.buffer.Despawn(id)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.WithError(err).Info("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.WithError(err).Warn("network error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// applyTeleport flags the entity's next snapshot so it snaps into place.
func (c *Client) applyTeleport(evt messages.TeleportEvent) {
	c.buffer.MarkTeleport(netconfig.EntityID(evt.NetworkID))
}

// applyWorld decodes one world snapshot into the buffer. Entities missing
// from it are despawned.
func (c *Client) applyWorld(snapshot esync.WorldSnapshot) {
	receivedAt := c.now()
	seen := make([]netconfig.EntityID, 0, len(snapshot))

	for _, ent := range snapshot {
		id := netconfig.EntityID(ent.Id)
		seen = append(seen, id)

		comps := make([]any, 0, len(ent.State))
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				logger.Log.WithError(err).WithField("entity", id).Debug("skipping undecodable component")
				continue
			}
			comps = append(comps, instance)
		}

		if s, ok := presenter.FromComponents(id, comps, receivedAt); ok {
			c.buffer.Put(s)
		}
	}

	for _, id := range c.reconcile(seen) {
		c.buffer.Despawn(id)
	}
}

// reconcile replaces the present set with seen and returns the ids that
// dropped out of it.
func (c *Client) reconcile(seen []netconfig.EntityID) []netconfig.EntityID {
	next := make(map[netconfig.EntityID]struct{}, len(seen))
	for _, id := range seen {
		next[id] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	var gone []netconfig.EntityID
	for id := range c.present {
		if _, ok := next[id]; !ok {
			gone = append(gone, id)
		}
	}
	c.present = next
	return gone
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) Buffer() *presenter.SnapshotBuffer { return c.buffer }

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) Level() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// SendMessage serializes msg with the necs router and writes it to the server.
func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return errNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	logger.Log.WithError(err).Error("client error")
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
