// Package listener subscribes to confirmed transactions over the gateway websocket.
package listener

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid"
	"go.uber.org/ratelimit"

	"github.com/nemtech/nem2-sdk-go/pkg/codec"
	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

const (
	ChannelConfirmedAdded = "confirmedAdded"

	defaultReadTimeout      = 60 * time.Second
	writeTimeout            = 3 * time.Second
	subscriptionsPerSecond  = 10
	confirmationsBufferSize = 64
)

var (
	ErrClosed        = errors.New("listener is closed")
	ErrNotConnected  = errors.New("listener is not connected")
	ErrAlreadyOpened = errors.New("listener is already opened")
)

// Confirmation is a transaction reported as confirmed by the gateway.
type Confirmation struct {
	Hash    transaction.Hash
	Height  uint64
	Channel string
}

type handshake struct {
	UID string `json:"uid"`
}

type subscription struct {
	UID         string `json:"uid"`
	Subscribe   string `json:"subscribe,omitempty"`
	Unsubscribe string `json:"unsubscribe,omitempty"`
}

type messageMeta struct {
	ChannelName string          `json:"channelName"`
	Hash        string          `json:"hash"`
	Height      json.RawMessage `json:"height"`
}

type message struct {
	Meta *messageMeta `json:"meta"`
}

// Option configures a Listener.
type Option func(*Listener)

// WithReadTimeout sets how long the connection may stay silent.
func WithReadTimeout(timeout time.Duration) Option {
	return func(l *Listener) {
		if timeout > 0 {
			l.readTimeout = timeout
		}
	}
}

// WithMetrics records connection and message metrics.
func WithMetrics(m *metrics.Listener) Option {
	return func(l *Listener) {
		l.metrics = m
	}
}

// Listener streams confirmations of subscribed addresses.
type Listener struct {
	endpoint    string
	logger      log.Logger
	metrics     *metrics.Listener
	limiter     ratelimit.Limiter
	readTimeout time.Duration

	mutex         *sync.Mutex
	conn          *websocket.Conn
	uid           string
	confirmations chan Confirmation
	closed        chan struct{}
	closeOnce     *sync.Once
	err           error
}

// New creates a listener for the gateway at rawURL.
func New(rawURL string, logger log.Logger, opts ...Option) *Listener {
	l := &Listener{
		endpoint:      rawURL,
		logger:        logger,
		limiter:       ratelimit.New(subscriptionsPerSecond),
		readTimeout:   defaultReadTimeout,
		mutex:         &sync.Mutex{},
		confirmations: make(chan Confirmation, confirmationsBufferSize),
		closed:        make(chan struct{}),
		closeOnce:     &sync.Once{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// endpointURL converts the gateway url into its websocket endpoint.
func endpointURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	switch parsed.Scheme {
	case "http":
		parsed.Scheme = "ws"
	case "https":
		parsed.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/ws"
	return parsed.String(), nil
}

// Open dials the gateway and waits for the handshake.
// Cancelling ctx closes the listener.
func (l *Listener) Open(ctx context.Context) (err error) {
	defer func() { l.metrics.ObserveConnect(err) }()
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.conn != nil {
		return ErrAlreadyOpened
	}
	endpoint, err := endpointURL(l.endpoint)
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", endpoint, err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(l.readTimeout)); err != nil {
		conn.Close()
		return err
	}
	hs := &handshake{}
	if err := conn.ReadJSON(hs); err != nil {
		conn.Close()
		return fmt.Errorf("reading handshake: %w", err)
	}
	if hs.UID == "" {
		hs.UID = ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
		l.logger.Warningf("Gateway %s did not assign uid, using %s", endpoint, hs.UID)
	}
	l.conn = conn
	l.uid = hs.UID
	l.logger.Infof("Connected to %s with uid %s", endpoint, l.uid)

	l.keepAlive(conn)
	go l.read(conn)
	go l.ping(conn)
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-l.closed:
		}
	}()
	return nil
}

// UID returns the identifier assigned by the gateway.
func (l *Listener) UID() string {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.uid
}

// Subscribe starts receiving confirmations of transactions involving address.
func (l *Listener) Subscribe(address transaction.Address) error {
	return l.send(subscription{Subscribe: channelOf(address)})
}

// Unsubscribe stops receiving confirmations of transactions involving address.
func (l *Listener) Unsubscribe(address transaction.Address) error {
	return l.send(subscription{Unsubscribe: channelOf(address)})
}

func channelOf(address transaction.Address) string {
	return ChannelConfirmedAdded + "/" + address.Plain()
}

func (l *Listener) send(sub subscription) error {
	l.limiter.Take()
	l.mutex.Lock()
	defer l.mutex.Unlock()
	select {
	case <-l.closed:
		return ErrClosed
	default:
	}
	if l.conn == nil {
		return ErrNotConnected
	}
	sub.UID = l.uid
	if err := l.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return l.conn.WriteJSON(sub)
}

// Confirmations returns the stream of confirmations. It is closed with the listener.
func (l *Listener) Confirmations() <-chan Confirmation {
	return l.confirmations
}

// Err returns the error which stopped the listener.
func (l *Listener) Err() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.err
}

// Close closes the connection and the confirmation stream.
func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.closed)
		l.mutex.Lock()
		conn := l.conn
		l.mutex.Unlock()
		if conn != nil {
			err = conn.Close()
		}
	})
	return err
}

// keepAlive extends the read deadline on every ping or pong, so a quiet subscription stays open.
func (l *Listener) keepAlive(conn *websocket.Conn) {
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(l.readTimeout))
	})
	conn.SetPingHandler(func(data string) error {
		if err := conn.SetReadDeadline(time.Now().Add(l.readTimeout)); err != nil {
			return err
		}
		err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeTimeout))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})
}

// ping sends pings twice per read timeout until the listener is closed.
func (l *Listener) ping(conn *websocket.Conn) {
	ticker := time.NewTicker(l.readTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				l.logger.Debugf("Fail to send ping with %s", err)
				return
			}
		case <-l.closed:
			return
		}
	}
}

func (l *Listener) read(conn *websocket.Conn) {
	defer close(l.confirmations)
	for {
		if err := conn.SetReadDeadline(time.Now().Add(l.readTimeout)); err != nil {
			l.stop(err)
			return
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			l.stop(err)
			return
		}
		confirmation, ok, err := parseMessage(data)
		if err != nil {
			l.logger.Warningf("Fail to parse message with %s", err)
			continue
		}
		if !ok {
			continue
		}
		l.metrics.ObserveMessage(confirmation.Channel)
		select {
		case l.confirmations <- confirmation:
		case <-l.closed:
			return
		}
	}
}

func (l *Listener) stop(err error) {
	select {
	case <-l.closed:
		// closed by the owner
		return
	default:
	}
	l.logger.Errorf("Fail to read message with %s. Closing listener", err)
	l.mutex.Lock()
	l.err = err
	l.mutex.Unlock()
	l.Close()
}

// parseMessage extracts a confirmation. Messages of other channels are skipped.
func parseMessage(data []byte) (Confirmation, bool, error) {
	msg := &message{}
	if err := json.Unmarshal(data, msg); err != nil {
		return Confirmation{}, false, err
	}
	if msg.Meta == nil || msg.Meta.ChannelName != ChannelConfirmedAdded {
		return Confirmation{}, false, nil
	}
	hash, err := transaction.ParseHash(msg.Meta.Hash)
	if err != nil {
		return Confirmation{}, false, err
	}
	height, err := parseHeight(msg.Meta.Height)
	if err != nil {
		return Confirmation{}, false, err
	}
	return Confirmation{
		Hash:    hash,
		Height:  height,
		Channel: msg.Meta.ChannelName,
	}, true, nil
}

// parseHeight accepts both a decimal string and the [lower, higher] word form.
func parseHeight(raw json.RawMessage) (uint64, error) {
	if len(raw) == 0 {
		return 0, errors.New("message has no height")
	}
	if raw[0] == '[' {
		dto := codec.UInt64DTO{}
		if err := json.Unmarshal(raw, &dto); err != nil {
			return 0, err
		}
		return dto.UInt64(), nil
	}
	var height codec.UInt64Str
	if err := json.Unmarshal(raw, &height); err != nil {
		return 0, err
	}
	return uint64(height), nil
}
