package listener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var (
	testAddress = transaction.NewAddress(transaction.PublicKey{3}, transaction.MijinTest)
	testHash    = transaction.Hash{0xC0, 0xFF, 0xEE}
)

func newGateway(t *testing.T, handle func(conn *websocket.Conn)) *httptest.Server {
	upgrader := websocket.Upgrader{}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handle(conn)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func nextConfirmation(t *testing.T, l *Listener) (Confirmation, bool) {
	select {
	case confirmation, ok := <-l.Confirmations():
		return confirmation, ok
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for confirmation")
		return Confirmation{}, false
	}
}

func TestListenerConfirmations(t *testing.T) {
	received := make(chan subscription, 1)
	server := newGateway(t, func(conn *websocket.Conn) {
		if err := conn.WriteJSON(handshake{UID: "uid-1"}); err != nil {
			return
		}
		sub := subscription{}
		if err := conn.ReadJSON(&sub); err != nil {
			return
		}
		received <- sub
		messages := []string{
			`{"meta":{"channelName":"block"}}`,
			`not json`,
			`{"transaction":{},"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `","height":"42"}}`,
			`{"transaction":{},"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `","height":[7,1]}}`,
		}
		for _, msg := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		}
		drain(conn)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l := New(server.URL, log.NewSilentLogger(), WithReadTimeout(5*time.Second), WithMetrics(metrics.NewListener()))
	assert.NoError(t, l.Open(ctx))
	assert.Equal(t, "uid-1", l.UID())
	assert.ErrorIs(t, l.Open(ctx), ErrAlreadyOpened)

	assert.NoError(t, l.Subscribe(testAddress))
	sub := <-received
	assert.Equal(t, "uid-1", sub.UID)
	assert.Equal(t, "confirmedAdded/"+testAddress.Plain(), sub.Subscribe)

	confirmation, ok := nextConfirmation(t, l)
	assert.True(t, ok)
	assert.Equal(t, testHash, confirmation.Hash)
	assert.Equal(t, uint64(42), confirmation.Height)
	assert.Equal(t, ChannelConfirmedAdded, confirmation.Channel)

	confirmation, ok = nextConfirmation(t, l)
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<32|7, confirmation.Height)

	cancel()
	_, ok = nextConfirmation(t, l)
	assert.False(t, ok)
	assert.ErrorIs(t, l.Subscribe(testAddress), ErrClosed)
	assert.NoError(t, l.Err())
}

func TestListenerAssignsUID(t *testing.T) {
	server := newGateway(t, func(conn *websocket.Conn) {
		if err := conn.WriteJSON(handshake{}); err != nil {
			return
		}
		drain(conn)
	})

	l := New(server.URL, log.NewSilentLogger())
	assert.NoError(t, l.Open(context.Background()))
	defer l.Close()
	assert.Len(t, l.UID(), 26)
}

func TestListenerConnectionLost(t *testing.T) {
	server := newGateway(t, func(conn *websocket.Conn) {
		_ = conn.WriteJSON(handshake{UID: "uid-2"})
	})

	l := New(server.URL, log.NewSilentLogger())
	assert.NoError(t, l.Open(context.Background()))
	_, ok := nextConfirmation(t, l)
	assert.False(t, ok)
	assert.Error(t, l.Err())
}

func TestListenerStaysOpenWhileQuiet(t *testing.T) {
	const readTimeout = 100 * time.Millisecond
	cases := []struct {
		name        string
		serverPings bool
	}{
		{name: "pongs answer listener pings"},
		{name: "gateway pings", serverPings: true},
	}

	for _, testCase := range cases {
		serverPings := testCase.serverPings
		server := newGateway(t, func(conn *websocket.Conn) {
			if err := conn.WriteJSON(handshake{UID: "uid-3"}); err != nil {
				return
			}
			done := make(chan struct{})
			go func() {
				defer close(done)
				drain(conn)
			}()
			quiet := time.After(4 * readTimeout)
		loop:
			for {
				select {
				case <-time.After(readTimeout / 5):
					if serverPings {
						if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
							return
						}
					}
				case <-quiet:
					break loop
				case <-done:
					return
				}
			}
			msg := `{"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `","height":"3"}}`
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
			<-done
		})

		l := New(server.URL, log.NewSilentLogger(), WithReadTimeout(readTimeout))
		assert.NoError(t, l.Open(context.Background()), testCase.name)
		confirmation, ok := nextConfirmation(t, l)
		assert.True(t, ok, testCase.name)
		assert.Equal(t, uint64(3), confirmation.Height, testCase.name)
		assert.NoError(t, l.Err(), testCase.name)
		assert.NoError(t, l.Close(), testCase.name)
	}
}

func TestListenerNotConnected(t *testing.T) {
	l := New("http://127.0.0.1:1", log.NewSilentLogger())
	assert.ErrorIs(t, l.Subscribe(testAddress), ErrNotConnected)
}

func TestEndpointURL(t *testing.T) {
	cases := []struct {
		input    string
		expected string
		errStr   string
	}{
		{input: "http://localhost:3000", expected: "ws://localhost:3000/ws"},
		{input: "https://gateway.example/", expected: "wss://gateway.example/ws"},
		{input: "ws://localhost:3000/api", expected: "ws://localhost:3000/api/ws"},
		{input: "ftp://localhost", errStr: "unsupported scheme"},
	}
	for _, testCase := range cases {
		endpoint, err := endpointURL(testCase.input)
		if testCase.errStr != "" {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errStr)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, testCase.expected, endpoint)
	}
}

func TestParseMessage(t *testing.T) {
	cases := []struct {
		input  string
		ok     bool
		height uint64
		errStr string
	}{
		{input: `{"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `","height":"10"}}`, ok: true, height: 10},
		{input: `{"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `","height":[10,0]}}`, ok: true, height: 10},
		{input: `{"meta":{"channelName":"unconfirmedAdded","hash":"00"}}`},
		{input: `{"uid":"abc"}`},
		{input: `{"meta":{"channelName":"confirmedAdded","hash":"00","height":"1"}}`, errStr: "expected 32 bytes"},
		{input: `{"meta":{"channelName":"confirmedAdded","hash":"` + testHash.String() + `"}}`, errStr: "no height"},
	}
	for _, testCase := range cases {
		confirmation, ok, err := parseMessage([]byte(testCase.input))
		if testCase.errStr != "" {
			assert.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errStr)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, testCase.ok, ok)
		if ok {
			assert.Equal(t, testHash, confirmation.Hash)
			assert.Equal(t, testCase.height, confirmation.Height)
		}
	}
}
