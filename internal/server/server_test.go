package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	srv := NewServer(":0", logger, opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(body))
}

func TestEquityRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	req := Request{
		Type:  RequestEquity,
		Hero:  []string{"Ah", "Kh"},
		Board: []string{"Qh", "Jh", "Th", "2c", "2d"},
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp EquityResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, RequestEquity, resp.Type)
	require.Equal(t, 990, resp.Scenarios)
	require.Equal(t, 1.0, resp.Win)
}

func TestOutsRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	req := Request{
		Type:  RequestOuts,
		Hero:  []string{"Ah", "Kh"},
		Board: []string{"Qh", "7h", "2s"},
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp OutsResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, RequestOuts, resp.Type)
	require.Equal(t, 9, resp.TotalOuts)
	require.NotNil(t, resp.FlushDraw)
	require.Equal(t, "h", resp.FlushDraw.Suit)
}

func TestAdviceRoundTrip(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	seed := int64(1)
	req := Request{
		Type: RequestAdvice,
		Hero: []string{"As", "Ad"},
		Seed: &seed,
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp AdviceResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, "raise", resp.Action)
	require.NotEmpty(t, resp.Rationale)
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	conn := dialWS(t, ts)

	tests := []struct {
		name string
		req  Request
	}{
		{"unknown type", Request{Type: "bogus", Hero: []string{"Ah", "Kh"}}},
		{"bad card", Request{Type: RequestEquity, Hero: []string{"Ah", "Xx"}}},
		{"duplicate cards", Request{Type: RequestEquity, Hero: []string{"Ah", "Ah"}}},
	}
	for _, tc := range tests {
		require.NoError(t, conn.WriteJSON(tc.req), tc.name)
		var resp ErrorResponse
		require.NoError(t, conn.ReadJSON(&resp), tc.name)
		require.Equal(t, "error", resp.Type, tc.name)
		require.NotEmpty(t, resp.Error, tc.name)
	}
}

func TestRequestsResetIdleTimer(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	ts := newTestServer(t, WithClock(mock), WithIdleTimeout(time.Minute))
	conn := dialWS(t, ts)

	// Let the connection arm its idle timer.
	call := trap.MustWait(ctx)
	call.Release()

	// Advance just short of the timeout; the connection must still serve.
	mock.Advance(59 * time.Second).MustWait(ctx)

	req := Request{Type: RequestEquity, Hero: []string{"Ah", "Kh"}, Board: []string{"Qh", "Jh", "Th", "2c", "2d"}}
	require.NoError(t, conn.WriteJSON(req))
	var resp EquityResponse
	require.NoError(t, conn.ReadJSON(&resp))
	require.Equal(t, 990, resp.Scenarios)
}

func TestIdleConnectionClosed(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	ts := newTestServer(t, WithClock(mock), WithIdleTimeout(time.Minute))
	conn := dialWS(t, ts)

	call := trap.MustWait(ctx)
	call.Release()

	mock.Advance(time.Minute).MustWait(ctx)

	// The server closes the socket; the next read must fail.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp EquityResponse
	require.Error(t, conn.ReadJSON(&resp))
}
