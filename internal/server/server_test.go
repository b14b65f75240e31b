package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/MSathish01/VoiceBill/internal/formalize"
	"github.com/MSathish01/VoiceBill/internal/lexicon"
	"github.com/MSathish01/VoiceBill/internal/parse"
	"github.com/MSathish01/VoiceBill/internal/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	tables := lexicon.Default()
	f := formalize.New(tables)
	srv := server.New(parse.New(tables, f), f, nil)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func dialSession(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.Dial(ctx, ts.URL+"/v1/session", nil)
	if err != nil {
		t.Fatalf("dial session: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func roundTrip(t *testing.T, ctx context.Context, conn *websocket.Conn, req server.Request) server.Response {
	t.Helper()
	if err := wsjson.Write(ctx, conn, req); err != nil {
		t.Fatalf("write %+v: %v", req, err)
	}
	var resp server.Response
	if err := wsjson.Read(ctx, conn, &resp); err != nil {
		t.Fatalf("read response to %+v: %v", req, err)
	}
	return resp
}

func TestSession_Ping(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialSession(t, ctx, newTestServer(t))
	resp := roundTrip(t, ctx, conn, server.Request{Type: "ping"})
	if resp.Type != "pong" {
		t.Errorf("Type = %q, want pong", resp.Type)
	}
}

func TestSession_TranscriptParsesAndCommits(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialSession(t, ctx, newTestServer(t))
	resp := roundTrip(t, ctx, conn, server.Request{
		Type:       "transcript",
		Transcript: "tomato 2 kg 50 rupees",
	})

	if resp.Type != "items" {
		t.Fatalf("Type = %q, want items", resp.Type)
	}
	if len(resp.Items) != 1 || resp.Items[0].Name != "Tomato" {
		t.Fatalf("Items = %+v, want one Tomato item", resp.Items)
	}
	if len(resp.Committed) != 1 {
		t.Fatalf("Committed = %+v, want the completed item", resp.Committed)
	}

	// A grown transcript re-emits the first item; only the new one commits.
	resp = roundTrip(t, ctx, conn, server.Request{
		Type:       "transcript",
		Transcript: "tomato 2 kg 50 rupees onion 1 kg 20 rupees",
	})
	if len(resp.Items) != 2 {
		t.Fatalf("Items = %+v, want two", resp.Items)
	}
	if len(resp.Committed) != 1 || resp.Committed[0].Name != "Onion" {
		t.Errorf("Committed = %+v, want only Onion", resp.Committed)
	}
}

func TestSession_ResetClearsCommitted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialSession(t, ctx, newTestServer(t))
	transcript := server.Request{Type: "transcript", Transcript: "tomato 2 kg 50 rupees"}

	if resp := roundTrip(t, ctx, conn, transcript); len(resp.Committed) != 1 {
		t.Fatalf("first commit = %+v, want one item", resp.Committed)
	}
	if resp := roundTrip(t, ctx, conn, server.Request{Type: "reset"}); resp.Type != "reset" {
		t.Fatalf("reset response = %+v", resp)
	}
	if resp := roundTrip(t, ctx, conn, transcript); len(resp.Committed) != 1 {
		t.Errorf("post-reset commit = %+v, want the item committed again", resp.Committed)
	}
}

func TestSession_Formalize(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialSession(t, ctx, newTestServer(t))
	resp := roundTrip(t, ctx, conn, server.Request{Type: "formalize", Text: "ரெண்டு கிலோ தக்காலி"})
	if resp.Type != "formalized" {
		t.Fatalf("Type = %q, want formalized", resp.Type)
	}
	if resp.Text != "இரண்டு கிலோ தக்காளி" {
		t.Errorf("Text = %q, want %q", resp.Text, "இரண்டு கிலோ தக்காளி")
	}
}

func TestSession_UnknownType(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialSession(t, ctx, newTestServer(t))
	resp := roundTrip(t, ctx, conn, server.Request{Type: "bogus"})
	if resp.Type != "error" || resp.Error == "" {
		t.Errorf("response = %+v, want an error", resp)
	}
}

func TestRoutes_Healthz(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRoutes_Metrics(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
