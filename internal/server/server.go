// Package server exposes the parsing engine over a websocket session
// endpoint plus the usual operational HTTP surface (health, metrics).
//
// A client opens /v1/session and sends the full transcript-so-far on every
// recognizer update; the server answers each message with the ordered item
// list for exactly that transcript. The final list element is the live,
// possibly incomplete item; clients must check field presence on it. The
// server also auto-commits completed items through a per-connection
// [session.Tracker] and reports the newly committed ones, so clients never
// insert the same spoken line twice.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MSathish01/VoiceBill/internal/formalize"
	"github.com/MSathish01/VoiceBill/internal/health"
	"github.com/MSathish01/VoiceBill/internal/observe"
	"github.com/MSathish01/VoiceBill/internal/parse"
	"github.com/MSathish01/VoiceBill/internal/session"
)

// Request is a client→server session message.
type Request struct {
	// Type is one of "transcript", "formalize", "reset" or "ping".
	Type string `json:"type"`

	// Transcript is the full transcript-so-far for "transcript" messages.
	Transcript string `json:"transcript,omitempty"`

	// Text is the input for "formalize" messages.
	Text string `json:"text,omitempty"`
}

// Response is a server→client session message.
type Response struct {
	// Type mirrors the request type: "items", "formalized", "reset",
	// "pong" or "error".
	Type string `json:"type"`

	// Items is the full ordered parse result for the transcript. The last
	// element, when present, is the live item.
	Items []parse.Item `json:"items,omitempty"`

	// Committed lists the items newly auto-committed by this update.
	Committed []parse.Item `json:"committed,omitempty"`

	// Text carries the result of a "formalize" request.
	Text string `json:"text,omitempty"`

	// Error describes a rejected request.
	Error string `json:"error,omitempty"`
}

// Server routes websocket sessions to the parsing engine. It is safe for
// concurrent use; all per-session state lives on the connection handler.
type Server struct {
	parser     *parse.Parser
	formalizer *formalize.Formalizer
	metrics    *observe.Metrics
	health     *health.Handler
}

// New assembles a Server. metrics may be nil, in which case nothing is
// recorded.
func New(parser *parse.Parser, formalizer *formalize.Formalizer, metrics *observe.Metrics) *Server {
	return &Server{
		parser:     parser,
		formalizer: formalizer,
		metrics:    metrics,
		health: health.New(health.Checker{
			Name: "parser",
			Check: func(context.Context) error {
				if parser == nil {
					return errors.New("parser not initialised")
				}
				return nil
			},
		}),
	}
}

// Routes returns the full HTTP handler: the session websocket, health
// probes, and the Prometheus scrape endpoint.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	s.health.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/session", s.handleSession)
	return mux
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("session: websocket accept failed", "err", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "session ended unexpectedly")

	ctx := r.Context()
	tracker := session.NewTracker()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Add(ctx, 1)
		defer s.metrics.ActiveSessions.Add(ctx, -1)
	}
	slog.Info("session: opened", "remote", r.RemoteAddr)

	for {
		var req Request
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				conn.Close(websocket.StatusNormalClosure, "")
			} else if !errors.Is(err, context.Canceled) {
				slog.Warn("session: read failed", "err", err)
			}
			slog.Info("session: closed", "remote", r.RemoteAddr, "committed", tracker.Len())
			return
		}

		var resp Response
		switch req.Type {
		case "transcript":
			resp = s.handleTranscript(ctx, tracker, req.Transcript)
		case "formalize":
			resp = s.handleFormalize(ctx, req.Text)
		case "reset":
			tracker.Reset()
			resp = Response{Type: "reset"}
		case "ping":
			resp = Response{Type: "pong"}
		default:
			resp = Response{Type: "error", Error: "unknown message type"}
		}

		if err := wsjson.Write(ctx, conn, resp); err != nil {
			slog.Warn("session: write failed", "err", err)
			return
		}
	}
}

func (s *Server) handleTranscript(ctx context.Context, tracker *session.Tracker, transcript string) Response {
	start := time.Now()
	items := s.parser.ParseContinuousInput(transcript)
	committed := tracker.CommitCompleted(items)

	if s.metrics != nil {
		s.metrics.ParseDuration.Record(ctx, time.Since(start).Seconds())
		for _, it := range items {
			kind := "partial"
			if it.Complete() {
				kind = "complete"
			}
			s.metrics.SegmentsParsed.Add(ctx, 1,
				metric.WithAttributes(attribute.String("kind", kind)))
		}
		if len(committed) > 0 {
			s.metrics.ItemsCommitted.Add(ctx, int64(len(committed)))
		}
	}

	return Response{Type: "items", Items: items, Committed: committed}
}

func (s *Server) handleFormalize(ctx context.Context, text string) Response {
	res := s.formalizer.FormalizeDetailed(text)

	if s.metrics != nil {
		for _, c := range res.Corrections {
			s.metrics.CorrectionsApplied.Add(ctx, 1,
				metric.WithAttributes(attribute.String("kind", string(c.Kind))))
		}
	}

	return Response{Type: "formalized", Text: res.Text}
}
