package server

import (
	"log"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/hmtran/pqgo/internal/calculation"
	"github.com/hmtran/pqgo/internal/config"
	"github.com/hmtran/pqgo/internal/domain"
	"github.com/hmtran/pqgo/pkg/dateutil"
)

// Server exposes the premium engine over HTTP. The rate table inside
// the engine is built once before the server starts and shared
// read-only across requests, so handlers need no locking.
type Server struct {
	engine *calculation.Engine
}

// New creates a server around an already constructed engine.
func New(engine *calculation.Engine) *Server {
	return &Server{engine: engine}
}

// QuoteResponse is the wire shape of a served quote: the computed
// household quote plus a reference ID for support follow-up.
type QuoteResponse struct {
	QuoteID string `json:"quote_id"`
	domain.HouseholdQuote
}

// ErrorResponse is the wire shape of a request failure.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Handler routes all requests. Registered paths:
//
//	POST /api/v1/quote  compute a household quote
//	GET  /healthz       liveness probe
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/v1/quote":
		s.handleQuote(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleQuote(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req config.QuoteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Household) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "household must contain at least one person")
		return
	}

	// Reference date defaults to today; the engine itself never reads
	// the clock.
	refDate := dateutil.FromTime(time.Now())
	if req.ReferenceDate != "" {
		parsed := dateutil.Parse(req.ReferenceDate)
		if parsed == nil {
			writeError(ctx, fasthttp.StatusBadRequest, "reference_date must be a valid DD/MM/YYYY date")
			return
		}
		refDate = *parsed
	}

	quote, err := s.engine.ComputeHousehold(req.Household, refDate)
	if err != nil {
		// Only a corrupt dataset cell lands here; the request was fine.
		log.Printf("quote computation failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "rate dataset error")
		return
	}

	resp := QuoteResponse{
		QuoteID:        uuid.NewString(),
		HouseholdQuote: *quote,
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, s.Handler)
}
