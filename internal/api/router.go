package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/devicedetector/pkg/device"
	"github.com/dmitrymomot/devicedetector/pkg/httpserver"
	"github.com/dmitrymomot/devicedetector/pkg/logger"
)

// maxBodyBytes caps POST /classify payloads.
const maxBodyBytes = 16 << 10

// Classification is the wire form of a classified record.
type Classification struct {
	Type      device.Category `json:"type"`
	UserAgent string          `json:"user_agent"`
	Platform  string          `json:"platform"`
	Language  string          `json:"language"`
	Browser   string          `json:"browser"`
	Product   string          `json:"product"`
}

// ClassifyRequest is the body accepted by POST /classify.
type ClassifyRequest struct {
	UserAgent string `json:"user_agent"`
	Platform  string `json:"platform"`
	Language  string `json:"language"`
	Vendor    string `json:"vendor"`
}

func newClassification(d *device.Detector) Classification {
	return Classification{
		Type:      d.Type(),
		UserAgent: d.UserAgent(),
		Platform:  d.Platform(),
		Language:  d.Language(),
		Browser:   d.Browser(),
		Product:   d.Product(),
	}
}

// Router builds the service routes. Every request passes through
// device.Middleware, so handlers and logs see the caller's category.
//
//	GET  /health    liveness probe
//	GET  /device    classification of the calling client
//	POST /classify  classification of a supplied record
//	GET  /keywords  active keyword configuration
func Router(keywords device.Keywords, log *slog.Logger) chi.Router {
	keywords = keywords.Normalize()
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handlers{keywords: keywords, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(device.Middleware(keywords))
	r.Use(h.accessLog)

	r.Get("/health", httpserver.HealthCheckHandler())
	r.Get("/device", h.currentDevice)
	r.Post("/classify", h.classify)
	r.Get("/keywords", h.listKeywords)

	return r
}

type handlers struct {
	keywords device.Keywords
	log      *slog.Logger
}

func (h *handlers) currentDevice(w http.ResponseWriter, r *http.Request) {
	d, ok := device.FromContext(r.Context())
	if !ok {
		d = device.New(device.RecordFromRequest(r), h.keywords)
	}
	h.respond(w, r, http.StatusOK, JSONResponse{Data: newClassification(d)})
}

func (h *handlers) classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status, code := http.StatusBadRequest, "invalid_json"
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			status, code = http.StatusRequestEntityTooLarge, "body_too_large"
		case errors.Is(err, io.EOF):
			code = "empty_body"
		}
		h.log.DebugContext(r.Context(), "rejected classify request", logger.Error(err))
		if werr := writeError(w, status, code, err.Error()); werr != nil {
			h.log.ErrorContext(r.Context(), "write response", logger.Error(werr))
		}
		return
	}

	d := device.New(device.NewRecord(req.UserAgent, req.Platform, req.Language, req.Vendor), h.keywords)
	h.log.DebugContext(r.Context(), "classified record", device.Attr(d))
	h.respond(w, r, http.StatusOK, JSONResponse{Data: newClassification(d)})
}

func (h *handlers) listKeywords(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, JSONResponse{Data: h.keywords})
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, status int, body JSONResponse) {
	if err := writeJSON(w, status, body); err != nil {
		h.log.ErrorContext(r.Context(), "write response", logger.Error(err))
	}
}

// accessLog logs one line per request once the handler returns.
func (h *handlers) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.log.InfoContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.RequestID(middleware.GetReqID(r.Context())),
			logger.Duration(time.Since(start)),
		)
	})
}
