package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/canvas"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/logging"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/replay"
	"github.com/katalvlaran/algoviz/step"
)

const (
	urlAlgorithms = "/algorithms"

	// Route labels for metrics.
	routeMenu    = "menu"
	routeSteps   = "steps"
	routePage    = "page"
	routeSVG     = "svg"
	routeState   = "state"
	routeMetrics = "metrics"

	headerRequestID = "X-Request-Id"
)

// Option configures a Handler.
type Option func(*Handler)

// WithDelay sets the auto-advance interval of ?play=1 pages.
func WithDelay(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.delay = d
		}
	}
}

// WithLogger sets the logger; nil discards.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Handler) { h.logger = logging.OrDiscard(l) }
}

// Handler is the HTTP viewer. It implements http.Handler.
type Handler struct {
	registry *algorithms.Registry
	graph    *core.Graph
	start    string
	delay    time.Duration
	router   *httprouter.Router
	logger   logrus.FieldLogger

	mu         sync.Mutex
	recordings map[string]*recording
}

// recording is one algorithm recorded on the handler's graph.
type recording struct {
	mu     sync.Mutex
	engine *replay.Engine
	svg    *canvas.SVG
}

// NewHandler builds the router for g, starting every algorithm at start.
func NewHandler(reg *algorithms.Registry, g *core.Graph, start string, opts ...Option) *Handler {
	h := &Handler{
		registry:   reg,
		graph:      g,
		start:      start,
		delay:      time.Second,
		logger:     logging.Discard(),
		recordings: make(map[string]*recording),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.WithField("module", "web")

	router := httprouter.New()
	router.GET("/", h.middleware(routeMenu, h.menu))
	router.GET(urlAlgorithms+"/:name/steps", h.middleware(routeSteps, h.steps))
	router.GET(urlAlgorithms+"/:name/steps/:index", h.middleware(routePage, h.page))
	router.GET(urlAlgorithms+"/:name/steps/:index/svg", h.middleware(routeSVG, h.svg))
	router.GET(urlAlgorithms+"/:name/steps/:index/state", h.middleware(routeState, h.state))
	metricsHandler := promhttp.Handler()
	router.GET("/metrics", h.middleware(routeMetrics, func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		metricsHandler.ServeHTTP(w, r)
	}))
	h.router = router

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
// ready, when non-nil, receives the bound address once listening.
func (h *Handler) Serve(ctx context.Context, addr string, ready func(net.Addr)) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	server := &http.Server{
		ReadHeaderTimeout: 2 * time.Second,
		Handler:           h,
	}
	if ready != nil {
		ready(listener.Addr())
	}
	h.logger.Infof("serving on http://%s", listener.Addr())

	errc := make(chan error, 1)
	go func() { errc <- server.Serve(listener) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// recordingFor records name on first use.
func (h *Handler) recordingFor(name string) (*recording, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rec, ok := h.recordings[name]; ok {
		return rec, nil
	}
	strategy, seq, err := h.registry.Run(name, h.graph, h.start)
	if err != nil {
		return nil, err
	}
	svg := canvas.NewSVG()
	rec := &recording{
		svg: svg,
		engine: replay.NewEngine(h.graph, strategy.Rules(), seq,
			replay.WithDrawer(svg),
			replay.WithLogger(h.logger),
			replay.WithName(name),
		),
	}
	h.recordings[name] = rec

	return rec, nil
}

// frame renders step index and returns its markup.
func (rec *recording) frame(index int) ([]byte, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if err := rec.engine.Render(index); err != nil {
		return nil, err
	}

	return rec.svg.Bytes(), nil
}

// GET /
func (h *Handler) menu(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.responseHTML(w, r, http.StatusOK, menuTemplate, struct {
		Names []string
		Start string
	}{Names: h.registry.Names(), Start: h.start})
}

type stepsResponse struct {
	Name  string      `json:"name"`
	Start string      `json:"start"`
	Len   int         `json:"len"`
	Steps []step.Step `json:"steps"`
}

// GET /algorithms/:name/steps
func (h *Handler) steps(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	rec, ok := h.lookupJSON(w, r, params)
	if !ok {
		return
	}
	seq := rec.engine.Sequence()
	h.responseJSON(w, r, http.StatusOK, stepsResponse{
		Name:  params.ByName("name"),
		Start: h.start,
		Len:   seq.Len(),
		Steps: seq.Slice(),
	})
}

// GET /algorithms/:name/steps/:index/state
func (h *Handler) state(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	rec, ok := h.lookupJSON(w, r, params)
	if !ok {
		return
	}
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("bad index: %w", err))
		return
	}
	vs, err := rec.engine.State(index)
	if err != nil {
		h.responseJSON(w, r, statusOf(err), err)
		return
	}
	h.responseJSON(w, r, http.StatusOK, vs)
}

// GET /algorithms/:name/steps/:index/svg
func (h *Handler) svg(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	rec, ok := h.lookupJSON(w, r, params)
	if !ok {
		return
	}
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("bad index: %w", err))
		return
	}
	b, err := rec.frame(index)
	if err != nil {
		h.responseJSON(w, r, statusOf(err), err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// lookupJSON resolves :name for the JSON routes, answering the error itself.
func (h *Handler) lookupJSON(w http.ResponseWriter, r *http.Request, params httprouter.Params) (*recording, bool) {
	rec, err := h.recordingFor(params.ByName("name"))
	if err != nil {
		h.responseJSON(w, r, statusOf(err), err)
		return nil, false
	}

	return rec, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, algorithms.ErrUnknownStrategy), errors.Is(err, replay.ErrIndexOutOfRange):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) responseJSON(w http.ResponseWriter, r *http.Request, code int, v ...any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var data []byte
	if len(v) == 0 || v[0] == nil {
		data, _ = json.Marshal(struct{}{})
	} else if err, ok := v[0].(error); ok {
		h.logger.Errorf("%v %v: %v", r.Method, r.RequestURI, err)
		data, _ = json.Marshal(map[string]any{
			"error": err.Error(),
		})
	} else {
		data, _ = json.Marshal(v[0])
	}
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func (h *Handler) responseHTML(w http.ResponseWriter, r *http.Request, code int, t *template.Template, data any) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		h.logger.Errorf("%v %v: %v", r.Method, r.RequestURI, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// statusWriter remembers the response code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (s *statusWriter) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *Handler) middleware(route string, handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(headerRequestID, id)

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		began := time.Now()
		handler(sw, r, params)

		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(sw.code)).Inc()
		h.logger.WithFields(logrus.Fields{
			"request_id": id,
			"route":      route,
			"code":       sw.code,
			"elapsed":    time.Since(began),
		}).Debugf("%s %s", r.Method, r.RequestURI)
	}
}
