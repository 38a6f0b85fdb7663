package endpoint

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/healthops/group"
	"github.com/jonwraymond/healthops/health"
)

// HandlerConfig configures the health endpoint handler.
type HandlerConfig struct {
	// PathPrefix is where the primary group is served; named groups are
	// served below it. Default: "/health"
	PathPrefix string

	// Authorizer decides when-authorized visibility. Default: DenyAll
	Authorizer Authorizer

	// TracerProvider supplies the tracer for evaluation spans.
	// Default: the OpenTelemetry global provider.
	TracerProvider trace.TracerProvider

	// MeterProvider supplies the meter for evaluation metrics.
	// Default: the OpenTelemetry global provider.
	MeterProvider metric.MeterProvider
}

// Handler serves grouped health checks over HTTP.
//
// A Handler is immutable after construction and safe for concurrent use.
type Handler struct {
	registry    *health.Registry
	groups      *group.Groups
	config      HandlerConfig
	tracer      trace.Tracer
	instruments *instruments
}

// NewHandler creates a handler serving the given contributors through the
// given groups. Contributor names are validated against group names here:
// a collision would make "/health/{name}" ambiguous, so it fails
// construction.
func NewHandler(registry *health.Registry, groups *group.Groups, config ...HandlerConfig) (*Handler, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if groups == nil {
		return nil, ErrNilGroups
	}
	if err := registry.ValidateGroupNames(groups.Names()); err != nil {
		return nil, err
	}

	cfg := HandlerConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = "/health"
	}
	cfg.PathPrefix = strings.TrimSuffix(cfg.PathPrefix, "/")
	if cfg.Authorizer == nil {
		cfg.Authorizer = DenyAll()
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if cfg.MeterProvider == nil {
		cfg.MeterProvider = otel.GetMeterProvider()
	}

	instruments, err := newInstruments(cfg.MeterProvider.Meter("healthops/endpoint"))
	if err != nil {
		return nil, err
	}

	return &Handler{
		registry:    registry,
		groups:      groups,
		config:      cfg,
		tracer:      cfg.TracerProvider.Tracer("healthops/endpoint"),
		instruments: instruments,
	}, nil
}

// RegisterHandlers mounts the primary group at the path prefix and named
// groups below it.
func (h *Handler) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc(h.config.PathPrefix, h.handlePrimary)
	mux.HandleFunc(h.config.PathPrefix+"/{group}", h.handleNamed)
}

// RegisterServerHandlers mounts every group with a server-namespace
// additional path, e.g. Kubernetes probe paths on the main port.
func (h *Handler) RegisterServerHandlers(mux *http.ServeMux) {
	h.registerNamespace(mux, group.NamespaceServer)
}

// RegisterManagementHandlers mounts every group with a
// management-namespace additional path.
func (h *Handler) RegisterManagementHandlers(mux *http.ServeMux) {
	h.registerNamespace(mux, group.NamespaceManagement)
}

func (h *Handler) registerNamespace(mux *http.ServeMux, namespace group.Namespace) {
	for _, grp := range h.groups.AllWithNamespace(namespace) {
		path := grp.AdditionalPath()
		mux.HandleFunc(path.Value, func(w http.ResponseWriter, r *http.Request) {
			h.serveGroup(w, r, h.groupName(grp), grp)
		})
	}
}

// handlePrimary serves the primary group.
func (h *Handler) handlePrimary(w http.ResponseWriter, r *http.Request) {
	h.serveGroup(w, r, "primary", h.groups.Primary())
}

// handleNamed serves a named group, or 404 for an unknown name.
func (h *Handler) handleNamed(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("group")
	grp := h.groups.Get(name)
	if grp == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "health group not found: " + name,
		})
		return
	}
	h.serveGroup(w, r, name, grp)
}

// serveGroup evaluates one group and writes the response.
func (h *Handler) serveGroup(w http.ResponseWriter, r *http.Request, name string, grp group.Group) {
	ctx, span := h.tracer.Start(r.Context(), "health.eval."+name,
		trace.WithAttributes(attribute.String("health.group", name)),
	)
	defer span.End()

	start := time.Now()
	results := h.registry.CheckMatching(ctx, grp.IsMember)

	// Registration order keeps aggregation tie-breaks deterministic.
	statuses := make([]health.Status, 0, len(results))
	for _, contributor := range h.registry.Names() {
		if result, ok := results[contributor]; ok {
			statuses = append(statuses, result.Status)
		}
	}

	overall := grp.StatusAggregator().AggregateStatus(statuses...)
	duration := time.Since(start)

	span.SetAttributes(attribute.String("health.status", overall.Code))
	h.instruments.recordEvaluation(ctx, name, overall, duration)

	authorized := h.config.Authorizer.Authorized(r)
	response := buildResponse(overall, results, grp, authorized)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(grp.HTTPCodeStatusMapper().StatusCode(overall))
	_ = json.NewEncoder(w).Encode(response)
}

// groupName resolves a group's name for telemetry; additional-path routes
// hand us the group without its name.
func (h *Handler) groupName(grp group.Group) string {
	if grp == h.groups.Primary() {
		return "primary"
	}
	for _, name := range h.groups.Names() {
		if h.groups.Get(name) == grp {
			return name
		}
	}
	return "unknown"
}
