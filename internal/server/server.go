package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/internal/forecast"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/internal/scenario"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"github.com/iwvelando/ai-roi-forecast/pkg/mathutil"
	"github.com/iwvelando/ai-roi-forecast/pkg/output"
	"github.com/iwvelando/ai-roi-forecast/pkg/report"
	"github.com/iwvelando/ai-roi-forecast/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	manager       *scenario.Manager
	maxUploadSize int64
	version       string
}

// NewHandler constructs the router that serves the projection API.
func NewHandler(logger *zap.Logger, manager *scenario.Manager, maxUploadSize int64, version string) *mux.Router {
	logger = logging.OrNop(logger)
	if manager == nil {
		manager = scenario.NewManager(logger, nil, scenario.DefaultSnapshot())
	}
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, manager: manager, maxUploadSize: maxUploadSize, version: trimmedVersion}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/projection", h.handleProjection).Methods(http.MethodPost)
	api.HandleFunc("/export/csv", h.handleExportCSV).Methods(http.MethodPost)
	api.HandleFunc("/report", h.handleReport).Methods(http.MethodPost)

	api.HandleFunc("/catalog/use-cases", h.handleUseCases).Methods(http.MethodGet)
	api.HandleFunc("/catalog/parameters", h.handleParameters).Methods(http.MethodGet)
	api.HandleFunc("/catalog/parameters", h.handleCustomParameter).Methods(http.MethodPost)
	api.HandleFunc("/catalog/presets", h.handlePresets).Methods(http.MethodGet)

	api.HandleFunc("/scenarios", h.handleListScenarios).Methods(http.MethodGet)
	api.HandleFunc("/scenarios", h.handleAddScenario).Methods(http.MethodPost)
	api.HandleFunc("/scenarios/{index:-?[0-9]+}", h.handleRemoveScenario).Methods(http.MethodDelete)
	api.HandleFunc("/scenarios/{index:-?[0-9]+}/select", h.handleSelectScenario).Methods(http.MethodPost)

	api.HandleFunc("/state/current", h.handleCurrent).Methods(http.MethodGet)
	api.HandleFunc("/state/current", h.handleUpdateCurrent).Methods(http.MethodPut)
	api.HandleFunc("/state/save", h.handleSave).Methods(http.MethodPost)
	api.HandleFunc("/state/load", h.handleLoad).Methods(http.MethodPost)
	api.HandleFunc("/state/reset", h.handleReset).Methods(http.MethodPost)

	api.HandleFunc("/config/export", h.handleConfigExport).Methods(http.MethodPost)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	return r
}

// Server wires the API handler with CORS, access logging, panic recovery
// and per-client rate limiting.
type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	logger     *zap.Logger
}

// New builds a Server for cfg. The manager holds the editable state.
func New(logger *zap.Logger, cfg *Config, manager *scenario.Manager, version string) *Server {
	logger = logging.OrNop(logger)

	router := NewHandler(logger, manager, cfg.UploadSizeBytes(), version)

	var limiter *RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.WindowDuration())
		router.Use(RateLimitMiddleware(logger, limiter))
	}

	var h http.Handler = router
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	h = handlers.CombinedLoggingHandler(&zapio.Writer{Log: logger.Named("access"), Level: zapcore.InfoLevel}, h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger)),
		handlers.PrintRecoveryStack(false),
	)(h)

	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      h,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// ListenAndServe serves until Shutdown is called, then returns nil.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server",
		zap.String("op", "server.ListenAndServe"),
		zap.String("address", s.httpServer.Addr),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains open connections and stops the rate limiter.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}

type projectionRequest struct {
	Name       string                 `json:"name,omitempty"`
	UseCase    string                 `json:"useCase,omitempty"`
	Preset     string                 `json:"preset,omitempty"`
	Costs      map[string]float64     `json:"costs,omitempty"`
	Values     map[string]float64     `json:"values,omitempty"`
	Years      int                    `json:"years,omitempty"`
	Parameters *projection.Parameters `json:"parameters,omitempty"`
	Title      string                 `json:"title,omitempty"`
}

// number encodes non-finite floats as null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if !mathutil.IsFinite(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

type projectionResponse struct {
	Name       string          `json:"name"`
	UseCase    string          `json:"useCase,omitempty"`
	Years      int             `json:"years"`
	Yearly     []yearlyRow     `json:"yearly"`
	Cumulative []cumulativeRow `json:"cumulative"`
	Breakdown  []breakdownRow  `json:"breakdown"`
	KPIs       kpis            `json:"kpis"`
	Warnings   []string        `json:"warnings,omitempty"`
	Duration   string          `json:"duration"`
}

type yearlyRow struct {
	Year                 int    `json:"year"`
	Cost                 number `json:"cost"`
	Value                number `json:"value"`
	NetValue             number `json:"netValue"`
	ROI                  number `json:"roi"`
	ROIText              string `json:"roiText"`
	Productivity         number `json:"productivity"`
	CostReduction        number `json:"costReduction"`
	RevenueGrowth        number `json:"revenueGrowth"`
	CustomerSatisfaction number `json:"customerSatisfaction"`
}

type cumulativeRow struct {
	Year               int    `json:"year"`
	CumulativeCost     number `json:"cumulativeCost"`
	CumulativeValue    number `json:"cumulativeValue"`
	CumulativeNetValue number `json:"cumulativeNetValue"`
	CumulativeROI      number `json:"cumulativeROI"`
	ROIText            string `json:"roiText"`
}

type breakdownRow struct {
	Name  string `json:"name"`
	Value number `json:"value"`
	Share number `json:"share"`
}

type kpis struct {
	TotalCost      number `json:"totalCost"`
	TotalValue     number `json:"totalValue"`
	NetValue       number `json:"netValue"`
	CumulativeROI  number `json:"cumulativeROI"`
	ROIText        string `json:"roiText"`
	PaybackYear    int    `json:"paybackYear,omitempty"`
	PaybackReached bool   `json:"paybackReached"`
	Payback        string `json:"payback"`
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *handler) decodeError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
}

// project runs the request against its own assumptions, or against the
// snapshot being edited when it carries none.
func (h *handler) project(req projectionRequest) (forecast.Forecast, []string, error) {
	name := req.Name
	useCase := req.UseCase
	costs, values := req.Costs, req.Values

	if costs == nil && values == nil && req.Preset == "" {
		snap := h.manager.Current()
		costs, values = snap.Costs, snap.Values
		if useCase == "" {
			useCase = snap.UseCase
		}
		if name == "" {
			state := h.manager.State()
			if state.Active != constants.MainScenarioIndex {
				name = state.Scenarios[state.Active].Name
			}
		}
	} else if req.Preset != "" {
		p, err := catalog.LookupPreset(req.Preset)
		if err != nil {
			return forecast.Forecast{}, nil, err
		}
		costs = catalog.Merge(p.Costs, costs)
		values = catalog.Merge(p.Values, values)
	}
	if name == "" {
		name = forecast.BaselineName
	}

	years := req.Years
	if years == 0 {
		years = constants.DefaultHorizon
	}

	params := projection.DefaultParameters()
	if req.Parameters != nil {
		params = params.Overlay(*req.Parameters)
	}
	engine, err := projection.NewEngine(params)
	if err != nil {
		return forecast.Forecast{}, nil, err
	}

	f, err := forecast.Project(h.logger, engine, name, useCase, costs, values, years)
	if err != nil {
		return forecast.Forecast{}, nil, err
	}
	return f, assumptionWarnings(costs, values), nil
}

func assumptionWarnings(costs, values map[string]float64) []string {
	var warnings []string
	if err := validation.ValidateAssumptions(costs, values); err != nil {
		warnings = append(warnings, strings.Split(err.Error(), "\n")...)
	}
	for _, m := range []map[string]float64{costs, values} {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if w := catalog.CheckRange(k, m[k]); w != "" {
				warnings = append(warnings, w)
			}
		}
	}
	return warnings
}

func (h *handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProjection"
	start := time.Now()

	var req projectionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.decodeError(w, err, op)
		return
	}

	f, warnings, err := h.project(req)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	response := buildProjectionResponse(f, warnings, elapsed)

	h.logger.Info("projection computed",
		zap.String("op", op),
		zap.String("name", f.Name),
		zap.Int("years", response.Years),
		zap.Duration("duration", elapsed),
	)
	h.writeJSON(w, http.StatusOK, response)
}

func buildProjectionResponse(f forecast.Forecast, warnings []string, elapsed time.Duration) projectionResponse {
	response := projectionResponse{
		Name:       f.Name,
		UseCase:    f.UseCase,
		Years:      len(f.Yearly),
		Yearly:     make([]yearlyRow, 0, len(f.Yearly)),
		Cumulative: make([]cumulativeRow, 0, len(f.Cumulative)),
		Breakdown:  make([]breakdownRow, 0, len(f.Breakdown)),
		Warnings:   warnings,
		Duration:   elapsed.String(),
	}

	for _, y := range f.Yearly {
		response.Yearly = append(response.Yearly, yearlyRow{
			Year:                 y.Year,
			Cost:                 number(y.Cost),
			Value:                number(y.Value),
			NetValue:             number(y.NetValue),
			ROI:                  number(y.ROI),
			ROIText:              output.FormatROI(y.ROI),
			Productivity:         number(y.Breakdown.Productivity),
			CostReduction:        number(y.Breakdown.CostReduction),
			RevenueGrowth:        number(y.Breakdown.RevenueGrowth),
			CustomerSatisfaction: number(y.Breakdown.CustomerSatisfaction),
		})
	}
	for _, c := range f.Cumulative {
		response.Cumulative = append(response.Cumulative, cumulativeRow{
			Year:               c.Year,
			CumulativeCost:     number(c.CumulativeCost),
			CumulativeValue:    number(c.CumulativeValue),
			CumulativeNetValue: number(c.CumulativeNetValue),
			CumulativeROI:      number(c.CumulativeROI),
			ROIText:            output.FormatROI(c.CumulativeROI),
		})
	}

	total := f.BreakdownTotal()
	for _, e := range f.Breakdown {
		response.Breakdown = append(response.Breakdown, breakdownRow{
			Name:  string(e.Name),
			Value: number(e.Value),
			Share: number(mathutil.CalculatePercentage(e.Value, total)),
		})
	}

	final := f.Final()
	response.KPIs = kpis{
		TotalCost:      number(final.CumulativeCost),
		TotalValue:     number(final.CumulativeValue),
		NetValue:       number(final.CumulativeNetValue),
		CumulativeROI:  number(f.CumulativeROI),
		ROIText:        output.FormatROI(f.CumulativeROI),
		PaybackYear:    f.Payback.Year,
		PaybackReached: f.Payback.Reached,
		Payback:        f.Payback.String(),
	}
	return response
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExportCSV"

	var req projectionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.decodeError(w, err, op)
		return
	}
	f, _, err := h.project(req)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.ExportFileName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, output.CsvString(f.Yearly)); err != nil {
		h.logger.Error("failed to write CSV response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"

	format := r.URL.Query().Get("format")
	if format == "" {
		format = constants.OutputFormatHTML
	}
	if format != constants.OutputFormatHTML && format != constants.OutputFormatMarkdown {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("expected report format of %s or %s, got %s", constants.OutputFormatHTML, constants.OutputFormatMarkdown, format), op)
		return
	}

	var req projectionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.decodeError(w, err, op)
		return
	}
	f, _, err := h.project(req)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	doc := report.Report{Title: req.Title, Forecast: f, GeneratedAt: time.Now()}
	var body, contentType string
	if format == constants.OutputFormatMarkdown {
		body, contentType = report.Markdown(doc), "text/markdown; charset=utf-8"
	} else {
		body, err = report.HTML(doc)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
			return
		}
		contentType = "text/html; charset=utf-8"
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		h.logger.Error("failed to write report response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) handleUseCases(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, catalog.UseCases())
}

func (h *handler) handleParameters(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]catalog.Parameter{
		"costs":  catalog.CostParameters(),
		"values": catalog.ValueParameters(),
	})
}

func (h *handler) handleCustomParameter(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCustomParameter"

	var p catalog.Parameter
	if err := h.decode(w, r, &p); err != nil {
		h.decodeError(w, err, op)
		return
	}
	p, err := catalog.NewCustomParameter(p)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, catalog.Presets())
}

func (h *handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.manager.State())
}

func (h *handler) handleAddScenario(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAddScenario"

	var req struct {
		Name string `json:"name"`
	}
	if err := h.decode(w, r, &req); err != nil {
		h.decodeError(w, err, op)
		return
	}
	sc, err := h.manager.Add(req.Name)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusCreated, sc)
}

func scenarioIndex(r *http.Request) int {
	// The route pattern only admits integers.
	index, _ := strconv.Atoi(mux.Vars(r)["index"])
	return index
}

func (h *handler) handleRemoveScenario(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRemoveScenario"
	if err := h.manager.Remove(scenarioIndex(r)); err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusOK, h.manager.State())
}

func (h *handler) handleSelectScenario(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSelectScenario"
	if err := h.manager.Select(scenarioIndex(r)); err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusOK, h.manager.State())
}

func (h *handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.manager.Current())
}

func (h *handler) handleUpdateCurrent(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleUpdateCurrent"

	var req struct {
		Costs   map[string]float64 `json:"costs"`
		Values  map[string]float64 `json:"values"`
		UseCase *string            `json:"useCase"`
	}
	if err := h.decode(w, r, &req); err != nil {
		h.decodeError(w, err, op)
		return
	}
	if req.UseCase != nil {
		if err := h.manager.UpdateUseCase(*req.UseCase); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
	}
	if req.Costs != nil {
		h.manager.UpdateCosts(req.Costs)
	}
	if req.Values != nil {
		h.manager.UpdateValues(req.Values)
	}
	h.writeJSON(w, http.StatusOK, h.manager.Current())
}

func (h *handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Save(r.Context()); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to save state: %v", err), "server.handleSave")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.manager.Load(r.Context())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to load state: %v", err), "server.handleLoad")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"loaded": loaded,
		"state":  h.manager.State(),
	})
}

func (h *handler) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Reset(r.Context()); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to reset state: %v", err), "server.handleReset")
		return
	}
	h.writeJSON(w, http.StatusOK, h.manager.State())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"

	var payload map[string]interface{}
	if err := h.decode(w, r, &payload); err != nil {
		h.decodeError(w, err, op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// configKeyOrder is the order top-level keys take in exported YAML; any
// other keys follow alphabetically.
var configKeyOrder = []string{"logging", "output", "horizon", "useCase", "preset", "costs", "values", "parameters", "scenarios", "store"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range configKeyOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("projection request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
