// Package scenario keeps the editable working state: the main assumption set,
// named what-if scenarios cloned from it, and which of them is being edited.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/iwvelando/ai-roi-forecast/internal/catalog"
	"github.com/iwvelando/ai-roi-forecast/internal/logging"
	"github.com/iwvelando/ai-roi-forecast/internal/projection"
	"github.com/iwvelando/ai-roi-forecast/pkg/constants"
	"go.uber.org/zap"
)

var (
	// ErrEmptyName is returned when a scenario is added without a name.
	ErrEmptyName = errors.New("scenario name must not be empty")
	// ErrUnknownScenario is returned for an index that does not name a scenario.
	ErrUnknownScenario = errors.New("no scenario at index")
)

// Snapshot is one complete set of assumptions.
type Snapshot struct {
	Costs   map[string]float64 `json:"costs"`
	Values  map[string]float64 `json:"values"`
	UseCase string             `json:"selectedUseCase,omitempty"`
}

// Assumptions returns the typed form of the snapshot. Missing keys become NaN.
func (s Snapshot) Assumptions() (projection.CostAssumptions, projection.ValueAssumptions) {
	return projection.CostsFromMap(s.Costs), projection.ValuesFromMap(s.Values)
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Costs:   catalog.Merge(s.Costs, nil),
		Values:  catalog.Merge(s.Values, nil),
		UseCase: s.UseCase,
	}
}

// Scenario is a named snapshot.
type Scenario struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Snapshot
}

// State is the persisted form of a Manager. Active is the index of the
// scenario being edited, or -1 for the main snapshot.
type State struct {
	Current   Snapshot   `json:"current"`
	Scenarios []Scenario `json:"scenarios"`
	Active    int        `json:"active"`
}

func (s State) clone() State {
	out := State{Current: s.Current.clone(), Active: s.Active}
	out.Scenarios = make([]Scenario, 0, len(s.Scenarios))
	for _, sc := range s.Scenarios {
		out.Scenarios = append(out.Scenarios, Scenario{ID: sc.ID, Name: sc.Name, Snapshot: sc.Snapshot.clone()})
	}
	return out
}

// DefaultSnapshot returns the catalog defaults with no use case selected.
func DefaultSnapshot() Snapshot {
	return Snapshot{Costs: catalog.DefaultCosts(), Values: catalog.DefaultValues()}
}

// Manager guards the working state. It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	store   Store
	initial Snapshot
	state   State
}

// NewManager creates a Manager whose main snapshot starts as initial. A nil
// store keeps state in memory only.
func NewManager(logger *zap.Logger, store Store, initial Snapshot) *Manager {
	logger = logging.OrNop(logger)
	if store == nil {
		store = NewMemoryStore()
	}
	initial = initial.clone()
	return &Manager{
		logger:  logger,
		store:   store,
		initial: initial,
		state:   State{Current: initial.clone(), Scenarios: []Scenario{}, Active: constants.MainScenarioIndex},
	}
}

// State returns a copy of the working state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// Current returns a copy of the snapshot being edited.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.activeSnapshot().clone()
}

func (m *Manager) activeSnapshot() *Snapshot {
	if m.state.Active == constants.MainScenarioIndex {
		return &m.state.Current
	}
	return &m.state.Scenarios[m.state.Active].Snapshot
}

// Add clones the main snapshot into a new scenario named name.
func (m *Manager) Add(name string) (Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Scenario{}, ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sc := Scenario{ID: uuid.New().String(), Name: name, Snapshot: m.state.Current.clone()}
	m.state.Scenarios = append(m.state.Scenarios, sc)

	m.logger.Debug("scenario added",
		zap.String("op", "scenario.Add"),
		zap.String("name", name),
		zap.String("id", sc.ID),
	)
	return Scenario{ID: sc.ID, Name: sc.Name, Snapshot: sc.Snapshot.clone()}, nil
}

// Remove deletes the scenario at index. Removing the active scenario returns
// editing to the main snapshot.
func (m *Manager) Remove(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.state.Scenarios) {
		return fmt.Errorf("%w %d", ErrUnknownScenario, index)
	}
	name := m.state.Scenarios[index].Name
	m.state.Scenarios = append(m.state.Scenarios[:index], m.state.Scenarios[index+1:]...)

	switch {
	case m.state.Active == index:
		m.state.Active = constants.MainScenarioIndex
	case m.state.Active > index:
		m.state.Active--
	}

	m.logger.Debug("scenario removed",
		zap.String("op", "scenario.Remove"),
		zap.String("name", name),
		zap.Int("active", m.state.Active),
	)
	return nil
}

// Select makes the scenario at index the one being edited; -1 selects the
// main snapshot.
func (m *Manager) Select(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index != constants.MainScenarioIndex && (index < 0 || index >= len(m.state.Scenarios)) {
		return fmt.Errorf("%w %d", ErrUnknownScenario, index)
	}
	m.state.Active = index
	return nil
}

// UpdateCosts replaces the costs of the snapshot being edited.
func (m *Manager) UpdateCosts(costs map[string]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSnapshot().Costs = catalog.Merge(costs, nil)
}

// UpdateValues replaces the values of the snapshot being edited.
func (m *Manager) UpdateValues(values map[string]float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSnapshot().Values = catalog.Merge(values, nil)
}

// UpdateUseCase sets the use case of the snapshot being edited. An empty id
// clears it.
func (m *Manager) UpdateUseCase(id string) error {
	if id != "" {
		if _, err := catalog.LookupUseCase(id); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeSnapshot().UseCase = id
	return nil
}

// Save writes the working state to the store.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.RLock()
	data, err := json.Marshal(m.state)
	m.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := m.store.Set(ctx, constants.SnapshotKey, data); err != nil {
		m.logger.Error("failed to save state",
			zap.String("op", "scenario.Save"),
			zap.Error(err),
		)
		return err
	}
	m.logger.Info("state saved",
		zap.String("op", "scenario.Save"),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Load replaces the working state with the stored one. It reports false when
// nothing has been saved.
func (m *Manager) Load(ctx context.Context) (bool, error) {
	data, err := m.store.Get(ctx, constants.SnapshotKey)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		m.logger.Error("failed to decode saved state",
			zap.String("op", "scenario.Load"),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to decode saved state: %w", err)
	}
	if loaded.Scenarios == nil {
		loaded.Scenarios = []Scenario{}
	}
	if loaded.Active < constants.MainScenarioIndex || loaded.Active >= len(loaded.Scenarios) {
		loaded.Active = constants.MainScenarioIndex
	}

	m.mu.Lock()
	m.state = loaded
	m.mu.Unlock()

	m.logger.Info("state loaded",
		zap.String("op", "scenario.Load"),
		zap.Int("scenarios", len(loaded.Scenarios)),
	)
	return true, nil
}

// Reset restores the initial snapshot, drops every scenario and deletes the
// saved state.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	m.state = State{Current: m.initial.clone(), Scenarios: []Scenario{}, Active: constants.MainScenarioIndex}
	m.mu.Unlock()

	if err := m.store.Delete(ctx, constants.SnapshotKey); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
