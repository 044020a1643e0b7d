package scenario

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClonesMainSnapshot(t *testing.T) {
	m := NewManager(nil, nil, DefaultSnapshot())

	sc, err := m.Add("  optimistic ")
	require.NoError(t, err)
	assert.Equal(t, "optimistic", sc.Name)
	assert.NotEmpty(t, sc.ID)
	assert.Equal(t, 50000.0, sc.Costs["implementation"])

	m.UpdateCosts(map[string]float64{"implementation": 1})
	state := m.State()
	assert.Equal(t, 1.0, state.Current.Costs["implementation"])
	assert.Equal(t, 50000.0, state.Scenarios[0].Costs["implementation"], "scenario must not share maps with the main snapshot")

	_, err = m.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSelectAndUpdate(t *testing.T) {
	m := NewManager(nil, nil, DefaultSnapshot())
	_, err := m.Add("a")
	require.NoError(t, err)

	require.NoError(t, m.Select(0))
	m.UpdateValues(map[string]float64{"productivity": 40})
	require.NoError(t, m.UpdateUseCase("marketing"))

	state := m.State()
	assert.Equal(t, 0, state.Active)
	assert.Equal(t, 40.0, state.Scenarios[0].Values["productivity"])
	assert.Equal(t, "marketing", state.Scenarios[0].UseCase)
	assert.Equal(t, 20.0, state.Current.Values["productivity"])
	assert.Empty(t, state.Current.UseCase)

	assert.Equal(t, 40.0, m.Current().Values["productivity"])

	assert.ErrorIs(t, m.Select(3), ErrUnknownScenario)
	assert.ErrorIs(t, m.Select(-2), ErrUnknownScenario)
	assert.Error(t, m.UpdateUseCase("legal"))

	require.NoError(t, m.Select(-1))
	assert.Equal(t, 20.0, m.Current().Values["productivity"])
}

func TestRemoveAdjustsActive(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     int
		wantActive int
		wantNames  []string
	}{
		{name: "Remove active", active: 1, remove: 1, wantActive: -1, wantNames: []string{"a", "c"}},
		{name: "Remove earlier", active: 2, remove: 0, wantActive: 1, wantNames: []string{"b", "c"}},
		{name: "Remove later", active: 0, remove: 2, wantActive: 0, wantNames: []string{"a", "b"}},
		{name: "Main stays main", active: -1, remove: 1, wantActive: -1, wantNames: []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, nil, DefaultSnapshot())
			for _, name := range []string{"a", "b", "c"} {
				_, err := m.Add(name)
				require.NoError(t, err)
			}
			require.NoError(t, m.Select(tt.active))
			require.NoError(t, m.Remove(tt.remove))

			state := m.State()
			assert.Equal(t, tt.wantActive, state.Active)
			var names []string
			for _, sc := range state.Scenarios {
				names = append(names, sc.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	m := NewManager(nil, nil, DefaultSnapshot())
	assert.ErrorIs(t, m.Remove(0), ErrUnknownScenario)
}

func TestSaveLoadReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(nil, store, DefaultSnapshot())

	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded)

	_, err = m.Add("saved")
	require.NoError(t, err)
	require.NoError(t, m.Select(0))
	m.UpdateCosts(map[string]float64{"implementation": 99})
	require.NoError(t, m.Save(ctx))

	other := NewManager(nil, store, DefaultSnapshot())
	loaded, err = other.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, m.State(), other.State())

	require.NoError(t, other.Reset(ctx))
	state := other.State()
	assert.Empty(t, state.Scenarios)
	assert.Equal(t, -1, state.Active)
	assert.Equal(t, 50000.0, state.Current.Costs["implementation"])

	_, err = store.Get(ctx, "aiValueAnalysis")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsCorruptState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "aiValueAnalysis", []byte("{not json")))

	m := NewManager(nil, store, DefaultSnapshot())
	_, err := m.Load(ctx)
	assert.Error(t, err)
}

func TestLoadClampsActive(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "aiValueAnalysis", []byte(`{"current":{"costs":{},"values":{}},"scenarios":[],"active":4}`)))

	m := NewManager(nil, store, DefaultSnapshot())
	loaded, err := m.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, -1, m.State().Active)
}

func TestSnapshotAssumptionsMissingKeys(t *testing.T) {
	costs, values := Snapshot{Costs: map[string]float64{"api": 10}}.Assumptions()
	assert.Equal(t, 10.0, costs.API)
	assert.True(t, math.IsNaN(costs.Implementation))
	assert.True(t, math.IsNaN(values.HourlyCost))
}
