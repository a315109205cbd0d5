package sift_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "sift.db")
	st, err := store.NewStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestEngine_PersistsAcrossSessionsViaSQLite(t *testing.T) {
	st := newTestStore(t)

	first := sift.NewEngine(sift.WithStorage(st))
	first.Set(sift.Parse("walk kind:method state:cycle file:internal/** refs:>3"))

	// A second session over the same database restores the durable
	// subset only.
	second := sift.NewEngine(sift.WithStorage(st))
	spec := second.Spec()
	assert.Equal(t, "walk", spec.Search)
	assert.Equal(t, "method", spec.Kind)
	assert.Equal(t, "cycle", spec.State)
	assert.Equal(t, "internal/**", spec.File)
	assert.Nil(t, spec.MinRefs, "numeric refinements are session-only")
}

func TestPresetStore_OverSQLite(t *testing.T) {
	st := newTestStore(t)
	ps := sift.NewPresetStore(st)

	added := ps.Add("X", "kind:function")

	reopened := sift.NewPresetStore(st)
	got, ok := reopened.Get("X")
	require.True(t, ok)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "kind:function", got.Query)

	reopened.Remove(added.ID)
	_, ok = reopened.Get("X")
	assert.False(t, ok)
	// Built-ins were materialized by the first Add and survive.
	assert.Len(t, reopened.Load(), 4)
}

func TestFilterPipeline_EndToEnd(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.ReplaceSymbols([]*store.Symbol{
		{Name: "main", Path: "cmd/app/main.go", Kind: "function", Entry: true},
		{Name: "forgotten", Path: "internal/old/misc.go", Kind: "function", Dead: true},
		{Name: "Walker", Path: "internal/trace/walk.go", Kind: "struct", RefCount: 7, InCycle: true},
	}))

	syms, err := st.Symbols()
	require.NoError(t, err)
	records := make([]sift.Record, len(syms))
	for i, s := range syms {
		records[i] = sift.Record{
			Name: s.Name, Path: s.Path, Kind: s.Kind,
			Refs: s.RefCount, Callers: s.CallerCount, Callees: s.CalleeCount,
			Dead: s.Dead, InCycle: s.InCycle, Entry: s.Entry,
		}
	}

	engine := sift.NewEngine(sift.WithStorage(st))
	var visible []sift.Record
	engine.Subscribe(func(spec sift.FilterSpec) {
		visible = sift.FilterRecords(records, spec)
	})

	engine.Set(sift.Parse("state:dead"))
	// main has zero refs, so the composite dead rule includes it.
	require.Len(t, visible, 2)

	engine.Set(sift.Parse("file:internal/** state:cycle"))
	require.Len(t, visible, 1)
	assert.Equal(t, "Walker", visible[0].Name)

	engine.Reset()
	assert.Len(t, visible, 3)
}
