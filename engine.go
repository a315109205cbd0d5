package sift

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Storage is the durable key/value backend for filter state and presets.
// Implementations are best-effort: a failing Storage never blocks an
// in-memory state change. internal/store provides the SQLite
// implementation.
type Storage interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the value for key, overwriting any previous value.
	Set(key, value string) error
}

// filterStateKey is the storage key for the persisted filter subset.
const filterStateKey = "sift.filters"

// persistedFilters is the durable subset of FilterSpec. The numeric and
// boolean refinements are session-only and not restored across restarts.
type persistedFilters struct {
	Search string `json:"search"`
	Kind   string `json:"kind"`
	State  string `json:"state"`
	File   string `json:"file"`
}

// Engine owns the live FilterSpec and an ordered subscriber list. One
// Engine is constructed per session or view and passed by reference to
// its consumers; there is no package-level shared state. All methods are
// safe for concurrent use, though the intended model is a single UI
// goroutine.
type Engine struct {
	mu      sync.Mutex
	spec    FilterSpec
	subs    []subscription
	nextID  int
	storage Storage
	log     *logrus.Logger
}

type subscription struct {
	id int
	fn func(FilterSpec)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStorage attaches a durable backend. The persisted filter subset is
// loaded immediately and mirrored back on every update.
func WithStorage(s Storage) EngineOption {
	return func(e *Engine) { e.storage = s }
}

// WithLogger overrides the logger used for best-effort storage failures.
func WithLogger(log *logrus.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates an Engine at the default spec, then merges any
// persisted filter subset. Absent or corrupt storage is treated as "no
// persisted value", never an error.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{spec: DefaultSpec()}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logrus.New()
		e.log.SetLevel(logrus.WarnLevel)
	}
	e.loadPersisted()
	return e
}

// loadPersisted merges the durable subset from storage into the current
// spec.
func (e *Engine) loadPersisted() {
	if e.storage == nil {
		return
	}
	raw, ok, err := e.storage.Get(filterStateKey)
	if err != nil {
		e.log.WithError(err).Warn("loading persisted filters")
		return
	}
	if !ok {
		return
	}
	var p persistedFilters
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		e.log.WithError(err).Warn("decoding persisted filters")
		return
	}
	e.spec.Search = p.Search
	if ValidKind(p.Kind) {
		e.spec.Kind = p.Kind
	}
	if ValidState(p.State) {
		e.spec.State = p.State
	}
	e.spec.File = p.File
}

// Spec returns a snapshot of the current spec.
func (e *Engine) Spec() FilterSpec {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.spec.Clone()
}

// Set replaces the whole spec, persists the durable subset, and notifies
// subscribers. This is the path a parsed query takes.
func (e *Engine) Set(spec FilterSpec) {
	e.mu.Lock()
	e.spec = spec.Clone()
	e.mu.Unlock()
	e.persist()
	e.notify()
}

// Field mutates one or more FilterSpec fields during Engine.Update.
type Field func(*FilterSpec)

// Search sets the free-text fragment.
func Search(s string) Field { return func(f *FilterSpec) { f.Search = s } }

// Kind sets the kind constraint; pass KindAll to clear it.
func Kind(k string) Field { return func(f *FilterSpec) { f.Kind = k } }

// State sets the state constraint; pass StateAll to clear it.
func State(s string) Field { return func(f *FilterSpec) { f.State = s } }

// File sets the path glob; pass "" to clear it.
func File(glob string) Field { return func(f *FilterSpec) { f.File = glob } }

// RefBounds sets the inclusive reference-count bounds; nil clears a side.
func RefBounds(min, max *int) Field {
	return func(f *FilterSpec) {
		f.MinRefs = cloneInt(min)
		f.MaxRefs = cloneInt(max)
	}
}

// HasCallers sets the caller tri-state; nil clears it.
func HasCallers(v *bool) Field { return func(f *FilterSpec) { f.HasCallers = cloneBool(v) } }

// HasCallees sets the callee tri-state; nil clears it.
func HasCallees(v *bool) Field { return func(f *FilterSpec) { f.HasCallees = cloneBool(v) } }

// Entry sets the entry-point constraint; nil clears it.
func Entry(v *bool) Field { return func(f *FilterSpec) { f.Entry = cloneBool(v) } }

// Update merges field changes into the live spec, persists the durable
// subset, and synchronously notifies subscribers.
func (e *Engine) Update(fields ...Field) {
	e.mu.Lock()
	for _, f := range fields {
		f(&e.spec)
	}
	e.mu.Unlock()
	e.persist()
	e.notify()
}

// Reset restores every field to its default sentinel, persists, and
// notifies.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.spec = DefaultSpec()
	e.mu.Unlock()
	e.persist()
	e.notify()
}

// Subscribe registers a callback invoked on every Set, Update, and Reset
// with an isolated snapshot of the spec. Callbacks run in registration
// order; a panicking callback is recovered and logged so the remaining
// callbacks still run. The returned function removes the subscription.
func (e *Engine) Subscribe(fn func(FilterSpec)) (unsubscribe func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscription{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, sub := range e.subs {
			if sub.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// HasActiveFilters reports whether any field differs from its default.
func (e *Engine) HasActiveFilters() bool {
	return e.Spec().HasActiveFilters()
}

// ActiveFilters returns the chip list for the current spec.
func (e *Engine) ActiveFilters() []ActiveFilter {
	return e.Spec().ActiveFilters()
}

// persist mirrors the durable subset to storage. Failures are logged and
// swallowed: storage is best-effort and must never abort an in-memory
// update.
func (e *Engine) persist() {
	if e.storage == nil {
		return
	}
	e.mu.Lock()
	p := persistedFilters{
		Search: e.spec.Search,
		Kind:   e.spec.Kind,
		State:  e.spec.State,
		File:   e.spec.File,
	}
	e.mu.Unlock()
	raw, err := json.Marshal(p)
	if err != nil {
		e.log.WithError(err).Warn("encoding persisted filters")
		return
	}
	if err := e.storage.Set(filterStateKey, string(raw)); err != nil {
		e.log.WithError(err).Warn("saving persisted filters")
	}
}

// notify delivers a fresh snapshot to each subscriber, in registration
// order, guarding each delivery so one panicking observer cannot
// suppress the rest.
func (e *Engine) notify() {
	e.mu.Lock()
	subs := make([]subscription, len(e.subs))
	copy(subs, e.subs)
	spec := e.spec
	e.mu.Unlock()

	for _, sub := range subs {
		e.deliver(sub, spec.Clone())
	}
}

func (e *Engine) deliver(sub subscription, snapshot FilterSpec) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithField("panic", r).Warn("filter subscriber panicked")
		}
	}()
	sub.fn(snapshot)
}
