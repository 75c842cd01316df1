// Package viewpref remembers the display mode a user last picked, globally and
// per scope (usually a project).
//
// Reads never fail: an absent key, an unreadable backend, or a stored token
// outside the enumeration all resolve to viewmode.Default. Writes are
// best-effort; a storage failure is logged and the change is still announced
// to listeners so the in-memory selection keeps working.
package viewpref

import (
	"context"
	"sync"

	"siteboard/internal/prefkv"
	"siteboard/internal/viewmode"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const (
	// GlobalKey holds the preference when no scope is given.
	GlobalKey = "preferredViewMode"
	// ScopedKeyPrefix is prepended to a scope id to form its key.
	ScopedKeyPrefix = "viewMode_"
)

// Key returns the storage key for scopeID. The empty scope is the global default.
func Key(scopeID string) string {
	if scopeID == "" {
		return GlobalKey
	}
	return ScopedKeyPrefix + scopeID
}

// Change describes a mode selection.
type Change struct {
	Mode  viewmode.DisplayMode
	Scope string
}

// Store reads and writes display-mode preferences through a prefkv.Storage.
type Store struct {
	storage prefkv.Storage
	logger  *zap.Logger
	tracer  trace.Tracer

	mu        sync.Mutex
	listeners []func(Change)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for swallowed storage errors.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer wraps each read and write in a span from t.
func WithTracer(t trace.Tracer) Option {
	return func(s *Store) {
		if t != nil {
			s.tracer = t
		}
	}
}

// New returns a Store persisting through storage.
func New(storage prefkv.Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  zap.NewNop(),
		tracer:  noop.NewTracerProvider().Tracer("siteboard/viewpref"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers fn to be called after every SetMode.
func (s *Store) OnChange(fn func(Change)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// SetMode persists mode under the key for scopeID. Only that one key is
// written; a scoped write never touches the global key or the reverse.
// A mode outside the enumeration is logged and dropped without notifying.
func (s *Store) SetMode(mode viewmode.DisplayMode, scopeID string) {
	key := Key(scopeID)
	if !mode.Valid() {
		s.logger.Warn("ignoring invalid view mode",
			zap.String("key", key),
			zap.Int("mode", int(mode)))
		return
	}
	_, span := s.tracer.Start(context.Background(), "viewpref.set", trace.WithAttributes(
		attribute.String("siteboard.pref.key", key),
		attribute.String("siteboard.pref.scope", scopeID),
		attribute.String("siteboard.view.mode", mode.String()),
	))
	defer span.End()

	if err := s.write(key, mode.String()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "preference write failed")
		s.logger.Warn("persist view mode",
			zap.String("key", key),
			zap.String("mode", mode.String()),
			zap.Error(err))
	}

	s.notify(Change{Mode: mode, Scope: scopeID})
}

// GetMode returns the persisted mode for scopeID, or viewmode.Default when
// nothing valid is stored. The global value is not consulted for a scope.
func (s *Store) GetMode(scopeID string) viewmode.DisplayMode {
	key := Key(scopeID)
	_, span := s.tracer.Start(context.Background(), "viewpref.get", trace.WithAttributes(
		attribute.String("siteboard.pref.key", key),
		attribute.String("siteboard.pref.scope", scopeID),
	))
	defer span.End()

	raw, ok, err := s.read(key)
	if err != nil {
		span.RecordError(err)
		s.logger.Warn("read view mode", zap.String("key", key), zap.Error(err))
		return viewmode.Default
	}
	if !ok {
		span.SetAttributes(attribute.String("siteboard.view.mode", viewmode.Default.String()))
		return viewmode.Default
	}
	mode, err := viewmode.Parse(raw)
	if err != nil {
		s.logger.Debug("ignoring stored view mode",
			zap.String("key", key),
			zap.String("value", raw))
		span.SetAttributes(attribute.Bool("siteboard.pref.invalid", true))
		return viewmode.Default
	}
	span.SetAttributes(attribute.String("siteboard.view.mode", mode.String()))
	return mode
}

// read calls the backend, converting a panic into an error.
func (s *Store) read(key string) (value string, ok bool, err error) {
	if s.storage == nil {
		return "", false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &backendPanic{op: "get", value: r}
		}
	}()
	return s.storage.Get(key)
}

// write calls the backend, converting a panic into an error.
func (s *Store) write(key, value string) (err error) {
	if s.storage == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &backendPanic{op: "set", value: r}
		}
	}()
	return s.storage.Set(key, value)
}

func (s *Store) notify(c Change) {
	s.mu.Lock()
	listeners := make([]func(Change), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(c)
	}
}
