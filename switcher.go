package lokat

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Switcher couples a locale identity to a dictionary cache and owns the
// current dictionary snapshot that bound translators read.
//
// A locale change is committed optimistically: SetLocale updates the observed
// locale and notifies subscribers before the dictionary load starts, and the
// identity is not rolled back if the load later fails. The language choice is
// immediate, the strings catch up. Callers relying on locale/dictionary
// agreement should wait for SetLocale to return.
type Switcher[D any] struct {
	cache *Cache[D]
	log   *slog.Logger

	mu     sync.Mutex
	locale string
	gen    uint64

	snapshot atomic.Pointer[D]

	localeChanged signal[string]
	dictChanged   signal[D]
	loadFailed    signal[loadFailure]
}

// loadFailure describes a dictionary load that rejected.
type loadFailure struct {
	locale string
	err    error
}

// SwitcherOption configures a Switcher during construction.
type SwitcherOption[D any] func(*switcherConfig[D])

type switcherConfig[D any] struct {
	initial   *D
	cacheOpts []CacheOption
	log       *slog.Logger
	localeFns []func(string)
	dictFns   []func(D)
	errFns    []func(loadFailure)
}

// WithInitialDictionary seeds the switcher with an already-loaded dictionary
// for the construction locale. No initial load is issued; the switcher starts
// settled.
func WithInitialDictionary[D any](d D) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.initial = &d
	}
}

// WithCacheOptions passes options through to the switcher's internal cache.
func WithCacheOptions[D any](opts ...CacheOption) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.cacheOpts = append(c.cacheOpts, opts...)
	}
}

// WithLogger sets the logger used for load-failure diagnostics.
func WithLogger[D any](log *slog.Logger) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.log = log
	}
}

// OnLocaleChange registers a hook that fires synchronously whenever the
// locale identity changes, before the corresponding load begins. It does not
// fire for the construction locale.
func OnLocaleChange[D any](fn func(locale string)) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.localeFns = append(c.localeFns, fn)
	}
}

// OnDictionaryChange registers a hook that fires after the snapshot swaps to
// a newly loaded dictionary.
func OnDictionaryChange[D any](fn func(dict D)) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.dictFns = append(c.dictFns, fn)
	}
}

// OnError registers a hook that fires when a dictionary load rejects.
// Registering through an option (rather than SubscribeError) guarantees the
// hook is in place before the construction-time background load can fail.
func OnError[D any](fn func(locale string, err error)) SwitcherOption[D] {
	return func(c *switcherConfig[D]) {
		c.errFns = append(c.errFns, func(f loadFailure) { fn(f.locale, f.err) })
	}
}

// NewSwitcher creates a switcher for the given initial locale.
//
// When WithInitialDictionary is supplied the switcher starts settled on that
// dictionary. Otherwise a load of the initial locale is issued in the
// background (fire and forget) and the snapshot is the zero dictionary until
// it resolves; lookup through a bound translator stays safe in the meantime.
//
// Panics if loader is nil.
func NewSwitcher[D any](loader Loader[D], locale string, opts ...SwitcherOption[D]) *Switcher[D] {
	var cfg switcherConfig[D]
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Switcher[D]{
		cache:  NewCache(loader, cfg.cacheOpts...),
		log:    cfg.log,
		locale: locale,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, fn := range cfg.localeFns {
		s.localeChanged.subscribe(fn)
	}
	for _, fn := range cfg.dictFns {
		s.dictChanged.subscribe(fn)
	}
	for _, fn := range cfg.errFns {
		s.loadFailed.subscribe(fn)
	}

	if cfg.initial != nil {
		s.snapshot.Store(cfg.initial)
		return s
	}

	go func() {
		_ = s.settle(context.Background(), locale, 0)
	}()

	return s
}

// Locale returns the current locale identity. During a switch this is the
// target locale, even before (or regardless of whether) its load settles.
func (s *Switcher[D]) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Snapshot returns the current dictionary. Before the first load resolves it
// is the zero value of D.
func (s *Switcher[D]) Snapshot() D {
	if p := s.snapshot.Load(); p != nil {
		return *p
	}
	var zero D
	return zero
}

// SetLocale switches to locale. The identity updates and locale subscribers
// fire synchronously before the load starts. On success the snapshot swaps
// and dictionary subscribers fire; on failure the identity stays at locale,
// the snapshot keeps its prior value, error subscribers fire, and the error
// is returned.
func (s *Switcher[D]) SetLocale(ctx context.Context, locale string) error {
	s.mu.Lock()
	s.locale = locale
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	s.localeChanged.emit(locale)

	return s.settle(ctx, locale, gen)
}

// Preload loads and caches the dictionary for locale without touching the
// current locale identity, the snapshot, or any subscriber. Preloads share
// the cache's single-flight guarantee with subsequent SetLocale calls.
func (s *Switcher[D]) Preload(ctx context.Context, locale string) error {
	_, err := s.cache.Load(ctx, locale)
	return err
}

// SubscribeLocale registers fn for locale identity changes and returns a
// cancel function.
func (s *Switcher[D]) SubscribeLocale(fn func(locale string)) func() {
	return s.localeChanged.subscribe(fn)
}

// SubscribeDictionary registers fn for snapshot changes and returns a cancel
// function.
func (s *Switcher[D]) SubscribeDictionary(fn func(dict D)) func() {
	return s.dictChanged.subscribe(fn)
}

// SubscribeError registers fn for load failures and returns a cancel
// function.
func (s *Switcher[D]) SubscribeError(fn func(locale string, err error)) func() {
	return s.loadFailed.subscribe(func(f loadFailure) { fn(f.locale, f.err) })
}

// settle loads locale and, if no newer SetLocale superseded this attempt,
// swaps the snapshot and notifies dictionary subscribers.
func (s *Switcher[D]) settle(ctx context.Context, locale string, gen uint64) error {
	d, err := s.cache.Load(ctx, locale)
	if err != nil {
		s.log.WarnContext(ctx, "dictionary load failed", "locale", locale, "error", err)
		s.loadFailed.emit(loadFailure{locale: locale, err: err})
		return err
	}

	s.mu.Lock()
	current := s.gen == gen
	if current {
		s.snapshot.Store(&d)
	}
	s.mu.Unlock()

	if current {
		s.dictChanged.emit(d)
	}

	return nil
}
