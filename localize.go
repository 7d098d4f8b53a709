package localize

import (
	"io"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"localize/pkg/catalog"
	"localize/pkg/locale"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Localizer resolves text keys to locale-specific values. It owns the
// installed message catalog and the active locale state.
//
// Configuration is fixed at construction; the only mutable state is the
// catalog snapshot, which SetLocale and LoadMessages replace in a single
// atomic step. Readers always observe a complete table, so translation calls
// are safe during concurrent loads.
type Localizer struct {
	snap atomic.Pointer[snapshot]

	// mu serializes installs and guards the load generation counter.
	mu  sync.Mutex
	gen uint64

	fetcher   Fetcher
	logger    *slog.Logger
	onMissing func(locale, key string)
	plain     bool

	// Construction-time state, cleared once New returns.
	initLocale string
	initRaw    catalog.Raw
}

// snapshot is the immutable state installed by a completed load.
type snapshot struct {
	table    catalog.Table
	locale   string
	fallback string
	loaded   bool
}

// New creates a Localizer from the given options. Without options it starts
// on DefaultLocale with an empty catalog; every lookup then echoes its key.
func New(opts ...Option) (*Localizer, error) {
	l := &Localizer{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		initLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	l.install(l.initLocale, l.initRaw, len(l.initRaw) > 0)
	l.initRaw = nil
	l.initLocale = ""

	return l, nil
}

// install builds and swaps in a new catalog snapshot. Callers other than New
// must hold l.mu.
func (l *Localizer) install(loc string, raw catalog.Raw, loaded bool) {
	l.snap.Store(&snapshot{
		table:    catalog.Build(raw, !l.plain),
		locale:   loc,
		fallback: locale.Fallback(loc),
		loaded:   loaded,
	})
}

// Locale returns the active locale.
func (l *Localizer) Locale() string {
	return l.snap.Load().locale
}

// FallbackLocale returns the fallback derived from the active locale.
func (l *Localizer) FallbackLocale() string {
	return l.snap.Load().fallback
}

// Loaded reports whether a message catalog has been installed successfully.
// It stays false after a failed LoadMessages, distinguishing "no data ever
// arrived" from "data arrived but this key is untranslated".
func (l *Localizer) Loaded() bool {
	return l.snap.Load().loaded
}

// Keys returns the sorted message keys of the installed catalog.
func (l *Localizer) Keys() []string {
	table := l.snap.Load().table
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
