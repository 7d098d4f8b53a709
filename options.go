package localize

import (
	"log/slog"

	"localize/pkg/catalog"
)

// Option configures the Localizer during construction.
type Option func(*Localizer) error

// WithLocale sets the initial locale. Defaults to DefaultLocale.
func WithLocale(loc string) Option {
	return func(l *Localizer) error {
		if loc == "" {
			return ErrEmptyLocale
		}
		l.initLocale = loc
		return nil
	}
}

// WithFetcher sets the fetcher used by LoadMessages to retrieve the remote
// message catalog.
func WithFetcher(f Fetcher) Option {
	return func(l *Localizer) error {
		l.fetcher = f
		return nil
	}
}

// WithLogger sets the logger for load diagnostics. If nil, logging stays
// disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Localizer) error {
		if logger != nil {
			l.logger = logger
		}
		return nil
	}
}

// WithPlainText disables markup decomposition: every value stays a plain
// string and inline tags pass through verbatim.
func WithPlainText() Option {
	return func(l *Localizer) error {
		l.plain = true
		return nil
	}
}

// WithMissingKeyHandler sets a handler invoked when a loaded catalog has no
// entry for a requested key. Useful for detecting untranslated keys during
// development or monitoring gaps in translations. The handler is never called
// before a successful load.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(l *Localizer) error {
		l.onMissing = handler
		return nil
	}
}

// WithMessages merges pre-supplied raw message data into the initial catalog.
func WithMessages(raw catalog.Raw) Option {
	return func(l *Localizer) error {
		if len(raw) == 0 {
			return nil
		}
		if l.initRaw == nil {
			l.initRaw = make(catalog.Raw, len(raw))
		}
		l.initRaw.Merge(raw)
		return nil
	}
}
