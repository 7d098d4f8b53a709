package localize

import (
	"context"
	"log/slog"

	"localize/pkg/catalog"
)

// SetLocale installs the given locale and pre-supplied raw message data
// synchronously, replacing the previous catalog in one atomic step. It is a
// total operation: malformed entries in raw are dropped, never reported.
func (l *Localizer) SetLocale(loc string, raw catalog.Raw) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.install(loc, raw, true)
}

// LoadMessages fetches the remote message catalog and installs it together
// with the given locale. Transport and decode failures degrade to an empty
// catalog with the locale still applied and Loaded left false: a broken
// translation source must never block rendering. The only possible error is
// ErrNoFetcher.
//
// Overlapping loads resolve by recency of the request, not of completion: a
// fetch that finishes after a newer load or SetLocale has started discards
// its result.
func (l *Localizer) LoadMessages(ctx context.Context, loc string) error {
	if l.fetcher == nil {
		return ErrNoFetcher
	}

	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	raw, err := l.fetcher.Fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		l.logger.DebugContext(ctx, "discarding stale catalog load",
			slog.String("locale", loc))
		return nil
	}

	if err != nil {
		l.logger.WarnContext(ctx, "catalog fetch failed, continuing without messages",
			slog.String("locale", loc),
			slog.Any("error", err))
		l.install(loc, nil, false)
		return nil
	}

	l.install(loc, raw, true)
	l.logger.InfoContext(ctx, "message catalog loaded",
		slog.String("locale", loc),
		slog.Int("keys", len(raw)))
	return nil
}
