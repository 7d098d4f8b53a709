package localize

import "errors"

// Sentinel errors for engine construction and catalog sources. Runtime
// translation paths never return errors; every failure there degrades to a
// displayable value.
var (
	// ErrEmptyLocale is returned when a locale identifier is empty.
	ErrEmptyLocale = errors.New("localize: locale cannot be empty")

	// ErrNoFetcher is returned by LoadMessages when no fetcher is configured.
	ErrNoFetcher = errors.New("localize: no fetcher configured")

	// ErrInvalidFile is returned when a catalog file cannot be parsed.
	ErrInvalidFile = errors.New("localize: invalid catalog file")

	// ErrNoCatalogURL is returned by HTTPFetcher when it has no URLs to fetch.
	ErrNoCatalogURL = errors.New("localize: no catalog URL configured")
)
