// Package localize is a runtime localization engine: it resolves text keys
// to locale-specific strings, substitutes {name} parameters, and decomposes
// strings containing inline <tag>...</tag> markup into node sequences ready
// for a host UI tree.
//
// # Design
//
// A Localizer owns the installed message catalog and the active locale. All
// configuration happens at construction; the catalog itself is replaced as a
// whole by SetLocale or LoadMessages, so translation calls are safe during
// concurrent loads and never observe a partially built table.
//
// Every failure mode degrades to a displayable value: a failed fetch installs
// an empty catalog, a missing key echoes the key, unparseable markup drops
// the offending tag. A localization problem must never block rendering.
//
// # Basic usage
//
//	l, err := localize.New(
//		localize.WithLocale("is_IS"),
//		localize.WithMessages(catalog.Raw{
//			"greet": {"en": "Hi {user}!", "is": "Hæ {user}!"},
//		}),
//	)
//
//	l.TranslateString("greet", markup.Params{"user": "Anna"})
//	// "Hæ Anna!" — resolved via the "is" fallback of "is_IS"
//
// # Remote catalogs
//
// LoadMessages fetches the raw message table (key to locale to value JSON)
// through a Fetcher and installs it for a locale:
//
//	l, _ := localize.New(
//		localize.WithFetcher(localize.NewHTTPFetcher(nil, "https://cdn.example.com/messages.json")),
//		localize.WithLogger(logger),
//	)
//	_ = l.LoadMessages(ctx, "en_US")
//
// Overlapping loads resolve by request recency: a slow fetch that completes
// after a newer load began is discarded.
//
// # Markup
//
// Values containing inline markup are decomposed once at load time into
// segment sequences (see localize/pkg/markup). Hosts consume them through a
// node builder:
//
//	answer := localize.WrapTranslated(l, htmlnode.Builder(), "p", "help.answer")
//
// TranslateString guards callers that need plain text: it returns an empty
// string when the resolved value carries markup.
//
// # File-based catalogs
//
// Initial messages can come from fs.FS sources with one file per locale:
//
//	//go:embed messages
//	var messagesFS embed.FS
//
//	sub, _ := fs.Sub(messagesFS, "messages")
//	l, err := localize.New(localize.WithJSONDir(sub), localize.WithYAMLDir(sub))
package localize
