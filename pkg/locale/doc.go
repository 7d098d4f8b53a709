// Package locale derives fallback locales and matches locale identifiers
// against Accept-Language headers.
//
// A locale identifier pairs a language with an optional region, written with
// either separator style ("is_IS", "en-US"). Its fallback is the coarser
// language-only identifier:
//
//	locale.Fallback("en_US") // "en"
//	locale.Fallback("is")    // "is"
//
// MatchAcceptLanguage picks the best supported locale for an HTTP request
// using BCP 47 matching from golang.org/x/text.
package locale
