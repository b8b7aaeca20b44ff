// Package recovery turns raw container bytes into best-effort text.
//
// Three strategies are tried in order, cheapest first, and the first one that
// yields non-blank text wins:
//
//   - byte runs: regular-expression scan of the raw bytes for word,
//     proper-noun, year, acronym and date runs
//   - encodings: strict UTF-8, ISO-8859-1, ASCII and UTF-16LE decodings
//     scanned for long letter runs
//   - structure: literal strings, stream bodies and indirect objects
//
// This is not a PDF parser. Nothing here resolves cross references, maps
// fonts or inflates compressed streams; only text already present as literal
// bytes is recovered. Every strategy reads a bounded window of the input.
package recovery
