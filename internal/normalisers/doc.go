// Package normalisers provides implementations of the Normaliser interface
// for the document formats docsift accepts. Each normaliser knows how to
// recover raw text from a specific MIME type; cleanup happens afterwards in
// the post-processing pipeline.
//
// Normalisers are registered with the NormaliserRegistry at startup.
package normalisers
