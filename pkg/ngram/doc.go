/*
Package ngram builds statistical frequency models of Hangul syllable
sequences. It counts unigrams and directional adjacent bigrams over the
Hangul-only projection of a text, supports minimum-frequency pruning,
and assembles the results into a portable JSON model file.

Counting can run fully in memory, or stream through a SQLite-backed
accumulation store for corpora that are impractical to count in a
single in-memory pass. A deterministic, corpus-free sample model
generator is included for demonstration and testing.
*/
package ngram
