package ngram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/natefinch/atomic"

	"github.com/hantools/hangram/pkg/hangul"
)

// SampleSource is the metadata.source marker for synthetically generated
// models, as opposed to models trained from a corpus file (whose source is
// the corpus path).
const SampleSource = "sample_generated"

// Metadata describes a model's provenance and derived sizes.
// MinFreq is set only for corpus-trained models.
type Metadata struct {
	CorpusSize     int    `json:"corpus_size"`
	UniqueUnigrams int    `json:"unique_unigrams"`
	UniqueBigrams  int    `json:"unique_bigrams"`
	MinFreq        *int   `json:"min_freq,omitempty"`
	Source         string `json:"source"`
}

// CountEntry is one key/count pair in a serialized frequency section.
type CountEntry struct {
	Key   string
	Count int
}

// CountEntries is an order-preserving JSON object of string keys to integer
// counts. Go maps do not keep order, and the model format requires entries
// sorted descending by count, so the sections marshal from a slice.
type CountEntries []CountEntry

// MarshalJSON renders the entries as a JSON object in slice order.
func (e CountEntries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON parses a JSON object, preserving its key order.
func (e *CountEntries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object, got %v", ErrModelFormat, tok)
	}
	out := make(CountEntries, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key %v", ErrModelFormat, tok)
		}
		var count int
		if err = dec.Decode(&count); err != nil {
			return fmt.Errorf("%w: invalid count for %q: %v", ErrModelFormat, key, err)
		}
		out = append(out, CountEntry{Key: key, Count: count})
	}
	if _, err = dec.Token(); err != nil { // consume closing '}'
		return err
	}
	*e = out
	return nil
}

// Model is the persisted n-gram model: provenance metadata plus the
// unigram and bigram frequency sections, each sorted descending by count
// with ties kept in first-encountered order.
type Model struct {
	Metadata Metadata     `json:"metadata"`
	Unigrams CountEntries `json:"unigrams"`
	Bigrams  CountEntries `json:"bigrams"`
}

// Assemble wraps finished (already pruned) tables into a Model. It derives
// corpus_size and the cardinalities from the tables, keeps meta's Source
// and MinFreq as supplied by the caller, and sorts both sections
// descending by count with a stable sort, so entries with equal counts
// stay in the tables' insertion order.
func Assemble(unigrams *UnigramTable, bigrams *BigramTable, meta Metadata) *Model {
	meta.CorpusSize = unigrams.Total()
	meta.UniqueUnigrams = unigrams.Len()
	meta.UniqueBigrams = bigrams.Len()

	uniEntries := make(CountEntries, 0, unigrams.Len())
	for _, r := range unigrams.Syllables() {
		uniEntries = append(uniEntries, CountEntry{Key: string(r), Count: unigrams.Count(r)})
	}
	sort.SliceStable(uniEntries, func(i, j int) bool {
		return uniEntries[i].Count > uniEntries[j].Count
	})

	biEntries := make(CountEntries, 0, bigrams.Len())
	for _, b := range bigrams.Pairs() {
		biEntries = append(biEntries, CountEntry{Key: b.Key(), Count: bigrams.Count(b)})
	}
	sort.SliceStable(biEntries, func(i, j int) bool {
		return biEntries[i].Count > biEntries[j].Count
	})

	return &Model{
		Metadata: meta,
		Unigrams: uniEntries,
		Bigrams:  biEntries,
	}
}

// MarshalIndent serializes the model as two-space indented UTF-8 JSON.
func (m *Model) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes the model and writes it to path in a single atomic
// operation: the full JSON is buffered in memory and renamed into place,
// so a failed write never leaves a partial or inconsistent file behind.
// A path ending in ".gz" is written gzip-compressed.
func (m *Model) WriteFile(path string) error {
	data, err := m.MarshalIndent()
	if err != nil {
		return fmt.Errorf("could not serialize model: %w", err)
	}
	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err = zw.Write(data); err != nil {
			return fmt.Errorf("could not compress model: %w", err)
		}
		if err = zw.Close(); err != nil {
			return fmt.Errorf("could not compress model: %w", err)
		}
		data = buf.Bytes()
	}
	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("could not write model to %s: %w", path, err)
	}
	return nil
}

// Read parses a model from r, preserving entry order and validating that
// every key consists of Hangul syllables in the expected shape.
func Read(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, ErrModelFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrModelFormat, err)
	}
	for _, entry := range m.Unigrams {
		runes := []rune(entry.Key)
		if len(runes) != 1 || !hangul.IsSyllable(runes[0]) {
			return nil, fmt.Errorf("%w: invalid unigram key %q", ErrModelFormat, entry.Key)
		}
		if entry.Count < 0 {
			return nil, fmt.Errorf("%w: negative count for %q", ErrModelFormat, entry.Key)
		}
	}
	for _, entry := range m.Bigrams {
		if _, err := SplitBigramKey(entry.Key); err != nil {
			return nil, err
		}
		if entry.Count < 0 {
			return nil, fmt.Errorf("%w: negative count for %q", ErrModelFormat, entry.Key)
		}
	}
	return &m, nil
}

// SplitBigramKey parses a serialized "first|second" bigram key.
func SplitBigramKey(key string) (Bigram, error) {
	first, second, ok := strings.Cut(key, "|")
	if !ok {
		return Bigram{}, fmt.Errorf("%w: invalid bigram key %q", ErrModelFormat, key)
	}
	fr, sr := []rune(first), []rune(second)
	if len(fr) != 1 || !hangul.IsSyllable(fr[0]) || len(sr) != 1 || !hangul.IsSyllable(sr[0]) {
		return Bigram{}, fmt.Errorf("%w: invalid bigram key %q", ErrModelFormat, key)
	}
	return Bigram{First: fr[0], Second: sr[0]}, nil
}
