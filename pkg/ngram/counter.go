package ngram

import (
	"github.com/hantools/hangram/pkg/hangul"
)

// Bigram is an ordered pair of adjacent Hangul syllables. Order matters:
// (가, 나) and (나, 가) are distinct entries.
type Bigram struct {
	First  rune
	Second rune
}

// Key renders the bigram in its serialized form, the two syllables joined
// by '|'. The separator cannot appear inside a Hangul syllable, so the
// rendered key splits back unambiguously.
func (b Bigram) Key() string {
	return string(b.First) + "|" + string(b.Second)
}

// UnigramTable maps each syllable to a non-negative occurrence count.
// It remembers first-encountered insertion order so that count ties can be
// broken stably at serialization time.
type UnigramTable struct {
	counts map[rune]int
	order  []rune
}

// NewUnigramTable returns an empty unigram table.
func NewUnigramTable() *UnigramTable {
	return &UnigramTable{counts: make(map[rune]int)}
}

// Add increments the count for r by n, registering r on first sight.
func (t *UnigramTable) Add(r rune, n int) {
	if _, ok := t.counts[r]; !ok {
		t.order = append(t.order, r)
	}
	t.counts[r] += n
}

// Count returns the count for r, or zero if r is not in the table.
func (t *UnigramTable) Count(r rune) int {
	return t.counts[r]
}

// Len returns the number of distinct syllables in the table.
func (t *UnigramTable) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts in the table.
func (t *UnigramTable) Total() int {
	var sum int
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Syllables returns the table's syllables in first-encountered order.
func (t *UnigramTable) Syllables() []rune {
	out := make([]rune, len(t.order))
	copy(out, t.order)
	return out
}

// Prune removes every entry whose count is strictly below minFreq.
// A minFreq of 1 or less is a no-op.
func (t *UnigramTable) Prune(minFreq int) {
	if minFreq <= 1 {
		return
	}
	kept := t.order[:0]
	for _, r := range t.order {
		if t.counts[r] >= minFreq {
			kept = append(kept, r)
		} else {
			delete(t.counts, r)
		}
	}
	t.order = kept
}

// BigramTable maps each ordered syllable pair to a non-negative count,
// with the same insertion-order bookkeeping as UnigramTable.
type BigramTable struct {
	counts map[Bigram]int
	order  []Bigram
}

// NewBigramTable returns an empty bigram table.
func NewBigramTable() *BigramTable {
	return &BigramTable{counts: make(map[Bigram]int)}
}

// Add increments the count for b by n, registering b on first sight.
func (t *BigramTable) Add(b Bigram, n int) {
	if _, ok := t.counts[b]; !ok {
		t.order = append(t.order, b)
	}
	t.counts[b] += n
}

// Count returns the count for b, or zero if b is not in the table.
func (t *BigramTable) Count(b Bigram) int {
	return t.counts[b]
}

// Len returns the number of distinct bigrams in the table.
func (t *BigramTable) Len() int {
	return len(t.counts)
}

// Total returns the sum of all counts in the table.
func (t *BigramTable) Total() int {
	var sum int
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// Pairs returns the table's bigrams in first-encountered order.
func (t *BigramTable) Pairs() []Bigram {
	out := make([]Bigram, len(t.order))
	copy(out, t.order)
	return out
}

// Prune removes every entry whose count is strictly below minFreq.
// A minFreq of 1 or less is a no-op.
func (t *BigramTable) Prune(minFreq int) {
	if minFreq <= 1 {
		return
	}
	kept := t.order[:0]
	for _, b := range t.order {
		if t.counts[b] >= minFreq {
			kept = append(kept, b)
		} else {
			delete(t.counts, b)
		}
	}
	t.order = kept
}

// Counter tallies unigrams and bigrams over successive chunks of text.
// Non-Hangul characters are deleted before windowing, so a bigram can span
// what was originally a word or sentence boundary; the last syllable of
// one chunk likewise pairs with the first syllable of the next. Feeding a
// text in chunks therefore produces exactly the same tables as feeding it
// whole.
type Counter struct {
	unigrams *UnigramTable
	bigrams  *BigramTable
	prev     rune
	hasPrev  bool
}

// NewCounter returns a Counter with empty tables.
func NewCounter() *Counter {
	return &Counter{
		unigrams: NewUnigramTable(),
		bigrams:  NewBigramTable(),
	}
}

// Write tallies the Hangul syllables of text into the counter's tables.
func (c *Counter) Write(text string) {
	for _, r := range hangul.ExtractRunes(text) {
		c.unigrams.Add(r, 1)
		if c.hasPrev {
			c.bigrams.Add(Bigram{First: c.prev, Second: r}, 1)
		}
		c.prev = r
		c.hasPrev = true
	}
}

// Tables prunes both tables to minFreq and returns them. The counter
// should not be written to afterwards.
func (c *Counter) Tables(minFreq int) (*UnigramTable, *BigramTable) {
	c.unigrams.Prune(minFreq)
	c.bigrams.Prune(minFreq)
	return c.unigrams, c.bigrams
}

// Drain returns the accumulated tables and replaces them with empty ones,
// keeping the adjacency carry so that counting can continue seamlessly.
// Used by the store-backed training path to flush partial counts.
func (c *Counter) Drain() (*UnigramTable, *BigramTable) {
	u, b := c.unigrams, c.bigrams
	c.unigrams = NewUnigramTable()
	c.bigrams = NewBigramTable()
	return u, b
}

// Count tallies unigram and bigram frequencies over the Hangul syllables
// of text, then prunes entries with a count below minFreq (no pruning for
// minFreq <= 1). Empty or Hangul-free input yields empty tables.
func Count(text string, minFreq int) (*UnigramTable, *BigramTable) {
	c := NewCounter()
	c.Write(text)
	return c.Tables(minFreq)
}
