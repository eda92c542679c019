package ngram

// TopUnigrams returns the n highest-frequency unigram entries (fewer if
// the model is smaller). Sections are already sorted descending, so this
// is a prefix.
func (m *Model) TopUnigrams(n int) []CountEntry {
	if n > len(m.Unigrams) {
		n = len(m.Unigrams)
	}
	out := make([]CountEntry, n)
	copy(out, m.Unigrams[:n])
	return out
}

// TopBigrams returns the n highest-frequency bigram entries.
func (m *Model) TopBigrams(n int) []CountEntry {
	if n > len(m.Bigrams) {
		n = len(m.Bigrams)
	}
	out := make([]CountEntry, n)
	copy(out, m.Bigrams[:n])
	return out
}

// UnigramCount returns the model's count for a single syllable, or zero.
func (m *Model) UnigramCount(r rune) int {
	key := string(r)
	for _, entry := range m.Unigrams {
		if entry.Key == key {
			return entry.Count
		}
	}
	return 0
}

// BigramCount returns the model's count for an ordered syllable pair, or zero.
func (m *Model) BigramCount(first, second rune) int {
	key := Bigram{First: first, Second: second}.Key()
	for _, entry := range m.Bigrams {
		if entry.Key == key {
			return entry.Count
		}
	}
	return 0
}
