package ngram

import (
	"strings"
	"testing"
)

func TestCountBasic(t *testing.T) {
	unigrams, bigrams := Count("가나가", 1)

	if got := unigrams.Count('가'); got != 2 {
		t.Errorf("unigram 가 = %d, want 2", got)
	}
	if got := unigrams.Count('나'); got != 1 {
		t.Errorf("unigram 나 = %d, want 1", got)
	}
	if got := unigrams.Len(); got != 2 {
		t.Errorf("unigram count = %d, want 2", got)
	}
	if got := bigrams.Count(Bigram{'가', '나'}); got != 1 {
		t.Errorf("bigram 가나 = %d, want 1", got)
	}
	if got := bigrams.Count(Bigram{'나', '가'}); got != 1 {
		t.Errorf("bigram 나가 = %d, want 1", got)
	}
	if got := bigrams.Len(); got != 2 {
		t.Errorf("bigram count = %d, want 2", got)
	}
}

func TestCountDeletedGapFormsBigram(t *testing.T) {
	// The space is deleted before windowing, so 가 and 나 become adjacent.
	unigrams, bigrams := Count("가 나", 1)

	if got := unigrams.Count('가'); got != 1 {
		t.Errorf("unigram 가 = %d, want 1", got)
	}
	if got := unigrams.Count('나'); got != 1 {
		t.Errorf("unigram 나 = %d, want 1", got)
	}
	if got := bigrams.Count(Bigram{'가', '나'}); got != 1 {
		t.Errorf("bigram 가나 = %d, want 1", got)
	}
	if got := bigrams.Len(); got != 1 {
		t.Errorf("bigram count = %d, want 1", got)
	}
}

func TestCountEmptyInput(t *testing.T) {
	for _, input := range []string{"", "abc 123", "ㄱㅏㄴ"} {
		unigrams, bigrams := Count(input, 1)
		if unigrams.Len() != 0 || bigrams.Len() != 0 {
			t.Errorf("Count(%q) produced non-empty tables", input)
		}
	}
}

func TestCountMinFreqPruning(t *testing.T) {
	// 가 appears twice, everything else once.
	unigrams, bigrams := Count("가나가다", 2)

	if got := unigrams.Count('가'); got != 2 {
		t.Errorf("unigram 가 = %d, want 2", got)
	}
	if got := unigrams.Len(); got != 1 {
		t.Errorf("unigram count after pruning = %d, want 1", got)
	}
	if got := bigrams.Len(); got != 0 {
		t.Errorf("bigram count after pruning = %d, want 0 (all singletons)", got)
	}
}

func TestUnigramTablePrune(t *testing.T) {
	table := NewUnigramTable()
	table.Add('가', 1)
	table.Add('나', 2)
	table.Prune(2)

	if got := table.Len(); got != 1 {
		t.Fatalf("table length after pruning = %d, want 1", got)
	}
	if got := table.Count('나'); got != 2 {
		t.Errorf("unigram 나 = %d, want 2", got)
	}
	if got := table.Count('가'); got != 0 {
		t.Errorf("unigram 가 = %d, want 0 (pruned)", got)
	}
}

func TestBigramTotalMatchesWindowCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"가", 0},
		{"가나", 1},
		{"가나다라마", 4},
		{"가, 나! 다 라... 마", 4},
		{"아버지가 방에 들어가신다", 10},
	}
	for _, tt := range tests {
		_, bigrams := Count(tt.input, 1)
		if got := bigrams.Total(); got != tt.want {
			t.Errorf("Count(%q) bigram total = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCountMinFreqMonotonic(t *testing.T) {
	input := strings.Repeat("가나다 가나 가", 3)
	loose, looseBigrams := Count(input, 1)
	strict, strictBigrams := Count(input, 3)

	for _, r := range strict.Syllables() {
		if loose.Count(r) != strict.Count(r) {
			t.Errorf("unigram %q count changed under pruning: %d vs %d", r, loose.Count(r), strict.Count(r))
		}
	}
	if strict.Len() > loose.Len() {
		t.Errorf("stricter threshold kept more unigrams (%d > %d)", strict.Len(), loose.Len())
	}
	for _, b := range strictBigrams.Pairs() {
		if looseBigrams.Count(b) != strictBigrams.Count(b) {
			t.Errorf("bigram %q count changed under pruning", b.Key())
		}
	}
}

func TestCountDeterministic(t *testing.T) {
	input := "한글은 세종대왕이 창제하였습니다. 아버지가 방에 들어가신다."
	u1, b1 := Count(input, 1)
	u2, b2 := Count(input, 1)

	if u1.Len() != u2.Len() || b1.Len() != b2.Len() {
		t.Fatal("repeated counting produced different table sizes")
	}
	for i, r := range u1.Syllables() {
		if u2.Syllables()[i] != r || u1.Count(r) != u2.Count(r) {
			t.Fatalf("repeated counting diverged at unigram %q", r)
		}
	}
	for i, b := range b1.Pairs() {
		if b2.Pairs()[i] != b || b1.Count(b) != b2.Count(b) {
			t.Fatalf("repeated counting diverged at bigram %q", b.Key())
		}
	}
}

func TestCounterChunkedEqualsWhole(t *testing.T) {
	whole := NewCounter()
	whole.Write("가나다라 마바")

	chunked := NewCounter()
	for _, chunk := range []string{"가나", "다", "", "라 마", "바"} {
		chunked.Write(chunk)
	}

	wu, wb := whole.Tables(1)
	cu, cb := chunked.Tables(1)
	if wu.Len() != cu.Len() || wb.Len() != cb.Len() {
		t.Fatal("chunked counting produced different table sizes")
	}
	for _, r := range wu.Syllables() {
		if wu.Count(r) != cu.Count(r) {
			t.Errorf("unigram %q: whole %d, chunked %d", r, wu.Count(r), cu.Count(r))
		}
	}
	for _, b := range wb.Pairs() {
		if wb.Count(b) != cb.Count(b) {
			t.Errorf("bigram %q: whole %d, chunked %d", b.Key(), wb.Count(b), cb.Count(b))
		}
	}
}

func TestCounterDrainKeepsAdjacency(t *testing.T) {
	c := NewCounter()
	c.Write("가나")
	u1, b1 := c.Drain()
	c.Write("다")
	u2, b2 := c.Drain()

	if got := u1.Total() + u2.Total(); got != 3 {
		t.Errorf("drained unigram total = %d, want 3", got)
	}
	if got := b1.Total() + b2.Total(); got != 2 {
		t.Errorf("drained bigram total = %d, want 2", got)
	}
	// The 나->다 pair crosses the drain boundary.
	if got := b2.Count(Bigram{'나', '다'}); got != 1 {
		t.Errorf("bigram 나다 after drain = %d, want 1", got)
	}
}

func BenchmarkCount(b *testing.B) {
	corpus := strings.Repeat("안녕하세요 반갑습니다. 아버지가 방에 들어가신다. hello world 123 ", 100)
	b.SetBytes(int64(len(corpus)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Count(corpus, 1)
	}
}
