package ngram

import (
	"strings"

	"github.com/hantools/hangram/pkg/hangul"
)

// Weights applied by GenerateSample on top of the built-in corpus counts.
const (
	patternUnigramWeight = 100
	patternBigramWeight  = 50
	commonSyllableWeight = 200
	sampleCorpusCopies   = 10
)

// sampleCorpus is the built-in demonstration corpus: a handful of everyday
// Korean sentences. It is repeated sampleCorpusCopies times before
// counting, and the repetition junctions intentionally produce real
// bigrams (the last syllable of one copy is adjacent to the first syllable
// of the next once non-Hangul text is deleted).
const sampleCorpus = `
안녕하세요 반갑습니다 감사합니다 죄송합니다
오늘 날씨가 좋습니다 내일 비가 올 것 같습니다
한글은 세종대왕이 창제하였습니다
프로그래밍을 공부하고 있습니다
코딩은 재미있습니다 개발자가 되고 싶습니다
이것은 테스트입니다 잘 동작하나요
컴퓨터 과학을 전공하고 있습니다
맥북에서 한영 변환을 자동으로 해줍니다
두벌식 자판으로 한글을 입력합니다
가나다라마바사아자차카타파하
아버지가 방에 들어가신다
대한민국 만세
사랑합니다 행복하세요
좋은 하루 되세요
수고하셨습니다
`

// commonPatterns are curated multi-syllable fragments of frequent Korean
// morphology (endings, greetings, particles, time and IME vocabulary).
// Every syllable in a pattern gets patternUnigramWeight added, every
// adjacent pair patternBigramWeight, cumulatively across the list.
var commonPatterns = []string{
	"니다", "습니", "하세", "세요", "합니", "니까",
	"안녕", "감사", "죄송", "반갑", "축하", "미안",
	"으로", "에서", "하고", "이고", "그리", "하지",
	"입니", "했습", "하였", "되었", "있습", "없습",
	"오늘", "내일", "어제", "지금", "나중", "먼저",
	"한글", "영문", "변환", "입력", "출력", "처리",
}

// commonSyllables lists standalone high-frequency syllables. Each
// occurrence adds commonSyllableWeight to that syllable's unigram count;
// the string deliberately contains '가' twice, so it receives the weight
// twice.
const commonSyllables = "가나다라마바사아자차카타파하이은는을를에서로의가"

// GenerateSample builds the deterministic, corpus-free demonstration
// model: the built-in corpus is counted without pruning, then the curated
// pattern and common-syllable weights are layered on top. The result is
// byte-identical across invocations; its metadata carries SampleSource and
// no min_freq.
func GenerateSample() *Model {
	counter := NewCounter()
	counter.Write(strings.Repeat(sampleCorpus, sampleCorpusCopies))
	unigrams, bigrams := counter.Tables(1)

	for _, pattern := range commonPatterns {
		syllables := hangul.ExtractRunes(pattern)
		for _, r := range syllables {
			unigrams.Add(r, patternUnigramWeight)
		}
		for i := 0; i+1 < len(syllables); i++ {
			bigrams.Add(Bigram{First: syllables[i], Second: syllables[i+1]}, patternBigramWeight)
		}
	}

	for _, r := range commonSyllables {
		unigrams.Add(r, commonSyllableWeight)
	}

	return Assemble(unigrams, bigrams, Metadata{Source: SampleSource})
}
