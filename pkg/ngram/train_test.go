package ngram

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func writeTestCorpus(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write test corpus: %v", err)
	}
	return path
}

func TestTrainFile(t *testing.T) {
	path := writeTestCorpus(t, "corpus.txt", "가나가")

	model, err := TrainFile(path, 1)
	if err != nil {
		t.Fatalf("TrainFile() error = %v", err)
	}
	if got := model.Metadata.Source; got != path {
		t.Errorf("source = %q, want %q", got, path)
	}
	if model.Metadata.MinFreq == nil || *model.Metadata.MinFreq != 1 {
		t.Error("min_freq not recorded for corpus-trained model")
	}
	if got := model.Metadata.CorpusSize; got != 3 {
		t.Errorf("corpus_size = %d, want 3", got)
	}
	if got := model.UnigramCount('가'); got != 2 {
		t.Errorf("unigram 가 = %d, want 2", got)
	}
	if got := model.BigramCount('나', '가'); got != 1 {
		t.Errorf("bigram 나|가 = %d, want 1", got)
	}
}

func TestTrainFilePrunes(t *testing.T) {
	path := writeTestCorpus(t, "corpus.txt", "가나가")

	model, err := TrainFile(path, 2)
	if err != nil {
		t.Fatalf("TrainFile() error = %v", err)
	}
	// Only 가 (count 2) survives; corpus_size reflects the pruned table.
	if got := model.Metadata.CorpusSize; got != 2 {
		t.Errorf("corpus_size = %d, want 2", got)
	}
	if got := model.Metadata.UniqueUnigrams; got != 1 {
		t.Errorf("unique_unigrams = %d, want 1", got)
	}
	if got := model.Metadata.UniqueBigrams; got != 0 {
		t.Errorf("unique_bigrams = %d, want 0", got)
	}
}

func TestTrainFileMissingCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does_not_exist.txt")

	model, err := TrainFile(path, 5)
	if !errors.Is(err, ErrCorpusNotFound) {
		t.Fatalf("TrainFile() error = %v, want ErrCorpusNotFound", err)
	}
	if model != nil {
		t.Error("TrainFile() returned a model for a missing corpus")
	}
}

func TestTrainFileDirectoryCorpus(t *testing.T) {
	if _, err := TrainFile(t.TempDir(), 5); !errors.Is(err, ErrCorpusNotFound) {
		t.Errorf("TrainFile(dir) error = %v, want ErrCorpusNotFound", err)
	}
}

func TestTrainFileGzipCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create gzip corpus: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err = zw.Write([]byte("가나가")); err != nil {
		t.Fatalf("could not write gzip corpus: %v", err)
	}
	if err = zw.Close(); err != nil {
		t.Fatalf("could not close gzip writer: %v", err)
	}
	if err = f.Close(); err != nil {
		t.Fatalf("could not close gzip corpus: %v", err)
	}

	model, err := TrainFile(path, 1)
	if err != nil {
		t.Fatalf("TrainFile() error = %v", err)
	}
	if got := model.UnigramCount('가'); got != 2 {
		t.Errorf("unigram 가 from gzip corpus = %d, want 2", got)
	}
}
