package ngram

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// openCorpus opens a corpus file for reading, transparently decompressing
// paths that end in ".gz". The returned closer releases the file (and the
// gzip reader, when present).
func openCorpus(path string) (io.Reader, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, path)
		}
		return nil, nil, fmt.Errorf("could not stat corpus %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s is a directory", ErrCorpusNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open corpus %s: %w", path, err)
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("could not open gzip corpus %s: %w", path, err)
	}
	closer := func() error {
		zErr := zr.Close()
		fErr := f.Close()
		if zErr != nil {
			return zErr
		}
		return fErr
	}
	return zr, closer, nil
}

// TrainFile reads the whole corpus at path, counts Hangul unigram and
// bigram frequencies, prunes entries below minFreq, and assembles a model
// whose metadata records the corpus path and threshold. A missing path
// fails with ErrCorpusNotFound before any counting work; nothing is ever
// written by this function.
func TrainFile(path string, minFreq int) (*Model, error) {
	r, closer, err := openCorpus(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closer() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus %s: %w", path, err)
	}

	unigrams, bigrams := Count(string(data), minFreq)
	return Assemble(unigrams, bigrams, Metadata{MinFreq: &minFreq, Source: path}), nil
}

// TrainFileWithStore streams the corpus at path through the given Store
// instead of holding all counts in memory: lines are counted in batches
// that are flushed into SQLite, pruning happens in SQL, and the final
// tables are read back for assembly. The store is reset first, so each
// call is a fresh training run. Produces the same model as TrainFile for
// the same inputs.
func TrainFileWithStore(ctx context.Context, store *Store, path string, minFreq int) (*Model, error) {
	// flushLines bounds how many corpus lines are tallied in memory
	// between store flushes.
	const flushLines = 10000

	r, closer, err := openCorpus(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = closer() }()

	if err = store.Reset(ctx); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	counter := NewCounter()
	var pending int
	for scanner.Scan() {
		counter.Write(scanner.Text())
		pending++
		if pending >= flushLines {
			unigrams, bigrams := counter.Drain()
			if err = store.Accumulate(ctx, unigrams, bigrams); err != nil {
				return nil, err
			}
			pending = 0
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read corpus %s: %w", path, err)
	}
	unigrams, bigrams := counter.Drain()
	if err = store.Accumulate(ctx, unigrams, bigrams); err != nil {
		return nil, err
	}

	if err = store.Prune(ctx, minFreq); err != nil {
		return nil, err
	}

	storedUnigrams, storedBigrams, err := store.Tables(ctx)
	if err != nil {
		return nil, err
	}
	return Assemble(storedUnigrams, storedBigrams, Metadata{MinFreq: &minFreq, Source: path}), nil
}
