package hstring

import (
	"bufio"
	"fmt"
	"os"
)

// StopTokens is the set of token hashes to filter out of Token-granularity
// strings, populated once from a file before preprocessing begins.
type StopTokens struct {
	set map[Sym]struct{}
}

// LoadStopTokens reads one token per line from path and hashes each with
// the same MurmurHash64B the tokenizer uses, so the set can be tested by
// direct symbol membership.
func LoadStopTokens(path string) (*StopTokens, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hstring: opening stop-token file: %w", err)
	}
	defer f.Close()

	st := &StopTokens{set: make(map[Sym]struct{})}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		st.set[murmurHash64B([]byte(line), hashSeed)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hstring: reading stop-token file: %w", err)
	}
	return st, nil
}

// Has reports whether sym is a stop token.
func (st *StopTokens) Has(sym Sym) bool {
	if st == nil {
		return false
	}
	_, ok := st.set[sym]
	return ok
}
