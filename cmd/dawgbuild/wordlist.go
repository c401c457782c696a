package main

import (
	"fmt"
	"os"
	"strings"
)

// readWordList reads path and splits it on whitespace into a word
// list, the same delimiting the original script used
// (`open(filename).read().split()`).
//
// It does not itself enforce ordering or the A-Z alphabet - dawg.Build
// does that, with an error that names the offending word's index. This
// function only turns a file into a slice of tokens, and reports an
// error if the file holds no tokens at all.
func readWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	words := strings.Fields(string(data))
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty", path)
	}
	return words, nil
}
