package analysis

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

// minWordLen drops short glue tokens from the customer-voice frequencies.
const minWordLen = 3

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "was": {}, "were": {}, "for": {}, "with": {},
	"that": {}, "this": {}, "but": {}, "our": {}, "are": {}, "had": {},
	"have": {}, "has": {}, "you": {}, "your": {}, "they": {}, "them": {},
	"their": {}, "there": {}, "from": {}, "very": {}, "too": {}, "all": {},
	"not": {}, "out": {}, "got": {}, "its": {}, "when": {}, "will": {},
	"would": {}, "been": {}, "just": {}, "here": {}, "some": {},
}

// tokenize splits lower-cased text into word tokens, treating everything
// outside letters and digits as a separator.
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// TopWords returns the n most frequent meaningful tokens in the
// lower-cased review text, for the customer-voice view. Stopwords and
// tokens shorter than minWordLen are dropped. Equal counts order
// alphabetically so repeated runs agree.
func TopWords(text string, n int) []domain.WordCount {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, tok := range tokenize(text) {
		if utf8.RuneCountInString(tok) < minWordLen {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		counts[tok]++
	}

	out := make([]domain.WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, domain.WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
