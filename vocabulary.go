package jsonpad

import (
	"regexp"
	"strings"
)

// Vocabulary is the completion source harvested from a document: distinct
// single words and distinct multi-word phrases (chunks), both in first-seen
// order. Among case variants of the same word, the longest spelling wins.
type Vocabulary struct {
	Words  []string
	Chunks []string
}

var (
	wordSplitRE   = regexp.MustCompile(`[\s,.;:!?()\[\]{}"'-]+`)
	phraseSplitRE = regexp.MustCompile(`[,.;:!?()\[\]{}"']+`)
	quotedRE      = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// ExtractVocabulary harvests words and chunks from every string value and
// object key of a parsed document.
func ExtractVocabulary(v *Value) Vocabulary {
	b := newVocabBuilder()
	b.collect(v)

	return b.vocabulary()
}

// ExtractVocabularyText harvests from raw text by pulling quoted string
// contents directly; the fallback when the document does not parse.
func ExtractVocabularyText(text string) Vocabulary {
	b := newVocabBuilder()

	for _, m := range quotedRE.FindAllStringSubmatch(text, -1) {
		b.addText(m[1])
	}

	return b.vocabulary()
}

type vocabBuilder struct {
	words     []string
	wordIndex map[string]int
	chunks    []string
	chunkSeen map[string]bool
}

func newVocabBuilder() *vocabBuilder {
	return &vocabBuilder{
		wordIndex: map[string]int{},
		chunkSeen: map[string]bool{},
	}
}

func (b *vocabBuilder) vocabulary() Vocabulary {
	return Vocabulary{Words: b.words, Chunks: b.chunks}
}

func (b *vocabBuilder) collect(v *Value) {
	if v == nil {
		return
	}

	switch v.Kind {
	case String:
		b.addText(v.Str)

	case Array:
		for _, item := range v.Items {
			b.collect(item)
		}

	case Object:
		for _, m := range v.Members {
			b.addText(m.Key)
			b.collect(m.Value)
		}
	}
}

func (b *vocabBuilder) addText(s string) {
	for _, w := range wordSplitRE.Split(s, -1) {
		if w == "" {
			continue
		}
		b.addWord(w)
	}

	// Chunks are contiguous multi-word phrases kept intact.
	for _, p := range phraseSplitRE.Split(s, -1) {
		p = strings.TrimSpace(p)
		if p == "" || len(strings.Fields(p)) < 2 {
			continue
		}

		lower := strings.ToLower(p)
		if b.chunkSeen[lower] {
			continue
		}

		b.chunkSeen[lower] = true
		b.chunks = append(b.chunks, p)
	}
}

func (b *vocabBuilder) addWord(w string) {
	lower := strings.ToLower(w)

	if i, ok := b.wordIndex[lower]; ok {
		if len(w) > len(b.words[i]) {
			b.words[i] = w
		}
		return
	}

	b.wordIndex[lower] = len(b.words)
	b.words = append(b.words, w)
}
