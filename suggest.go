package jsonpad

import (
	"slices"
	"strings"
)

// CandidateKind tags the origin of a completion candidate.
type CandidateKind string

const (
	CandidateText     CandidateKind = "text"
	CandidateWord     CandidateKind = "word"
	CandidatePhrase   CandidateKind = "phrase"
	CandidateProperty CandidateKind = "property"
)

// Candidate is a single completion returned to the host editor. No two
// candidates of one request share a case-insensitive InsertText.
type Candidate struct {
	Label      string
	InsertText string
	Kind       CandidateKind
	Detail     string
	SortText   string
}

// Sort prefixes: sibling properties first, words and the auto-quoted token
// next, phrases last.
const (
	sortProperty = "0_"
	sortWord     = "1_"
	sortPhrase   = "2_"
)

var stopWords = map[string]bool{
	"and": true, "or": true, "the": true, "a": true, "an": true,
	"is": true, "are": true, "was": true, "were": true, "has": true,
	"have": true, "had": true, "to": true, "of": true, "in": true,
	"for": true, "on": true, "at": true, "by": true, "from": true,
	"with": true, "as": true, "but": true, "not": true, "be": true,
	"been": true, "it": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "you": true, "he": true, "she": true,
	"we": true, "they": true,
}

// suppressed reports whether a candidate or token must never be offered:
// anything containing '$' or the word "schema" (a standing policy against
// schema-reference leakage).
func suppressed(s string) bool {
	return strings.Contains(s, "$") ||
		strings.Contains(strings.ToLower(s), "schema")
}

// CompletionsAt is the completion-provider entry point: it analyzes the
// cursor context at offset, harvests the document vocabulary (falling back
// to raw-text extraction when the document does not parse), and generates
// candidates.
func CompletionsAt(text string, offset int) []Candidate {
	ctx := AnalyzeCursor(text, offset)

	doc, err := Parse(text)

	var vocab Vocabulary
	if err != nil {
		doc = nil
		vocab = ExtractVocabularyText(text)
	} else {
		vocab = ExtractVocabulary(doc)
	}

	return Suggest(ctx, doc, vocab)
}

// Suggest generates completion candidates for the given cursor context. doc
// may be nil when the document does not parse; sibling-property candidates
// are skipped in that case. Candidates are deduplicated globally by
// case-insensitive insert text (first occurrence wins) and returned in
// SortText order.
func Suggest(ctx CursorContext, doc *Value, vocab Vocabulary) []Candidate {
	if suppressed(ctx.Text) {
		return nil
	}

	g := &suggester{
		ctx:     ctx,
		token:   strings.ToLower(ctx.Text),
		seen:    map[string]bool{},
		offered: map[string]bool{},
	}

	g.addTypedText()
	g.addWords(vocab.Words)
	g.addChunks(vocab.Chunks)
	g.addSiblingProperties(doc)

	slices.SortStableFunc(g.out, func(a, b Candidate) int {
		return strings.Compare(a.SortText, b.SortText)
	})

	return g.out
}

type suggester struct {
	ctx     CursorContext
	token   string
	seen    map[string]bool
	offered map[string]bool
	out     []Candidate
}

// addTypedText offers the raw typed token wrapped in quotes, so a value the
// document has never seen can still be completed into a valid string.
func (g *suggester) addTypedText() {
	if g.ctx.InsideQuotes || g.ctx.Text == "" {
		return
	}

	quoted := `"` + g.ctx.Text + `"`

	g.add(Candidate{
		Label:      quoted,
		InsertText: quoted,
		Kind:       CandidateText,
		SortText:   sortWord + g.token,
	})
}

func (g *suggester) addWords(words []string) {
	for _, w := range words {
		lower := strings.ToLower(w)

		if g.token != "" && !strings.Contains(lower, g.token) {
			continue
		}

		// Stop-words only surface when typed out exactly.
		if stopWords[lower] && lower != g.token {
			continue
		}

		g.offered[lower] = true

		g.add(Candidate{
			Label:      w,
			InsertText: g.wrap(w),
			Kind:       CandidateWord,
			SortText:   sortWord + lower,
		})
	}
}

func (g *suggester) addChunks(chunks []string) {
	for _, chunk := range chunks {
		words := strings.Fields(chunk)
		if len(words) < 2 {
			continue
		}

		lower := strings.ToLower(chunk)
		if g.token != "" && !strings.Contains(lower, g.token) {
			continue
		}

		// A phrase whose every word was already offered individually adds
		// only noise.
		covered := true
		for _, w := range words {
			if !g.offered[strings.ToLower(w)] {
				covered = false
				break
			}
		}
		if covered {
			continue
		}

		g.add(Candidate{
			Label:      chunk,
			InsertText: g.wrap(chunk),
			Kind:       CandidatePhrase,
			SortText:   sortPhrase + lower,
		})
	}
}

// addSiblingProperties offers property names that appear next to the
// context key elsewhere in the document: for every object containing the
// key, its other member keys.
func (g *suggester) addSiblingProperties(doc *Value) {
	if doc == nil || len(g.ctx.Path) != 1 {
		return
	}

	for _, key := range siblingKeys(doc, g.ctx.Path[0]) {
		g.add(Candidate{
			Label:      key,
			InsertText: `"` + key + `"`,
			Kind:       CandidateProperty,
			Detail:     "property",
			SortText:   sortProperty + strings.ToLower(key),
		})
	}
}

func (g *suggester) wrap(s string) string {
	if g.ctx.InsideQuotes {
		return s
	}

	return `"` + s + `"`
}

func (g *suggester) add(c Candidate) {
	if suppressed(c.InsertText) {
		return
	}

	key := strings.ToLower(c.InsertText)
	if g.seen[key] {
		return
	}

	g.seen[key] = true
	g.out = append(g.out, c)
}

func siblingKeys(v *Value, key string) []string {
	var out []string

	var walk func(*Value)
	walk = func(v *Value) {
		if v == nil {
			return
		}

		switch v.Kind {
		case Object:
			has := v.Get(key) != nil
			for _, m := range v.Members {
				if has && m.Key != key {
					out = append(out, m.Key)
				}
				walk(m.Value)
			}

		case Array:
			for _, item := range v.Items {
				walk(item)
			}
		}
	}
	walk(v)

	return out
}
