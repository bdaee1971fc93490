package usecases

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/ports"
)

// SnippetLimit is the hard character cap for a context chunk snippet.
// The cut is rune-based and has no word-boundary awareness.
const SnippetLimit = 450

// SynonymTable maps a canonical topic to its related words. Expansion is
// symmetric: a token matching either the key or one of its synonyms pulls
// in the whole group.
type SynonymTable map[string][]string

// nonWord splits on the same boundaries the query tokenizer has always
// used: anything outside [0-9A-Za-z_].
var nonWord = regexp.MustCompile(`\W+`)

// Retriever ranks corpus documents against a query using lexical
// overlap plus synonym expansion. The synonym table is configuration
// owned by the instance, not global state; ReplaceSynonyms swaps it
// atomically for hot reload.
type Retriever struct {
	store ports.DocumentStore

	mu       sync.RWMutex
	synonyms SynonymTable
}

// NewRetriever creates a Retriever over the given store. A nil table
// falls back to the built-in defaults.
func NewRetriever(store ports.DocumentStore, synonyms SynonymTable) *Retriever {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Retriever{store: store, synonyms: synonyms}
}

// ReplaceSynonyms swaps the synonym table. Concurrent searches observe
// either the old or the new table, never a mix.
func (r *Retriever) ReplaceSynonyms(synonyms SynonymTable) {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	r.mu.Lock()
	r.synonyms = synonyms
	r.mu.Unlock()
}

// Search scores every document against the query and returns at most topK
// context chunks, best first. Zero-score documents are dropped; an empty
// result is not an error. Equal scores keep corpus insertion order - the
// explicit tie-break, not an accident of sort stability.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]entities.ContextChunk, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: topK must be positive, got %d", entities.ErrInvalidInput, topK)
	}

	docs, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	r.mu.RLock()
	synonyms := r.synonyms
	r.mu.RUnlock()

	tokens := tokenize(query)

	type scoredDoc struct {
		index int
		doc   entities.Document
		score float64
	}
	var scored []scoredDoc
	for i, doc := range docs {
		s := scoreDocument(tokens, doc, synonyms)
		if s > 0 {
			scored = append(scored, scoredDoc{index: i, doc: doc, score: s})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	if len(scored) > topK {
		scored = scored[:topK]
	}

	chunks := make([]entities.ContextChunk, len(scored))
	for i, s := range scored {
		chunks[i] = entities.ContextChunk{
			Title:   s.doc.Title,
			Snippet: truncateRunes(s.doc.Content, SnippetLimit),
		}
	}
	return chunks, nil
}

// scoreDocument adds 1.0 per query token whose expanded term group hits
// the document word set (first hit wins per token), plus 0.5 per raw
// token found as a substring of the full text. Both can fire for the
// same token, so a token contributes at most 1.5.
func scoreDocument(queryTokens []string, doc entities.Document, synonyms SynonymTable) float64 {
	text := strings.ToLower(doc.Title + " " + doc.Content)
	words := make(map[string]bool)
	for _, w := range tokenize(text) {
		words[w] = true
	}

	var score float64
	for _, token := range queryTokens {
		for term := range expandTerms(token, synonyms) {
			if words[term] {
				score += 1.0
				break
			}
		}
		if strings.Contains(text, token) {
			score += 0.5
		}
	}
	return score
}

// expandTerms returns the candidate term set for a token: the token
// itself plus, if it belongs to a synonym group, that group's key and
// every synonym.
func expandTerms(token string, synonyms SynonymTable) map[string]bool {
	terms := map[string]bool{token: true}
	for key, values := range synonyms {
		member := key == token
		for _, v := range values {
			if v == token {
				member = true
				break
			}
		}
		if member {
			terms[key] = true
			for _, v := range values {
				terms[v] = true
			}
		}
	}
	return terms
}

func tokenize(s string) []string {
	var tokens []string
	for _, t := range nonWord.Split(strings.ToLower(s), -1) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
