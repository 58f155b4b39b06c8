package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/config"
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

// NounExtractor extracts nouns from Korean text via morphological analysis.
// Implementations are optional; extraction falls back to the simple tokenizer
// when none is injected or the call fails.
type NounExtractor interface {
	Nouns(text string) ([]string, error)
}

// TaggedToken is one token with its part-of-speech tag (Penn Treebank style,
// e.g. "NN", "NNS", "JJ").
type TaggedToken struct {
	Text string
	Tag  string
}

// POSTagger tags English tokens with parts of speech. Optional, with the same
// fallback contract as NounExtractor.
type POSTagger interface {
	Tag(text string) ([]TaggedToken, error)
}

var (
	urlRegexp     = regexp.MustCompile(`https?://\S+`)
	wwwRegexp     = regexp.MustCompile(`www\.[\w.-]+\.\w+`)
	nonWordRegexp = regexp.MustCompile(`[^\w\s가-힣]`)
	numericRegexp = regexp.MustCompile(`^[0-9]+$`)
)

var urlFragmentSuffixes = []string{".com", ".net", ".org", ".kr", ".co"}

// Extractor produces frequency-ranked keyword lists from free text.
// It never fails: malformed or empty input yields an empty result.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Extractor struct {
	koreanStopwords  map[string]struct{}
	englishStopwords map[string]struct{}
	nounExtractor    NounExtractor
	posTagger        POSTagger
	minTokenLength   int
	maxTokenLength   int
}

// NewExtractor creates an Extractor with the default stopword lists.
func NewExtractor(cfg config.KeywordConfig) *Extractor {
	minLen := cfg.MinTokenLength
	if minLen <= 0 {
		minLen = 2
	}
	maxLen := cfg.MaxTokenLength
	if maxLen <= 0 {
		maxLen = 20
	}

	return &Extractor{
		koreanStopwords:  newStopwordSet(defaultKoreanStopwords),
		englishStopwords: newStopwordSet(defaultEnglishStopwords),
		minTokenLength:   minLen,
		maxTokenLength:   maxLen,
	}
}

// SetNounExtractor injects a Korean morphological analyzer (optional).
func (e *Extractor) SetNounExtractor(ne NounExtractor) {
	e.nounExtractor = ne
}

// SetPOSTagger injects an English part-of-speech tagger (optional).
func (e *Extractor) SetPOSTagger(pt POSTagger) {
	e.posTagger = pt
}

// Extract returns up to maxKeywords frequency-ranked keywords from text.
// Language "auto" resolves via DetectLanguage. The Korean and English paths
// require their injected capability and degrade silently to the simple
// tokenizer without it.
func (e *Extractor) Extract(text string, language models.Language, maxKeywords int) []models.KeywordEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if language == models.LanguageAuto || language == "" {
		language = DetectLanguage(text)
	}

	switch language {
	case models.LanguageKorean:
		if e.nounExtractor != nil {
			if entries, err := e.extractKorean(text, maxKeywords); err == nil {
				return entries
			}
		}
	case models.LanguageEnglish:
		if e.posTagger != nil {
			if entries, err := e.extractEnglish(text, maxKeywords); err == nil {
				return entries
			}
		}
	}

	return e.extractSimple(text, maxKeywords)
}

// extractKorean keeps nouns produced by the morphological analyzer.
func (e *Extractor) extractKorean(text string, maxKeywords int) ([]models.KeywordEntry, error) {
	nouns, err := e.nounExtractor.Nouns(text)
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(nouns))
	for _, noun := range nouns {
		word := strings.ToLower(noun)
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if !e.passesFilters(word, e.koreanStopwords) {
			continue
		}
		filtered = append(filtered, word)
	}

	return rankByFrequency(filtered, maxKeywords), nil
}

// extractEnglish keeps nouns and adjectives identified by the tagger.
func (e *Extractor) extractEnglish(text string, maxKeywords int) ([]models.KeywordEntry, error) {
	tagged, err := e.posTagger.Tag(strings.ToLower(text))
	if err != nil {
		return nil, err
	}

	filtered := make([]string, 0, len(tagged))
	for _, tok := range tagged {
		if !strings.HasPrefix(tok.Tag, "NN") && !strings.HasPrefix(tok.Tag, "JJ") {
			continue
		}
		word := tok.Text
		if utf8.RuneCountInString(word) <= 2 || !isAlpha(word) {
			continue
		}
		if !e.passesFilters(word, e.englishStopwords) {
			continue
		}
		filtered = append(filtered, word)
	}

	return rankByFrequency(filtered, maxKeywords), nil
}

// extractSimple is the always-available fallback path: strip URLs, keep word
// and Hangul characters, split on whitespace, lowercase, filter, count.
func (e *Extractor) extractSimple(text string, maxKeywords int) []models.KeywordEntry {
	cleaned := urlRegexp.ReplaceAllString(text, "")
	cleaned = wwwRegexp.ReplaceAllString(cleaned, "")
	cleaned = nonWordRegexp.ReplaceAllString(cleaned, " ")

	var filtered []string
	for _, token := range strings.Fields(cleaned) {
		word := strings.ToLower(token)
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, ok := e.koreanStopwords[word]; ok {
			continue
		}
		if !e.passesFilters(word, e.englishStopwords) {
			continue
		}
		filtered = append(filtered, word)
	}

	return rankByFrequency(filtered, maxKeywords)
}

// passesFilters applies the shared reject rules: numeric tokens, stopwords,
// URL fragments, and meaningless words.
func (e *Extractor) passesFilters(word string, stopwords map[string]struct{}) bool {
	if numericRegexp.MatchString(word) {
		return false
	}
	if _, ok := stopwords[word]; ok {
		return false
	}
	if isURLFragment(word) {
		return false
	}
	if e.isMeaningless(word) {
		return false
	}
	return true
}

// isURLFragment reports whether a token looks like a piece of a URL or a
// platform name rather than a topical term.
func isURLFragment(word string) bool {
	if strings.HasPrefix(word, "www") || strings.HasPrefix(word, "http") {
		return true
	}
	for _, suffix := range urlFragmentSuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return strings.Contains(word, "youtube") || strings.Contains(word, "youtu.be")
}

// isMeaningless rejects repeated-character spam (laughter and crying
// interjections), tokens without any word or Hangul character, and tokens
// outside the configured length bounds.
func (e *Extractor) isMeaningless(word string) bool {
	runes := []rune(word)
	if len(runes) < e.minTokenLength || len(runes) > e.maxTokenLength {
		return true
	}

	if len(runes) >= 3 {
		repeated := true
		for _, r := range runes[1:] {
			if r != runes[0] {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}

	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || isHangul(r) {
			return false
		}
	}
	return true
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}

// rankByFrequency counts token frequencies and returns them ordered by
// descending frequency. Ties keep first-encountered order (stable sort),
// so re-running on identical text yields identical output.
func rankByFrequency(tokens []string, maxKeywords int) []models.KeywordEntry {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	entries := make([]models.KeywordEntry, 0, len(order))
	for _, term := range order {
		entries = append(entries, models.KeywordEntry{Term: term, Frequency: counts[term]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if maxKeywords > 0 && len(entries) > maxKeywords {
		entries = entries[:maxKeywords]
	}
	return entries
}
