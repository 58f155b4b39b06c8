// Package keywords implements the language-aware keyword extraction and
// aggregation pipeline for video metadata.
package keywords

import (
	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

// koreanRatioCutoff is the Hangul share above which text is classified as Korean.
const koreanRatioCutoff = 0.3

// DetectLanguage classifies text as Korean or English by character ratio.
// Only Hangul syllables and Latin letters count toward the ratio; text with
// neither is treated as English.
func DetectLanguage(text string) models.Language {
	var korean, total int
	for _, r := range text {
		switch {
		case isHangul(r):
			korean++
			total++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			total++
		}
	}

	if total == 0 {
		return models.LanguageEnglish
	}

	if float64(korean)/float64(total) > koreanRatioCutoff {
		return models.LanguageKorean
	}
	return models.LanguageEnglish
}

// isHangul reports whether r is inside the Hangul syllable block.
func isHangul(r rune) bool {
	return r >= '가' && r <= '힣'
}
