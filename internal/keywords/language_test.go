package keywords

import (
	"testing"

	"github.com/trendscope/youtube-viral-analyzer-go/internal/models"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Language
	}{
		{
			name: "pure korean",
			text: "오늘의 먹방 브이로그",
			want: models.LanguageKorean,
		},
		{
			name: "pure english",
			text: "daily cooking vlog highlights",
			want: models.LanguageEnglish,
		},
		{
			name: "empty text",
			text: "",
			want: models.LanguageEnglish,
		},
		{
			name: "digits and punctuation only",
			text: "2024!!! 100%",
			want: models.LanguageEnglish,
		},
		{
			name: "mostly english with a korean word",
			text: "my seoul travel guide episode one 서울",
			want: models.LanguageEnglish,
		},
		{
			name: "mostly korean with an english word",
			text: "서울 여행 가이드 첫번째 이야기 vlog",
			want: models.LanguageKorean,
		},
		{
			name: "korean ratio exactly below cutoff",
			// 3 Hangul out of 10 letters = 0.3, not strictly greater
			text: "한국어 abcdefg",
			want: models.LanguageEnglish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
