package keywords

// Curated stopword lists covering grammatical particles, web and platform
// boilerplate, filler interjections, and time words. Terms must already be
// lowercased.

var defaultKoreanStopwords = []string{
	// particles and connectives
	"그", "를", "을", "에", "의", "가", "이", "은", "는", "와", "과", "로", "으로",
	"에서", "까지", "부터", "보다", "처럼", "같이", "하고", "하지만", "그리고",
	"그런데", "그러나", "따라서", "왜냐하면", "때문에", "입니다", "습니다",
	"해요", "이에요", "예요", "네요", "요", "다", "야", "아", "어", "여",

	// URL and web terms
	"www", "http", "https", "com", "net", "org", "kr", "co", "go", "html",
	"php", "asp", "jsp", "url", "link", "site", "page", "web", "blog",

	// platform and social terms
	"youtube", "youtu", "be", "watch", "video", "channel", "subscribe",
	"like", "comment", "share", "follow", "instagram", "facebook", "twitter",
	"tiktok", "shorts", "live", "stream", "streaming",

	// generic fillers
	"더", "많은", "정말", "진짜", "완전", "너무", "아주", "매우", "정말로",
	"이런", "저런", "그런", "어떤", "무슨", "어느", "모든", "전체", "일부",
	"각각", "각자", "서로", "함께", "모두", "전부", "하나", "둘", "셋",

	// time words
	"오늘", "어제", "내일", "지금", "현재", "과거", "미래", "언제", "항상",
	"가끔", "종종", "자주", "때때로", "이제", "벌써", "아직", "still", "already",

	// interjections
	"오", "우", "워", "음", "으", "흠", "헉", "어머", "세상",
	"대박", "ㅋㅋ", "ㅎㅎ", "ㅠㅠ", "ㅜㅜ", "ㅇㅇ", "ㄷㄷ", "ㅉㅉ",

	// counters and units
	"개", "명", "번", "회", "차", "등", "위", "순", "째", "년", "월", "일",
	"시", "분", "초", "원", "만", "억", "천", "백", "십",
}

var defaultEnglishStopwords = []string{
	// function words
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "as", "is", "are", "was", "were", "be", "been",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "can", "this", "that", "these", "those",

	// URL and web terms
	"www", "http", "https", "com", "net", "org", "html", "php", "asp",
	"url", "link", "site", "page", "web", "blog", "domain", "server",

	// platform and media terms
	"youtube", "video", "watch", "channel", "subscribe", "like", "comment",
	"share", "view", "views", "subscriber", "followers", "content",
	"media", "social", "platform", "streaming", "live", "upload",

	// generic fillers
	"more", "most", "very", "really", "just", "only", "also", "even",
	"still", "already", "yet", "now", "then", "here", "there", "where",
	"what", "when", "why", "how", "who", "which", "all", "some", "any",
	"each", "every", "both", "either", "neither", "other", "another",
}

func newStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
