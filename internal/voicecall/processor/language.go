package processor

import (
	"strings"

	"voice-assist-server/internal/session"
)

// DetectLanguage classifies an utterance as Hindi when it contains any
// Devanagari character, English otherwise. Romanized Hindi therefore
// classifies as English; callers should not try to correct for that.
func DetectLanguage(text string) session.Language {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return session.LanguageHindi
		}
	}
	return session.LanguageEnglish
}

var exitPhrasesEnglish = []string{
	"goodbye",
	"bye",
	"thank you",
	"thanks",
	"that's all",
	"nothing else",
}

var exitPhrasesHindi = []string{
	"अलविदा",
	"धन्यवाद",
	"शुक्रिया",
	"बस इतना ही",
	"और कुछ नहीं",
}

// isExitIntent reports whether the utterance signals the caller wants to
// end the call. Matching is case-insensitive substring containment, so
// "thanks, what about pricing" still ends the call. That over-matching
// mirrors the live behavior callers are used to.
func isExitIntent(utterance string) bool {
	lowered := strings.ToLower(utterance)
	for _, phrase := range exitPhrasesEnglish {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	for _, phrase := range exitPhrasesHindi {
		if strings.Contains(utterance, phrase) {
			return true
		}
	}
	return false
}

func closingLine(lang session.Language) string {
	if lang == session.LanguageHindi {
		return "कॉल करने के लिए धन्यवाद। आपका दिन शुभ हो! अलविदा।"
	}
	return "Thank you for calling. Have a great day! Goodbye."
}
