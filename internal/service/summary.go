package service

import "strings"

// MaxFeedbackWords is the number of words a summary keeps.
const MaxFeedbackWords = 50

const ellipsis = "..."

// Summarize truncates feedback to its first MaxFeedbackWords
// whitespace-separated words followed by "...". Shorter feedback is returned
// unchanged, original spacing included.
func Summarize(feedback string) string {
	words := strings.Fields(feedback)
	if len(words) <= MaxFeedbackWords {
		return feedback
	}
	return strings.Join(words[:MaxFeedbackWords], " ") + ellipsis
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
