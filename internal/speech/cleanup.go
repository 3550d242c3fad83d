package speech

import (
	"regexp"
	"strings"
)

var (
	reMarkdown = regexp.MustCompile(`\*\*|\*|_`)
	reBullets  = regexp.MustCompile(`[-•●▪\x{FE0F}►]+`)
	reEmoji    = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}]+`)
	reSymbols  = regexp.MustCompile(`[#@|<>]`)
	reSpaces   = regexp.MustCompile(`[\s\p{Z}]+`)
)

// CleanForTTS - убираем то, что синтезатор читает вслух как мусор
func CleanForTTS(text string) string {
	text = reMarkdown.ReplaceAllString(text, "")
	text = reBullets.ReplaceAllString(text, " ")
	text = reEmoji.ReplaceAllString(text, "")
	text = reSymbols.ReplaceAllString(text, "")
	text = reSpaces.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
