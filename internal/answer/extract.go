// Package answer 实现了模型回答的后处理：识别“只要单词”类请求，
// 并把自由文本回答改写成受约束的单词列表。
package answer

import (
	"regexp"
	"strconv"
	"strings"
)

// 命中任意一条短语即认为学生只想要单词列表。
var wordListPhrases = []string{
	"only words",
	"just words",
	"not a passage",
	"not a paragraph",
	"no explanation",
}

var (
	requestedCountRe = regexp.MustCompile(`(?i)(\d+)\s*words?`)
	startingLetterRe = regexp.MustCompile(`(?i)starting\s+with\s+([a-zA-Z])`)
)

// WantsWordList 判断文本是否在要求单词列表式的回答。
// 对小写化后的输入做子串匹配，任一短语命中即返回 true。
func WantsWordList(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range wordListPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ExtractWords 从文本中提取单词序列。
// ASCII 字母和空白以外的字符一律替换为空格，再按空白切分。
// 因此连字符或带重音的词会被拆开，这是有意保持的行为。
func ExtractWords(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// ExtractRequestedCount 提取 "<数字> word(s)" 形式的请求数量。
// 未出现时返回 (0, false)。
func ExtractRequestedCount(text string) (int, bool) {
	m := requestedCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractStartingLetter 提取 "starting with <字母>" 形式的首字母要求。
// 返回小写字母；未出现时返回 ("", false)。
func ExtractStartingLetter(text string) (string, bool) {
	m := startingLetterRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
