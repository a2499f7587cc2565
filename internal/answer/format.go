package answer

import "strings"

// Format 根据触发消息有条件地改写模型回答。
//
// 触发消息没有提出单词列表要求时，原样返回 rawAnswer。
// 否则从 rawAnswer 提取单词，依次执行：按要求的首字母过滤（不区分大小写）、
// 按小写形式去重（保留首次出现顺序）、按要求的数量截断，
// 最后用 ", " 拼接成新的回答。
//
// 提取不到单词、过滤后为空、或要求的数量 N <= 0 时，结果都是空字符串。
func Format(rawAnswer, triggeringMessage string) string {
	if !WantsWordList(triggeringMessage) {
		return rawAnswer
	}

	words := ExtractWords(rawAnswer)

	if letter, ok := ExtractStartingLetter(triggeringMessage); ok {
		filtered := words[:0]
		for _, w := range words {
			if strings.HasPrefix(strings.ToLower(w), letter) {
				filtered = append(filtered, w)
			}
		}
		words = filtered
	}

	// 去重以小写形式为键，迭代顺序必须是首次出现顺序，截断依赖这一点。
	seen := make(map[string]struct{}, len(words))
	deduped := make([]string, 0, len(words))
	for _, w := range words {
		key := strings.ToLower(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, key)
	}

	if n, ok := ExtractRequestedCount(triggeringMessage); ok {
		if n <= 0 {
			deduped = nil
		} else if n < len(deduped) {
			deduped = deduped[:n]
		}
	}

	return strings.Join(deduped, ", ")
}
