package tokenizer

import "strings"

// splitCompound ищет незащищенный токен в словаре составных слов. При совпадении
// токен заменяется частями исходного регистра, каждая часть защищена.
// ok == false, если токен не составное слово.
func (d *Dictionaries) splitCompound(text string) (parts []Token, ok bool) {
	lower := strings.ToLower(text)
	if len(lower) != len(text) {
		// Смещения считаются в байтах; если смена регистра поменяла длину, они не применимы.
		return nil, false
	}
	spans, ok := d.compounds[lower]
	if !ok || !partitions(spans, len(text)) {
		return nil, false
	}
	parts = make([]Token, len(spans))
	for i, s := range spans {
		parts[i] = Protected(text[s.start:s.end])
	}
	return parts, true
}

// partitions проверяет, что отрезки покрывают [0, n) подряд, без дыр и наложений.
func partitions(spans []span, n int) bool {
	at := 0
	for _, s := range spans {
		if s.start != at || s.end <= s.start {
			return false
		}
		at = s.end
	}
	return at == n
}

// compoundStage - ступень разбиения составных слов.
func compoundStage(d *Dictionaries) stage {
	return stage{name: "split-compounds", apply: func(tokens []Token) []Token {
		out := make([]Token, 0, len(tokens))
		for _, t := range tokens {
			if !t.Protected {
				if parts, ok := d.splitCompound(t.Text); ok {
					out = append(out, parts...)
					continue
				}
			}
			out = append(out, t)
		}
		return out
	}}
}
