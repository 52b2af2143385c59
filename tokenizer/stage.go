package tokenizer

import (
	"regexp"
	"strings"
)

// stage - одна ступень конвейера. apply не изменяет входной срез, а возвращает новый.
type stage struct {
	name  string
	apply func(tokens []Token) []Token
}

// --- ВЫДЕЛЕНИЕ (ISOLATE) ---

// isolate выделяет каждое совпадение группы group шаблона re в отдельный защищенный токен.
// Куски токена до и после совпадения остаются незащищенными.
// Защищенные токены пропускаются без изменений.
func isolate(name string, re *regexp.Regexp, group int) stage {
	return stage{name: name, apply: func(tokens []Token) []Token {
		out := make([]Token, 0, len(tokens))
		for _, t := range tokens {
			if t.Protected {
				out = append(out, t)
				continue
			}
			out = isolateText(out, t.Text, re, group)
		}
		return out
	}}
}

func isolateText(out []Token, text string, re *regexp.Regexp, group int) []Token {
	last := 0
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[2*group], m[2*group+1]
		if start < 0 || start == end {
			continue
		}
		out = appendPending(out, text[last:start])
		out = append(out, Protected(text[start:end]))
		last = end
	}
	return appendPending(out, text[last:])
}

// appendPending добавляет незащищенные куски s, разрезая по пробелам. Пустые куски выкидываются.
func appendPending(out []Token, s string) []Token {
	if s == "" {
		return out
	}
	for _, field := range strings.Fields(s) {
		out = append(out, Pending(field))
	}
	return out
}

// --- ГРАНИЦЫ (SPLIT) ---

// split вставляет границу токена после группы 1 каждого совпадения re.
// Получившиеся куски остаются незащищенными: так знак/валюта/единица отделяется от числа.
func split(name string, re *regexp.Regexp) stage {
	return stage{name: name, apply: func(tokens []Token) []Token {
		out := make([]Token, 0, len(tokens))
		for _, t := range tokens {
			if t.Protected {
				out = append(out, t)
				continue
			}
			last := 0
			for _, m := range re.FindAllStringSubmatchIndex(t.Text, -1) {
				cut := m[3]
				if cut <= last || cut >= len(t.Text) {
					continue
				}
				out = appendPending(out, t.Text[last:cut])
				last = cut
			}
			out = appendPending(out, t.Text[last:])
		}
		return out
	}}
}

// --- ЭКРАНИРОВАНИЕ (ESCAPE) ---

// escape прячет группу 2 каждого совпадения шаблонов за кодом вида kind.
// Группы 1 и 3 - контекст, они не меняются. Токен не разрезается.
func escape(name string, kind escapeKind, patterns ...*regexp.Regexp) stage {
	return stage{name: name, apply: func(tokens []Token) []Token {
		out := make([]Token, len(tokens))
		for i, t := range tokens {
			if t.Protected {
				out[i] = t
				continue
			}
			text := t.Text
			for _, re := range patterns {
				text = escapeText(text, re, kind.code())
			}
			out[i] = Pending(text)
		}
		return out
	}}
}

// escapeText повторяет замену, пока шаблон находит совпадения.
// Совпадения FindAll не перекрываются, поэтому в "1,2,3" второй знак
// виден только со второго прохода. Каждый проход убирает хотя бы один знак,
// а коды знаков не содержат, так что цикл конечен.
func escapeText(text string, re *regexp.Regexp, code string) string {
	for {
		matches := re.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			return text
		}
		var b strings.Builder
		b.Grow(len(text) + len(matches)*len(code))
		last, replaced := 0, 0
		for _, m := range matches {
			start, end := m[4], m[5]
			if start < 0 || start == end {
				continue
			}
			b.WriteString(text[last:start])
			b.WriteString(code)
			last = end
			replaced++
		}
		if replaced == 0 {
			return text
		}
		b.WriteString(text[last:])
		text = b.String()
	}
}

// escapeHyphens прячет дефисы в словах из белого списка, чтобы их не разрезала
// ступень завершающей пунктуации. Пунктуация еще не отделена, поэтому со списком
// сравнивается ядро токена без знаков по краям: "(e-mail)," -> "e-mail".
func escapeHyphens(whitelist *regexp.Regexp) stage {
	return stage{name: "escape-hyphens", apply: func(tokens []Token) []Token {
		out := make([]Token, len(tokens))
		for i, t := range tokens {
			if !t.Protected && strings.Contains(t.Text, "-") {
				start, end := punctCore(t.Text)
				if core := t.Text[start:end]; core != "" && whitelist.MatchString(strings.ToLower(core)) {
					t = Pending(t.Text[:start] + escapeHyphen.encode(core) + t.Text[end:])
				}
			}
			out[i] = t
		}
		return out
	}}
}

// punctCore возвращает границы text без ASCII-пунктуации в начале и в конце.
func punctCore(text string) (start, end int) {
	start, end = 0, len(text)
	for start < end && isASCIIPunct(text[start]) {
		start++
	}
	for end > start && isASCIIPunct(text[end-1]) {
		end--
	}
	return start, end
}

// isASCIIPunct соответствует классу [[:punct:]].
func isASCIIPunct(b byte) bool {
	return strings.IndexByte(asciiPunct, b) >= 0
}

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// --- ВОССТАНОВЛЕНИЕ (RESTORE) ---

// restore возвращает знаки вида kind на место. Применяется ко всем токенам, в том числе
// защищенным: защита появилась уже после экранирования, коды в них тоже есть.
func restore(kind escapeKind) stage {
	return stage{name: "restore-" + kind.String(), apply: func(tokens []Token) []Token {
		out := make([]Token, len(tokens))
		for i, t := range tokens {
			out[i] = Token{Text: kind.decode(t.Text), Protected: t.Protected}
		}
		return out
	}}
}

// --- ЗАЩИТА (PROTECT) ---

// protect помечает защищенными незащищенные токены, для которых match возвращает true.
// Защита только добавляется, снять ее нельзя.
func protect(name string, match func(text string) bool) stage {
	return stage{name: name, apply: func(tokens []Token) []Token {
		out := make([]Token, len(tokens))
		for i, t := range tokens {
			if !t.Protected && match(t.Text) {
				t = Protected(t.Text)
			}
			out[i] = t
		}
		return out
	}}
}
