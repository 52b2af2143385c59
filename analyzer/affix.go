// affix.go содержит аффиксный движок: упорядоченный список матчеров, каждый из которых
// отвечает за один класс словоформ (3-е лицо, герундий, множественное число ...).
// Матчер порождает кандидатов на основу цепочкой заменителей и проверяет их по словарю основ.
// Никаких весов и ранжирования нет: побеждает первый найденный кандидат.
package analyzer

import (
	"regexp"
	"strings"
)

// --- СТРУКТУРЫ ДАННЫХ ---

// Morpheme - морфема: строка и ее тег.
type Morpheme struct {
	Form string `json:"form"` // Строка морфемы: "study", "-s".
	POS  string `json:"pos"`  // Тег: "VB" для основы, "I_3PS" для аффикса.
}

// Decomposition - результат разбора словоформы на основу и аффикс.
type Decomposition struct {
	Base  Morpheme `json:"base"`
	Affix Morpheme `json:"affix"`
}

// Lexicon - словарь основ одной части речи.
// Lookup возвращает тег основы; пустой тег означает "взять base_pos матчера".
type Lexicon interface {
	Lookup(base string) (pos string, ok bool)
}

// WordSet - простейший словарь основ: множество строк без собственных тегов.
type WordSet map[string]struct{}

// NewWordSet собирает WordSet из списка основ.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Lookup реализует Lexicon.
func (s WordSet) Lookup(base string) (string, bool) {
	_, ok := s[base]
	return "", ok
}

// --- ЗАМЕНИТЕЛИ ---

// AffixReplacer - чистая функция "словоформа -> кандидат на основу".
// ok == false, если заменитель к форме не применим.
type AffixReplacer interface {
	Replace(form string) (base string, ok bool)
}

// SuffixReplacer отрезает Suffix и дописывает Base: studies -> study (ies/y).
type SuffixReplacer struct {
	Suffix string
	Base   string
}

func (r SuffixReplacer) Replace(form string) (string, bool) {
	if len(form) <= len(r.Suffix) || !strings.HasSuffix(form, r.Suffix) {
		return "", false
	}
	return form[:len(form)-len(r.Suffix)] + r.Base, true
}

// DoubledReplacer отрезает Suffix и снимает удвоение последней согласной:
// running -> run, bigger -> big, quizzes -> quiz.
type DoubledReplacer struct {
	Suffix string
}

func (r DoubledReplacer) Replace(form string) (string, bool) {
	if len(form) <= len(r.Suffix) || !strings.HasSuffix(form, r.Suffix) {
		return "", false
	}
	stem := form[:len(form)-len(r.Suffix)]
	n := len(stem)
	if n < 2 || stem[n-1] != stem[n-2] || !isConsonant(stem[n-1]) {
		return "", false
	}
	return stem[:n-1], true
}

// ExceptionReplacer ищет форму в таблице неправильных форм: took -> take.
type ExceptionReplacer struct {
	Table map[string]string
}

func (r ExceptionReplacer) Replace(form string) (string, bool) {
	base, ok := r.Table[form]
	return base, ok
}

func isConsonant(b byte) bool {
	if b < 'a' || b > 'z' {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(b))
}

// --- МАТЧЕР ---

// AffixMatcher - правило для одного класса словоформ.
type AffixMatcher struct {
	Affix     string          // Каноническая форма аффикса: "-s", "-ed".
	AffixPOS  string          // Тег аффикса: I_3PS, I_PLR ...
	BasePOS   string          // Тег основы, если словарь его не знает.
	POSGate   *regexp.Regexp  // Фильтр по тегу словоформы; nil - любой тег.
	Replacers []AffixReplacer // Цепочка кандидатов, в порядке приоритета.
}

// MatchesPOS сообщает, допускает ли фильтр матчера тег pos.
// Шаблону достаточно совпасть с частью тега.
func (m *AffixMatcher) MatchesPOS(pos string) bool {
	return m.POSGate == nil || m.POSGate.MatchString(pos)
}

// Decompose проходит по цепочке заменителей и возвращает первый кандидат,
// найденный в lex. Фильтр по тегу здесь не проверяется, это делает Engine.
func (m *AffixMatcher) Decompose(form string, lex Lexicon) (Decomposition, bool) {
	for _, r := range m.Replacers {
		base, ok := r.Replace(form)
		if !ok || base == "" {
			continue
		}
		pos, ok := lex.Lookup(base)
		if !ok {
			continue
		}
		if pos == "" {
			pos = m.BasePOS
		}
		return Decomposition{
			Base:  Morpheme{Form: base, POS: pos},
			Affix: Morpheme{Form: m.Affix, POS: m.AffixPOS},
		}, true
	}
	return Decomposition{}, false
}

// --- ДВИЖОК ---

// Engine - замороженный упорядоченный список матчеров. Приоритет - позиция в списке.
type Engine struct {
	matchers []*AffixMatcher
}

// NewEngine создает движок. Срез копируется: дальнейшие изменения у вызывающего
// на движок не влияют.
func NewEngine(matchers ...*AffixMatcher) *Engine {
	return &Engine{matchers: append([]*AffixMatcher(nil), matchers...)}
}

// Len возвращает число матчеров.
func (e *Engine) Len() int {
	return len(e.matchers)
}

// Decompose разбирает словоформу form (в нижнем регистре) с тегом pos.
// Матчеры перебираются по приоритету, первый успех сразу возвращается.
// ok == false - штатный исход "разбора нет", не ошибка.
func (e *Engine) Decompose(form, pos string, lex Lexicon) (Decomposition, bool) {
	if lex == nil || form == "" {
		return Decomposition{}, false
	}
	for _, m := range e.matchers {
		if !m.MatchesPOS(pos) {
			continue
		}
		if d, ok := m.Decompose(form, lex); ok {
			return d, true
		}
	}
	return Decomposition{}, false
}
