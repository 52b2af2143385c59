package tokenizer

import "strings"

// escapeKind - вид экранирования. Каждый вид прячет один знак препинания за своим
// приватным кодом, чтобы ступени, режущие по пунктуации, его не видели.
// Коды лежат в области частного использования Unicode (U+E000...), во входном
// тексте их не бывает, поэтому восстановление однозначно.
type escapeKind int

const (
	// Цифра-знак-цифра (D0D). Первые шесть видов соответствуют знакам d0dMarks по индексу.
	escapeD0DPeriod escapeKind = iota
	escapeD0DComma
	escapeD0DColon
	escapeD0DHyphen
	escapeD0DSlash
	escapeD0DApostrophe

	escapeHyphen     // Дефис в словах из белого списка.
	escapePeriod     // Точка между буквами/цифрами (режим user-id).
	escapeApostrophe // Апостроф внутри слова: rock'n'roll.
	escapeAmpersand  // Амперсанд между заглавными: AT&T.

	numEscapeKinds
)

// privateUseBase - первый код области частного использования Unicode.
const privateUseBase = '\uE000'

// d0dMarks - знаки, которые прячутся между цифрами. Индекс знака равен его коду.
var d0dMarks = [...]string{".", ",", ":", "-", "/", "'"}

var escapeMarks = [numEscapeKinds]string{
	escapeD0DPeriod:     ".",
	escapeD0DComma:      ",",
	escapeD0DColon:      ":",
	escapeD0DHyphen:     "-",
	escapeD0DSlash:      "/",
	escapeD0DApostrophe: "'",
	escapeHyphen:        "-",
	escapePeriod:        ".",
	escapeApostrophe:    "'",
	escapeAmpersand:     "&",
}

var escapeNames = [numEscapeKinds]string{
	"d0d-period", "d0d-comma", "d0d-colon", "d0d-hyphen", "d0d-slash", "d0d-apostrophe",
	"hyphen", "period", "apostrophe", "ampersand",
}

func (k escapeKind) String() string {
	if k < 0 || k >= numEscapeKinds {
		return "unknown"
	}
	return escapeNames[k]
}

// mark возвращает знак, который прячет этот вид.
func (k escapeKind) mark() string {
	return escapeMarks[k]
}

// code возвращает приватный код этого вида.
func (k escapeKind) code() string {
	return string(privateUseBase + rune(k))
}

// encode заменяет каждое вхождение знака в s на код.
func (k escapeKind) encode(s string) string {
	return strings.ReplaceAll(s, k.mark(), k.code())
}

// decode возвращает на место знаки, спрятанные этим видом.
func (k escapeKind) decode(s string) string {
	if !strings.Contains(s, k.code()) {
		return s
	}
	return strings.ReplaceAll(s, k.code(), k.mark())
}

// hasPrivateCode сообщает, есть ли в s хотя бы один код любого вида.
func hasPrivateCode(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r >= privateUseBase && r < privateUseBase+rune(numEscapeKinds)
	}) >= 0
}
