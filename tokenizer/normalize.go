package tokenizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer применяет к сырому тексту таблицу замен non-utf8.
// Замены идут строго в порядке таблицы, каждая - глобальная и буквальная.
type Normalizer struct {
	table []substitution
	nfc   bool // Сначала привести текст к форме NFC.
}

// NewNormalizer создает нормализатор по словарям. nfc включает композицию Unicode
// до замен: так "e" + U+0301 и "é" дают одинаковые токены.
func NewNormalizer(dict *Dictionaries, nfc bool) *Normalizer {
	return &Normalizer{table: dict.nonUTF8, nfc: nfc}
}

// Normalize возвращает нормализованный текст. Функция тотальна: на любой строке
// она завершается, а если ни один шаблон не совпал, текст возвращается как есть.
func (n *Normalizer) Normalize(text string) string {
	if n.nfc {
		text = norm.NFC.String(text)
	}
	for _, s := range n.table {
		text = s.pattern.ReplaceAllLiteralString(text, s.replacement)
	}
	return text
}

// splitWhitespace режет текст по пробельным символам. Пустых токенов не бывает,
// все получившиеся токены незащищены.
func splitWhitespace(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Pending(f)
	}
	return tokens
}
