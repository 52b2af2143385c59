// Package tokenizer превращает сырой английский текст в линейную последовательность токенов.
//
// Текст проходит нормализацию, разбивается по пробелам, а затем через фиксированный
// конвейер ступеней, которые выделяют (isolate), экранируют (escape) и восстанавливают
// (restore) подстроки. Так разбиение по пунктуации не ломает URL, сокращения, числа
// и стяжения. Порядок ступеней важен: каждая следующая опирается на то, что сделали
// предыдущие.
//
// Словари собираются один раз и дальше не изменяются, поэтому один Tokenizer можно
// использовать из многих горутин одновременно.
package tokenizer

// Token - токен текста. Значение неизменяемо: ступени конвейера не правят токены
// на месте, а строят новые последовательности.
type Token struct {
	Text      string `json:"text"`      // Текст токена.
	Protected bool   `json:"protected"` // Защищен от дальнейшего разбиения и переписывания.
}

// Pending возвращает незащищенный токен, который еще могут переписывать следующие ступени.
func Pending(text string) Token {
	return Token{Text: text}
}

// Protected возвращает защищенный токен.
func Protected(text string) Token {
	return Token{Text: text, Protected: true}
}

// Texts возвращает тексты токенов в исходном порядке.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
