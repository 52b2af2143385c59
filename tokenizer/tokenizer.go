package tokenizer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/resources"
)

// Options - переключатели конвейера. Нулевое значение - обычный режим.
type Options struct {
	UserIDMode bool // Прятать точки между буквами/цифрами: "john.smith" остается одним токеном.
	SocialTags bool // Защищать @user и #tag.
	UnicodeNFC bool // Приводить текст к NFC до таблицы non-utf8.
}

// Tokenizer - собранный конвейер. После New ничего не изменяется.
type Tokenizer struct {
	normalizer *Normalizer
	stages     []stage
}

// Load собирает словари из src и создает по ним токенизатор.
func Load(src resources.Source, opts Options) (*Tokenizer, error) {
	dict, err := LoadDictionaries(src)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки словарей токенизатора: %w", err)
	}
	return New(dict, opts), nil
}

// New строит конвейер в фиксированном порядке. Порядок важен: структурные ступени
// выделения идут до экранирования, а восстановление - в самом конце.
func New(dict *Dictionaries, opts Options) *Tokenizer {
	var stages []stage
	add := func(s ...stage) { stages = append(stages, s...) }

	// 0. Смайлики до любого разбиения, иначе ":-)" рассыплется на скобках.
	add(protect("protect-emoticons", dict.isEmoticon))

	// 1-4. Структура: URL, остатки сокращений, повторы, US$.
	add(
		isolate("isolate-url", reURL, 0),
		isolate("isolate-abbreviation-remnant", reAbbreviationRemnant, 1),
		isolate("isolate-repeated-terminal", reRepeatedTerminal, 0),
		isolate("isolate-repeated-marker", reRepeatedMarker, 0),
		isolate("isolate-us-dollar", reUSDollar, 0),
	)

	// 5. D0D, по проходу на знак.
	for i := range d0dMarks {
		kind := escapeKind(i)
		add(escape("escape-"+kind.String(), kind, d0dPatterns[i]...))
	}

	// 6-8.
	add(
		escapeHyphens(dict.hyphens),
		isolate("isolate-leading-punct", reLeadingPunct, 0),
		protect("protect-abbreviations", dict.isAbbreviation),
		protect("protect-filenames", isFilename),
	)
	if opts.SocialTags {
		add(protect("protect-social-tags", isSocialTag))
	}

	// 9-13.
	add(
		compoundStage(dict),
		isolate("isolate-contraction", reContraction, 0),
	)
	if opts.UserIDMode {
		add(escape("escape-period", escapePeriod, rePeriodInWord))
	}
	add(
		escape("escape-ampersand", escapeAmpersand, reAmpersandInUpper),
		escape("escape-apostrophe", escapeApostrophe, reApostropheInWord),
	)

	// 14. Границы знак|число, валюта|число, число|валюта, число|единица.
	for i, name := range [...]string{"split-sign", "split-currency-prefix", "split-currency-suffix", "split-unit"} {
		add(split(name, dict.units[i]))
	}

	// 15.
	add(isolate("isolate-trailing-punct", reTrailingPunct, 0))

	// 16-20. Восстановление.
	for i := range d0dMarks {
		add(restore(escapeKind(i)))
	}
	if opts.UserIDMode {
		add(restore(escapePeriod))
	}
	add(
		restore(escapeHyphen),
		restore(escapeApostrophe),
		restore(escapeAmpersand),
	)

	log.Debug().
		Int("stages", len(stages)).
		Bool("user_id_mode", opts.UserIDMode).
		Bool("social_tags", opts.SocialTags).
		Msg("конвейер токенизатора собран")

	return &Tokenizer{
		normalizer: NewNormalizer(dict, opts.UnicodeNFC),
		stages:     stages,
	}
}

// Tokenize разбивает текст на токены. Не падает ни на какой строке;
// пустой текст дает пустой список.
func (t *Tokenizer) Tokenize(text string) []Token {
	tokens := splitWhitespace(t.normalizer.Normalize(text))
	for _, s := range t.stages {
		if len(tokens) == 0 {
			break
		}
		tokens = s.apply(tokens)
	}
	return tokens
}

// Words - то же, что Tokenize, но возвращает только тексты.
func (t *Tokenizer) Words(text string) []string {
	return Texts(t.Tokenize(text))
}

// StageNames возвращает имена ступеней в порядке выполнения.
func (t *Tokenizer) StageNames() []string {
	names := make([]string, len(t.stages))
	for i, s := range t.stages {
		names[i] = s.name
	}
	return names
}
