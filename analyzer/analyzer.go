// Этот файл содержит логику английского морфологического анализатора.
// Он собирает из ресурсов аффиксный движок, словари основ, правила для стяжений
// и числительных и предоставляет API для получения леммы и разбора словоформы
// на основу и аффикс.
// После загрузки анализатор ничего не изменяет, поэтому его можно вызывать
// из многих горутин без блокировок.
package analyzer

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/resources"
)

// --- СТРУКТУРЫ ДАННЫХ ---

// abbreviationRule - строка abbreviation.rules: стяжение, префикс тега и его лемма.
type abbreviationRule struct {
	posPrefix string
	lemma     string
}

// TaggedWord - словоформа с тегом, вход для ParseList.
type TaggedWord struct {
	Word string `json:"word"`
	POS  string `json:"pos"`
}

// Analyzer - основная структура, хранящая все данные анализатора.
type Analyzer struct {
	engine        *Engine                       // Аффиксные правила в порядке приоритета.
	lexicons      map[Family]Lexicon            // Словари основ по семействам тегов.
	abbreviations map[string][]abbreviationRule // Стяжение -> правила в порядке файла.
	cardinals     map[string]struct{}           // Количественные числительные словами.
	ordinals      map[string]struct{}           // Порядковые числительные словами.
}

// lexiconFiles - семейство тегов -> файл словаря основ.
var lexiconFiles = map[Family]string{
	FamilyVerb:      resources.VerbLexicon,
	FamilyNoun:      resources.NounLexicon,
	FamilyAdjective: resources.AdjectiveLexicon,
	FamilyAdverb:    resources.AdverbLexicon,
}

// --- ЗАГРУЗКА ---

// LoadAnalyzer - конструктор анализатора. Все ресурсы читаются из src.
func LoadAnalyzer(src resources.Source) (*Analyzer, error) {
	engine, err := LoadRules(src)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки аффиксных правил: %w", err)
	}

	a := &Analyzer{
		engine:   engine,
		lexicons: make(map[Family]Lexicon, len(lexiconFiles)),
	}

	for family, file := range lexiconFiles {
		words, err := resources.ReadSet(src, file, strings.ToLower)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки словаря основ %s: %w", file, err)
		}
		a.lexicons[family] = WordSet(words)
	}

	if a.abbreviations, err = loadAbbreviationRules(src); err != nil {
		return nil, err
	}
	if a.cardinals, err = resources.ReadSet(src, resources.CardinalWords, strings.ToLower); err != nil {
		return nil, fmt.Errorf("ошибка загрузки количественных числительных: %w", err)
	}
	if a.ordinals, err = resources.ReadSet(src, resources.OrdinalWords, strings.ToLower); err != nil {
		return nil, fmt.Errorf("ошибка загрузки порядковых числительных: %w", err)
	}

	log.Info().
		Stringer("source", src).
		Int("matchers", engine.Len()).
		Int("abbreviations", len(a.abbreviations)).
		Msg("анализатор загружен")
	return a, nil
}

// loadAbbreviationRules читает строки "форма префикс-тега лемма".
func loadAbbreviationRules(src resources.Source) (map[string][]abbreviationRule, error) {
	lines, err := resources.ReadLines(src, resources.AbbreviationRules)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки правил стяжений: %w", err)
	}
	rules := make(map[string][]abbreviationRule, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %s:%d: ожидалось 3 поля, получено %d",
				resources.ErrMalformed, resources.AbbreviationRules, i+1, len(fields))
		}
		form := strings.ToLower(fields[0])
		rules[form] = append(rules[form], abbreviationRule{posPrefix: fields[1], lemma: fields[2]})
	}
	return rules, nil
}

// --- ЛОГИКА АНАЛИЗАТОРА ---

// Lemma - главный публичный метод. Возвращает лемму словоформы form с тегом pos.
// Порядок проверок: стяжения, числительные, URL, аффиксный движок,
// и если ничего не подошло - нормализованная форма в нижнем регистре.
func (a *Analyzer) Lemma(form, pos string) string {
	lemma, _, _ := a.lemma(form, pos)
	return lemma
}

// Analyze разбирает словоформу на основу и аффикс. Только аффиксный движок,
// без стяжений и числительных.
func (a *Analyzer) Analyze(form, pos string) (Decomposition, bool) {
	pos = strings.ToUpper(pos)
	lex, ok := a.lexicons[familyOf(pos)]
	if !ok {
		return Decomposition{}, false
	}
	return a.engine.Decompose(strings.ToLower(form), pos, lex)
}

// Parse возвращает полный разбор: лемму и, если есть, основу с аффиксом.
func (a *Analyzer) Parse(form, pos string) *Parsed {
	lemma, dec, ok := a.lemma(form, pos)
	return newParsed(form, pos, lemma, dec, ok)
}

// lemma приводит тег к верхнему регистру один раз: по нему выбирается и словарь,
// и фильтр матчеров.
func (a *Analyzer) lemma(form, pos string) (string, Decomposition, bool) {
	lower := strings.ToLower(form)
	pos = strings.ToUpper(pos)

	if lemma, ok := a.abbreviationLemma(lower, pos); ok {
		return lemma, Decomposition{}, false
	}
	if a.isOrdinal(lower) {
		return LemmaOrdinal, Decomposition{}, false
	}
	if a.isCardinal(lower) {
		return LemmaCardinal, Decomposition{}, false
	}
	if isURL(lower) {
		return LemmaURL, Decomposition{}, false
	}
	if lex, ok := a.lexicons[familyOf(pos)]; ok {
		if dec, ok := a.engine.Decompose(lower, pos, lex); ok {
			return dec.Base.Form, dec, true
		}
	}
	return normalizeForm(lower), Decomposition{}, false
}

func (a *Analyzer) abbreviationLemma(form, pos string) (string, bool) {
	for _, r := range a.abbreviations[form] {
		if strings.HasPrefix(pos, r.posPrefix) {
			return r.lemma, true
		}
	}
	return "", false
}

func (a *Analyzer) isOrdinal(form string) bool {
	if reOrdinalDigits.MatchString(form) {
		return true
	}
	_, ok := a.ordinals[form]
	return ok
}

// isCardinal принимает и множественное число: tens, thirties.
func (a *Analyzer) isCardinal(form string) bool {
	if _, ok := a.cardinals[form]; ok {
		return true
	}
	if base, ok := strings.CutSuffix(form, "ies"); ok {
		if _, ok := a.cardinals[base+"y"]; ok {
			return true
		}
	}
	if base, ok := strings.CutSuffix(form, "s"); ok {
		if _, ok := a.cardinals[base]; ok {
			return true
		}
	}
	return false
}

// ParseList разбирает срез словоформ в конкурентном режиме, используя пул воркеров.
// Порядок результатов совпадает с порядком words.
func (a *Analyzer) ParseList(words []TaggedWord) []*Parsed {
	const chunkSize = 1000 // Размер одного "пакета" для обработки воркером.
	numWorkers := runtime.NumCPU()

	results := make([]*Parsed, len(words))
	if len(words) == 0 {
		return results
	}

	// Канал для отправки начал "пакетов" в воркеры. Каждый воркер пишет
	// только в свой диапазон results, поэтому блокировки не нужны.
	chunksCh := make(chan int, numWorkers)

	var wg sync.WaitGroup

	// Запускаем воркеры
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for start := range chunksCh {
				end := min(start+chunkSize, len(words))
				for j := start; j < end; j++ {
					results[j] = a.Parse(words[j].Word, words[j].POS)
				}
			}
		}()
	}

	// Диспетчер нарезает words на чанки.
	for i := 0; i < len(words); i += chunkSize {
		chunksCh <- i
	}
	close(chunksCh) // Закрываем канал, чтобы воркеры завершили работу.

	wg.Wait()
	return results
}
