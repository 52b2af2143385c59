package tokenizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/resources"
)

var (
	// ErrMalformedResource - строка ресурса нарушает его формат.
	ErrMalformedResource = resources.ErrMalformed
	// ErrInvalidPattern - шаблон, собранный из словаря, не компилируется.
	ErrInvalidPattern = errors.New("неверный шаблон словаря")
)

// --- СТРУКТУРЫ ДАННЫХ ---

// span - полуинтервал [start, end) в байтах исходного токена.
type span struct {
	start, end int
}

// substitution - одна строка таблицы non-utf8: шаблон и его буквальная замена.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// Dictionaries - все словари токенизатора. Собираются один раз и дальше не изменяются,
// поэтому одна копия безопасно разделяется между горутинами.
type Dictionaries struct {
	emoticons     map[string]struct{} // Смайлики в нижнем регистре.
	abbreviations map[string]struct{} // Сокращения в нижнем регистре.
	hyphens       *regexp.Regexp      // Белый список слов с дефисом, одна альтернация.
	compounds     map[string][]span   // Слитная форма в нижнем регистре -> разбиение на части.
	units         [4]*regexp.Regexp   // Знак|число, валюта|число, число|валюта, число|единица.
	nonUTF8       []substitution      // Замены в порядке таблицы.
}

// --- ЗАГРУЗКА ---

// LoadDictionaries читает все ресурсы токенизатора из src и собирает словари.
// Любая ошибка здесь - ошибка настройки: дальше токенизация уже не может упасть.
func LoadDictionaries(src resources.Source) (*Dictionaries, error) {
	d := &Dictionaries{}
	var err error

	if d.emoticons, err = resources.ReadSet(src, resources.Emoticons, strings.ToLower); err != nil {
		return nil, fmt.Errorf("ошибка загрузки смайликов: %w", err)
	}
	if d.abbreviations, err = resources.ReadSet(src, resources.Abbreviations, strings.ToLower); err != nil {
		return nil, fmt.Errorf("ошибка загрузки сокращений: %w", err)
	}

	lines, err := resources.ReadLines(src, resources.Hyphens)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки белого списка дефисов: %w", err)
	}
	if d.hyphens, err = compileHyphens(lines); err != nil {
		return nil, err
	}

	if lines, err = resources.ReadLines(src, resources.Compounds); err != nil {
		return nil, fmt.Errorf("ошибка загрузки составных слов: %w", err)
	}
	if d.compounds, err = parseCompounds(lines); err != nil {
		return nil, err
	}

	if lines, err = resources.ReadLines(src, resources.Units); err != nil {
		return nil, fmt.Errorf("ошибка загрузки единиц измерения: %w", err)
	}
	if d.units, err = compileUnits(lines); err != nil {
		return nil, err
	}

	if lines, err = resources.ReadLines(src, resources.NonUTF8); err != nil {
		return nil, fmt.Errorf("ошибка загрузки таблицы non-utf8: %w", err)
	}
	if d.nonUTF8, err = parseNonUTF8(lines); err != nil {
		return nil, err
	}

	log.Info().
		Stringer("source", src).
		Int("emoticons", len(d.emoticons)).
		Int("abbreviations", len(d.abbreviations)).
		Int("compounds", len(d.compounds)).
		Int("non_utf8", len(d.nonUTF8)).
		Msg("словари токенизатора собраны")
	return d, nil
}

// compileHyphens склеивает строки белого списка в одну альтернацию.
func compileHyphens(lines []string) (*regexp.Regexp, error) {
	alts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			alts = append(alts, line)
		}
	}
	if len(alts) == 0 {
		return nil, fmt.Errorf("%w: %s пустой", ErrMalformedResource, resources.Hyphens)
	}
	re, err := regexp.Compile(strings.Join(alts, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, resources.Hyphens, err)
	}
	return re, nil
}

// parseCompounds строит карту составных слов. Строка "can not" дает ключ "cannot"
// и разбиение [0,3) [3,6). Смещения считаются по частям в нижнем регистре.
func parseCompounds(lines []string) (map[string][]span, error) {
	compounds := make(map[string][]span, len(lines))
	for i, line := range lines {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: %s:%d: составное слово %q должно иметь хотя бы две части",
				ErrMalformedResource, resources.Compounds, i+1, line)
		}
		spans := make([]span, len(parts))
		var key strings.Builder
		start := 0
		for j, part := range parts {
			part = strings.ToLower(part)
			key.WriteString(part)
			spans[j] = span{start: start, end: start + len(part)}
			start += len(part)
		}
		compounds[key.String()] = spans
	}
	return compounds, nil
}

// compileUnits собирает четыре шаблона границ из трех строк: знаки, валюты, единицы.
func compileUnits(lines []string) ([4]*regexp.Regexp, error) {
	var units [4]*regexp.Regexp
	if len(lines) < 3 {
		return units, fmt.Errorf("%w: %s: нужно 3 строки (знаки, валюты, единицы), получено %d",
			ErrMalformedResource, resources.Units, len(lines))
	}
	signs := strings.TrimSpace(lines[0])
	currencies := strings.TrimSpace(lines[1])
	measures := strings.TrimSpace(lines[2])

	exprs := [4]string{
		`^(?i)([[:punct:]]*` + signs + `)(\d)`,
		`^(?i)([[:punct:]]*` + currencies + `)(\d)`,
		`(?i)(\d)(` + currencies + `[[:punct:]]*)$`,
		`(?i)(\d)(` + measures + `[[:punct:]]*)$`,
	}
	for i, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return units, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, resources.Units, err)
		}
		units[i] = re
	}
	return units, nil
}

// parseNonUTF8 разбирает таблицу "шаблон<TAB>замена". Порядок строк сохраняется:
// более поздние замены могут рассчитывать на то, что ранние уже сработали.
func parseNonUTF8(lines []string) ([]substitution, error) {
	table := make([]substitution, 0, len(lines))
	for i, line := range lines {
		pattern, replacement, ok := strings.Cut(line, "\t")
		if !ok || pattern == "" {
			return nil, fmt.Errorf("%w: %s:%d: ожидалось \"шаблон<TAB>замена\"", ErrMalformedResource, resources.NonUTF8, i+1)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrInvalidPattern, resources.NonUTF8, i+1, err)
		}
		table = append(table, substitution{pattern: re, replacement: replacement})
	}
	return table, nil
}

// --- ПРОВЕРКИ ---

func (d *Dictionaries) isEmoticon(text string) bool {
	_, ok := d.emoticons[strings.ToLower(text)]
	return ok
}

func (d *Dictionaries) isAbbreviation(text string) bool {
	lower := strings.ToLower(text)
	if _, ok := d.abbreviations[lower]; ok {
		return true
	}
	return reAbbreviationShape.MatchString(lower)
}

func isFilename(text string) bool {
	return reFilename.MatchString(strings.ToLower(text))
}

func isSocialTag(text string) bool {
	return reSocialTag.MatchString(text)
}
