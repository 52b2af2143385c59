// rules.go собирает аффиксный движок из таблицы inflection.yaml и таблиц
// неправильных форм. Порядок матчеров в файле - это их приоритет.
package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/steosofficial/steosnlp/resources"
)

// ErrInvalidRule - запись таблицы правил некорректна.
var ErrInvalidRule = errors.New("неверное правило")

// Типы заменителей в inflection.yaml.
const (
	replacerException = "exception"
	replacerSuffix    = "suffix"
	replacerDoubled   = "doubled"
)

// exceptionTables - имя таблицы в правилах -> файл ресурса.
var exceptionTables = map[string]string{
	"verb":      resources.VerbExceptions,
	"noun":      resources.NounExceptions,
	"adjective": resources.AdjectiveExceptions,
	"adverb":    resources.AdverbExceptions,
}

// matcherEntry - одна запись inflection.yaml.
type matcherEntry struct {
	Affix     string          `yaml:"affix"`
	AffixPOS  string          `yaml:"affix_pos"`
	BasePOS   string          `yaml:"base_pos"`
	POSGate   string          `yaml:"pos_gate"`
	Replacers []replacerEntry `yaml:"replacers"`
}

type replacerEntry struct {
	Type   string `yaml:"type"`
	Suffix string `yaml:"suffix"`
	Base   string `yaml:"base"`
	Table  string `yaml:"table"`
}

// LoadRules читает inflection.yaml из src и строит движок.
// Таблицы неправильных форм читаются по требованию, каждая один раз.
func LoadRules(src resources.Source) (*Engine, error) {
	var entries []matcherEntry
	err := src.Read(resources.Inflection, func(data []byte) error {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidRule, resources.Inflection, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make(map[string]map[string]string)
	exceptions := func(name string) (map[string]string, error) {
		if t, ok := tables[name]; ok {
			return t, nil
		}
		file, ok := exceptionTables[name]
		if !ok {
			return nil, fmt.Errorf("%w: неизвестная таблица исключений %q", ErrInvalidRule, name)
		}
		t, err := resources.ReadPairs(src, file)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки таблицы исключений %s: %w", file, err)
		}
		tables[name] = t
		return t, nil
	}

	matchers := make([]*AffixMatcher, 0, len(entries))
	for i, entry := range entries {
		m, err := buildMatcher(entry, exceptions)
		if err != nil {
			return nil, fmt.Errorf("%s: правило %d (%s %s): %w", resources.Inflection, i+1, entry.Affix, entry.AffixPOS, err)
		}
		matchers = append(matchers, m)
	}

	log.Info().
		Stringer("source", src).
		Int("matchers", len(matchers)).
		Int("exception_tables", len(tables)).
		Msg("аффиксные правила собраны")
	return NewEngine(matchers...), nil
}

func buildMatcher(entry matcherEntry, exceptions func(string) (map[string]string, error)) (*AffixMatcher, error) {
	if entry.Affix == "" || entry.AffixPOS == "" {
		return nil, fmt.Errorf("%w: нужны affix и affix_pos", ErrInvalidRule)
	}
	if !IsAffixTag(entry.AffixPOS) {
		return nil, fmt.Errorf("%w: неизвестный тег аффикса %q", ErrInvalidRule, entry.AffixPOS)
	}
	m := &AffixMatcher{
		Affix:     entry.Affix,
		AffixPOS:  entry.AffixPOS,
		BasePOS:   entry.BasePOS,
		Replacers: make([]AffixReplacer, 0, len(entry.Replacers)),
	}
	if entry.POSGate != "" {
		gate, err := regexp.Compile(entry.POSGate)
		if err != nil {
			return nil, fmt.Errorf("%w: pos_gate %q: %v", ErrInvalidRule, entry.POSGate, err)
		}
		m.POSGate = gate
	}

	for _, r := range entry.Replacers {
		switch r.Type {
		case replacerException:
			table, err := exceptions(r.Table)
			if err != nil {
				return nil, err
			}
			m.Replacers = append(m.Replacers, ExceptionReplacer{Table: table})
		case replacerSuffix:
			if r.Suffix == "" {
				return nil, fmt.Errorf("%w: у заменителя suffix пустой suffix", ErrInvalidRule)
			}
			m.Replacers = append(m.Replacers, SuffixReplacer{Suffix: r.Suffix, Base: r.Base})
		case replacerDoubled:
			if r.Suffix == "" {
				return nil, fmt.Errorf("%w: у заменителя doubled пустой suffix", ErrInvalidRule)
			}
			m.Replacers = append(m.Replacers, DoubledReplacer{Suffix: r.Suffix})
		default:
			return nil, fmt.Errorf("%w: неизвестный тип заменителя %q", ErrInvalidRule, r.Type)
		}
	}
	return m, nil
}
