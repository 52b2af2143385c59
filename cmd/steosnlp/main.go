// Команда steosnlp читает текст из stdin построчно и печатает токены.
// С флагом -lemma рядом с каждым токеном печатается лемма.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/analyzer"
	"github.com/steosofficial/steosnlp/config"
	"github.com/steosofficial/steosnlp/tokenizer"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML-файлу настроек")
	withLemma := flag.Bool("lemma", false, "печатать лемму рядом с токеном")
	pos := flag.String("pos", "NN", "тег части речи для -lemma")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("не удалось прочитать настройки")
		}
	}
	cfg, err := config.FromEnv(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("ошибка конфигурации")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	src := cfg.Source()
	tk, err := tokenizer.Load(src, cfg.TokenizerOptions())
	if err != nil {
		log.Fatal().Err(err).Str("source", src.String()).Msg("не удалось загрузить токенизатор")
	}

	p := &printer{tk: tk, pos: *pos}
	if *withLemma {
		if p.a, err = analyzer.LoadAnalyzer(src); err != nil {
			log.Fatal().Err(err).Str("source", src.String()).Msg("не удалось загрузить анализатор")
		}
	}

	if err := p.run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("ошибка обработки ввода")
	}
}

// printer - построчная обработка ввода. Без анализатора печатает флаг защиты.
type printer struct {
	tk  *tokenizer.Tokenizer
	a   *analyzer.Analyzer // nil - режим без лемм
	pos string
}

func (p *printer) run(r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	for sc.Scan() {
		tokens := p.tk.Tokenize(sc.Text())
		if p.a == nil {
			for _, t := range tokens {
				fmt.Fprintf(out, "%s\t%t\n", t.Text, t.Protected)
			}
		} else {
			words := make([]analyzer.TaggedWord, len(tokens))
			for i, t := range tokens {
				words[i] = analyzer.TaggedWord{Word: t.Text, POS: p.pos}
			}
			for _, parsed := range p.a.ParseList(words) {
				fmt.Fprintf(out, "%s\t%s\n", parsed.Word, parsed.Lemma)
			}
		}
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return out.Flush()
}
