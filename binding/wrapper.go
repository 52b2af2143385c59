// Пакет binding собирается как c-shared библиотека и отдает токенизатор
// и анализатор через C ABI. Результаты возвращаются строками JSON,
// освобождать их нужно через FreeString.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"encoding/json"
	"sync"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/analyzer"
	"github.com/steosofficial/steosnlp/config"
	"github.com/steosofficial/steosnlp/tokenizer"
)

var (
	mu            sync.RWMutex
	textTokenizer *tokenizer.Tokenizer
	morphAnalyzer *analyzer.Analyzer
)

// CreateAnalyzer загружает ресурсы по настройкам из окружения.
// Возвращает 0 при успехе и -1 при ошибке; подробности пишутся в лог.
//
//export CreateAnalyzer
func CreateAnalyzer() C.int {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		log.Error().Err(err).Msg("ошибка конфигурации")
		return -1
	}
	if level, err := cfg.Level(); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	src := cfg.Source()
	tk, err := tokenizer.Load(src, cfg.TokenizerOptions())
	if err != nil {
		log.Error().Err(err).Msg("не удалось загрузить токенизатор")
		return -1
	}
	a, err := analyzer.LoadAnalyzer(src)
	if err != nil {
		log.Error().Err(err).Msg("не удалось загрузить анализатор")
		return -1
	}

	mu.Lock()
	textTokenizer, morphAnalyzer = tk, a
	mu.Unlock()
	return 0
}

// Tokenize возвращает JSON-массив токенов [{"text": ..., "protected": ...}].
// До CreateAnalyzer возвращает NULL.
//
//export Tokenize
func Tokenize(text *C.char) *C.char {
	mu.RLock()
	tk := textTokenizer
	mu.RUnlock()
	if tk == nil {
		return nil
	}
	return marshal(tk.Tokenize(C.GoString(text)))
}

// Lemmatize возвращает JSON-разбор словоформы word с тегом pos.
// До CreateAnalyzer возвращает NULL.
//
//export Lemmatize
func Lemmatize(word, pos *C.char) *C.char {
	mu.RLock()
	a := morphAnalyzer
	mu.RUnlock()
	if a == nil {
		return nil
	}
	return marshal(a.Parse(C.GoString(word), C.GoString(pos)))
}

//export FreeString
func FreeString(str *C.char) {
	if str != nil {
		C.free(unsafe.Pointer(str))
	}
}

//export ReleaseAnalyzer
func ReleaseAnalyzer() {
	mu.Lock()
	textTokenizer, morphAnalyzer = nil, nil
	mu.Unlock()
}

func marshal(v any) *C.char {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("ошибка сериализации результата")
		return nil
	}
	return C.CString(string(data))
}

func main() {}
