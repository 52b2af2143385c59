package resources

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Lines разбивает содержимое ресурса на строки.
// Отрезается только завершающий '\r', пустые строки пропускаются.
// Пробелы не обрезаются: в таблице non-utf8 замена на пробел значима.
func Lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := make([]string, 0, bytes.Count(data, []byte{'\n'})+1)
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		// string() копирует байты, после Unmap строки остаются валидными.
		lines = append(lines, string(line))
	}
	return lines
}

// ReadLines читает ресурс name из src построчно.
func ReadLines(src Source, name string) ([]string, error) {
	var lines []string
	err := src.Read(name, func(data []byte) error {
		lines = Lines(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("resource", name).Stringer("source", src).Int("lines", len(lines)).Msg("ресурс загружен")
	return lines, nil
}

// ReadSet читает ресурс как множество строк. Если задан fold, он применяется к каждой строке
// (например, strings.ToLower), а пробелы по краям строк обрезаются.
func ReadSet(src Source, name string, fold func(string) string) (map[string]struct{}, error) {
	lines, err := ReadLines(src, name)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if fold != nil {
			line = fold(line)
		}
		set[line] = struct{}{}
	}
	return set, nil
}

// ReadPairs читает ресурс, где каждая строка - это два поля через пробел: key value.
// Строки с другим числом полей считаются ошибкой формата.
func ReadPairs(src Source, name string) (map[string]string, error) {
	lines, err := ReadLines(src, name)
	if err != nil {
		return nil, err
	}
	pairs := make(map[string]string, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: ожидалось 2 поля, получено %d", ErrMalformed, name, i+1, len(fields))
		}
		pairs[fields[0]] = fields[1]
	}
	return pairs, nil
}
