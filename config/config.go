// Package config описывает настройки токенизатора и анализатора: откуда брать ресурсы,
// какие режимы конвейера включены и уровень логирования.
// Настройки читаются из YAML-файла, а переменные окружения переопределяют файл.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/steosofficial/steosnlp/resources"
	"github.com/steosofficial/steosnlp/tokenizer"
)

// --- ПЕРЕМЕННЫЕ ОКРУЖЕНИЯ ---

const (
	// EnvResourcePath - директория с ресурсами вместо встроенных.
	EnvResourcePath = "STEOSNLP_RESOURCE_PATH"
	// EnvLogLevel - уровень логирования: debug, info, warn, error.
	EnvLogLevel = "STEOSNLP_LOG_LEVEL"
	// EnvUserIDMode - включить режим user-id ("1", "true" ...).
	EnvUserIDMode = "STEOSNLP_USER_ID_MODE"
)

// Config - настройки приложения.
type Config struct {
	ResourcePath string `yaml:"resource_path"` // Пусто - встроенные ресурсы.
	UserIDMode   bool   `yaml:"user_id_mode"`  // Прятать точки между буквами и цифрами.
	SocialTags   bool   `yaml:"social_tags"`   // Защищать @user и #tag.
	UnicodeNFC   bool   `yaml:"unicode_nfc"`   // NFC до таблицы non-utf8.
	LogLevel     string `yaml:"log_level"`     // debug|info|warn|error.
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load читает YAML-файл path поверх настроек по умолчанию. Неизвестные ключи - ошибка.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// FromEnv переопределяет c значениями из переменных окружения.
func FromEnv(c Config) (Config, error) {
	if v := os.Getenv(EnvResourcePath); v != "" {
		c.ResourcePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvUserIDMode); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("ошибка разбора %s=%q: %w", EnvUserIDMode, v, err)
		}
		c.UserIDMode = on
	}
	return c, c.Validate()
}

// Validate проверяет значения, которые нельзя проверить типом.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level возвращает уровень zerolog. Пустая строка - info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("неверный уровень логирования %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Source возвращает источник ресурсов: директорию или встроенные.
func (c Config) Source() resources.Source {
	return resources.Open(c.ResourcePath)
}

// TokenizerOptions переводит настройки в опции конвейера.
func (c Config) TokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		UserIDMode: c.UserIDMode,
		SocialTags: c.SocialTags,
		UnicodeNFC: c.UnicodeNFC,
	}
}
