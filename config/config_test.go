package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steosnlp.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
resource_path: /opt/steosnlp
user_id_mode: true
social_tags: true
log_level: debug
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{ResourcePath: "/opt/steosnlp", UserIDMode: true, SocialTags: true, LogLevel: "debug"}
	if c != want {
		t.Errorf("ожидали %+v, получили %+v", want, c)
	}

	opts := c.TokenizerOptions()
	if !opts.UserIDMode || !opts.SocialTags || opts.UnicodeNFC {
		t.Errorf("неверные опции токенизатора: %+v", opts)
	}
	if c.Source().String() != "/opt/steosnlp" {
		t.Errorf("ожидали источник-директорию, получили %s", c.Source())
	}
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"Неизвестный ключ", "resource_dir: /tmp\n"},
		{"Неверный уровень", "log_level: loud\n"},
		{"Не YAML-словарь", "- a\n- b\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Error("ожидали ошибку, получили nil")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("несуществующий файл должен давать ошибку")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvResourcePath, "/srv/res")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvUserIDMode, "true")

	c, err := FromEnv(Default())
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.ResourcePath != "/srv/res" || c.LogLevel != "warn" || !c.UserIDMode {
		t.Errorf("переменные окружения не применились: %+v", c)
	}
	if level, _ := c.Level(); level != zerolog.WarnLevel {
		t.Errorf("ожидали warn, получили %v", level)
	}

	t.Setenv(EnvUserIDMode, "maybe")
	if _, err := FromEnv(Default()); err == nil {
		t.Error("неверное булево значение должно давать ошибку")
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Source().String() != "embedded" {
		t.Errorf("по умолчанию ресурсы встроенные, получили %s", c.Source())
	}
	if level, err := c.Level(); err != nil || level != zerolog.InfoLevel {
		t.Errorf("ожидали info, получили %v, %v", level, err)
	}
}
