// Этот файл описывает источники ресурсов: словари, списки и таблицы правил,
// из которых один раз при старте собираются токенизатор и анализатор.
// Ресурсы берутся либо из копии, встроенной в бинарник, либо из директории на диске.
// Файлы на диске отображаются в память через mmap (только чтение), поэтому даже
// большие словари разбираются прямо из страничного кэша ОС без лишнего копирования.
package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// --- ИМЕНА РЕСУРСОВ ---

const (
	Emoticons     = "emoticons.txt"     // Смайлики, по одному на строку.
	Abbreviations = "abbreviations.txt" // Сокращения с завершающей точкой, по одному на строку.
	Hyphens       = "hyphens.txt"       // Альтернативы регулярного выражения для слов с дефисом.
	Compounds     = "compounds.txt"     // Составные слова: части через пробел, одно слово на строку.
	Units         = "units.txt"         // Ровно три строки: знаки, валюты, единицы измерения.
	NonUTF8       = "non-utf8.txt"      // Шаблон<TAB>замена, применяются в порядке файла.

	Inflection          = "inflection.yaml"    // Упорядоченный список аффиксных правил.
	AbbreviationRules   = "abbreviation.rules" // Форма<SP>префикс тега<SP>лемма.
	CardinalWords       = "cardinal.base"      // Количественные числительные.
	OrdinalWords        = "ordinal.base"       // Порядковые числительные.
	VerbLexicon         = "verb.base"          // Базовые формы глаголов.
	NounLexicon         = "noun.base"          // Базовые формы существительных.
	AdjectiveLexicon    = "adjective.base"     // Базовые формы прилагательных.
	AdverbLexicon       = "adverb.base"        // Базовые формы наречий.
	VerbExceptions      = "verb.exc"           // Неправильные формы: форма<SP>основа.
	NounExceptions      = "noun.exc"
	AdjectiveExceptions = "adjective.exc"
	AdverbExceptions    = "adverb.exc"
)

var (
	// ErrNotFound возвращается, если в источнике нет ресурса с таким именем.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrMalformed возвращается, если строка ресурса нарушает его формат.
	ErrMalformed = errors.New("неверный формат ресурса")
)

//go:embed data
var embedded embed.FS

// Source - хранилище именованных ресурсов, доступное только для чтения.
//
// Read передает содержимое ресурса в fn. Срез действителен только пока fn выполняется:
// для файлов на диске он указывает в mmap-область, которая освобождается сразу после
// возврата из fn. Все, что нужно сохранить, fn обязана скопировать.
type Source interface {
	Read(name string, fn func(data []byte) error) error
	String() string
}

// Open возвращает источник-директорию, либо встроенные ресурсы, если dir пустой.
func Open(dir string) Source {
	if dir == "" {
		return Embedded()
	}
	return Dir(dir)
}

// --- ВСТРОЕННЫЕ РЕСУРСЫ ---

// fsSource читает ресурсы из произвольной fs.FS.
type fsSource struct {
	fsys fs.FS
	dir  string
	name string
}

// Embedded возвращает ресурсы, вкомпилированные в бинарник.
func Embedded() Source {
	return fsSource{fsys: embedded, dir: "data", name: "embedded"}
}

// FS возвращает источник поверх fsys; ресурсы лежат в ее корне.
func FS(fsys fs.FS) Source {
	return fsSource{fsys: fsys, dir: ".", name: "fs"}
}

func (s fsSource) Read(name string, fn func(data []byte) error) error {
	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s (%s)", ErrNotFound, name, s.name)
		}
		return fmt.Errorf("ошибка чтения ресурса %s (%s): %w", name, s.name, err)
	}
	return fn(data)
}

func (s fsSource) String() string { return s.name }

// --- РЕСУРСЫ НА ДИСКЕ ---

type dirSource struct {
	root string
}

// Dir возвращает источник, читающий файлы из директории root.
func Dir(root string) Source {
	return dirSource{root: root}
}

func (d dirSource) String() string { return d.root }

// Read отображает файл в виртуальное адресное пространство процесса вместо чтения в "кучу" Go.
// ОС сама подгружает нужные страницы по мере того, как fn проходит по данным.
func (d dirSource) Read(name string, fn func(data []byte) error) error {
	filePath := filepath.Join(d.root, name)

	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return fmt.Errorf("ошибка открытия файла %s: %w", filePath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("ошибка stat %s: %w", filePath, err)
	}
	// Пустой файл отобразить нельзя, mmap вернет EINVAL.
	if info.Size() == 0 {
		return fn(nil)
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("ошибка mmap.Map %s: %w", filePath, err)
	}

	fnErr := fn(mapped)
	if err := mapped.Unmap(); err != nil && fnErr == nil {
		return fmt.Errorf("ошибка mmap.Unmap %s: %w", filePath, err)
	}
	return fnErr
}
