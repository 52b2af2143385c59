// analyzer_test.go
package analyzer

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/steosofficial/steosnlp/resources"
)

var analyzer *Analyzer

// TestMain - это специальная функция, которая запускается один раз перед всеми тестами в пакете.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	var err error
	analyzer, err = LoadAnalyzer(resources.Embedded())
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось загрузить анализатор для тестов")
	}

	os.Exit(m.Run())
}

// --- ТАБЛИЦА ЛЕММ ---

func TestLemma(t *testing.T) {
	testCases := []struct {
		group string
		form  string
		pos   string
		lemma string
	}{
		// --- СТЯЖЕНИЯ ---
		{"стяжение", "n't", "RB", "not"},
		{"стяжение", "na", "TO", "to"},
		{"стяжение", "'ll", "MD", "will"},

		// --- ПОРЯДКОВЫЕ ---
		{"порядковое", "1st", "XX", LemmaOrdinal},
		{"порядковое", "12nd", "XX", LemmaOrdinal},
		{"порядковое", "23rd", "XX", LemmaOrdinal},
		{"порядковое", "34th", "XX", LemmaOrdinal},
		{"порядковое", "first", "XX", LemmaOrdinal},
		{"порядковое", "third", "XX", LemmaOrdinal},
		{"порядковое", "fourth", "XX", LemmaOrdinal},

		// --- КОЛИЧЕСТВЕННЫЕ ---
		{"количественное", "zero", "XX", LemmaCardinal},
		{"количественное", "ten", "XX", LemmaCardinal},
		{"количественное", "tens", "XX", LemmaCardinal},
		{"количественное", "eleven", "XX", LemmaCardinal},
		{"количественное", "fourteen", "XX", LemmaCardinal},
		{"количественное", "thirties", "XX", LemmaCardinal},

		// --- ГЛАГОЛ: 3-е лицо ---
		{"глагол 3л", "studies", "VBZ", "study"},
		{"глагол 3л", "pushes", "VBZ", "push"},
		{"глагол 3л", "takes", "VBZ", "take"},

		// --- ГЛАГОЛ: герундий ---
		{"герундий", "lying", "VBG", "lie"},
		{"герундий", "feeling", "VBG", "feel"},
		{"герундий", "running", "VBG", "run"},
		{"герундий", "taking", "VBG", "take"},

		// --- ГЛАГОЛ: прошедшее и причастие ---
		{"прошедшее", "denied", "VBD", "deny"},
		{"прошедшее", "entered", "VBD", "enter"},
		{"прошедшее", "zipped", "VBD", "zip"},
		{"прошедшее", "heard", "VBD", "hear"},
		{"причастие", "drawn", "VBN", "draw"},
		{"причастие", "clung", "VBN", "cling"},

		// --- ГЛАГОЛ: неправильные ---
		{"неправильный глагол", "chivvies", "VBZ", "chivy"},
		{"неправильный глагол", "took", "VBD", "take"},
		{"неправильный глагол", "beaten", "VBN", "beat"},
		{"неправильный глагол", "forbidden", "VBN", "forbid"},
		{"неправильный глагол", "bitten", "VBN", "bite"},
		{"неправильный глагол", "spoken", "VBN", "speak"},
		{"неправильный глагол", "woven", "VBN", "weave"},
		{"неправильный глагол", "woken", "VBN", "wake"},
		{"неправильный глагол", "slept", "VBD", "sleep"},
		{"неправильный глагол", "fed", "VBD", "feed"},
		{"неправильный глагол", "led", "VBD", "lead"},
		{"неправильный глагол", "learnt", "VBD", "learn"},
		{"неправильный глагол", "rode", "VBD", "ride"},
		{"неправильный глагол", "spoke", "VBD", "speak"},
		{"неправильный глагол", "woke", "VBD", "wake"},
		{"неправильный глагол", "wrote", "VBD", "write"},
		{"неправильный глагол", "bore", "VBD", "bear"},
		{"неправильный глагол", "stove", "VBD", "stave"},
		{"неправильный глагол", "drove", "VBD", "drive"},
		{"неправильный глагол", "wove", "VBD", "weave"},

		// --- СУЩЕСТВИТЕЛЬНОЕ: множественное ---
		{"множественное", "studies", "NNS", "study"},
		{"множественное", "crosses", "NNS", "cross"},
		{"множественное", "areas", "NNS", "area"},
		{"множественное", "gentlemen", "NNS", "gentleman"},
		{"множественное", "vertebrae", "NNS", "vertebra"},
		{"множественное", "foci", "NNS", "focus"},

		// --- СУЩЕСТВИТЕЛЬНОЕ: неправильные ---
		{"неправильное существительное", "indices", "NNS", "index"},
		{"неправильное существительное", "appendices", "NNS", "appendix"},
		{"неправильное существительное", "wolves", "NNS", "wolf"},
		{"неправильное существительное", "knives", "NNS", "knife"},
		{"неправильное существительное", "quizzes", "NNS", "quiz"},
		{"неправильное существительное", "mice", "NNS", "mouse"},
		{"неправильное существительное", "geese", "NNS", "goose"},
		{"неправильное существительное", "teeth", "NNS", "tooth"},
		{"неправильное существительное", "feet", "NNS", "foot"},
		{"неправильное существительное", "analyses", "NNS", "analysis"},
		{"неправильное существительное", "optima", "NNS", "optimum"},
		{"неправильное существительное", "lexica", "NNS", "lexicon"},
		{"неправильное существительное", "corpora", "NNS", "corpus"},

		// --- ПРИЛАГАТЕЛЬНОЕ ---
		{"сравнительная", "easier", "JJR", "easy"},
		{"сравнительная", "smaller", "JJR", "small"},
		{"сравнительная", "bigger", "JJR", "big"},
		{"сравнительная", "larger", "JJR", "large"},
		{"превосходная", "easiest", "JJS", "easy"},
		{"превосходная", "smallest", "JJS", "small"},
		{"превосходная", "biggest", "JJS", "big"},
		{"превосходная", "largest", "JJS", "large"},
		{"неправильное прилагательное", "best", "JJS", "good"},

		// --- НАРЕЧИЕ ---
		{"наречие", "earlier", "RBR", "early"},
		{"наречие", "sooner", "RBR", "soon"},
		{"наречие", "larger", "RBR", "large"},
		{"наречие", "earliest", "RBS", "early"},
		{"наречие", "soonest", "RBS", "soon"},
		{"наречие", "largest", "RBS", "large"},
		{"неправильное наречие", "best", "RBS", "well"},

		// --- URL ---
		{"url", "http://www.google.com", "XX", LemmaURL},
		{"url", "www.google.com", "XX", LemmaURL},
		{"url", "mailto:somebody@google.com", "XX", LemmaURL},
		{"url", "some-body@google+.com", "XX", LemmaURL},

		// --- ЧИСЛА ---
		{"число", "10%", "XX", "0"},
		{"число", "$10", "XX", "0"},
		{"число", ".01", "XX", "0"},
		{"число", "12.34", "XX", "0"},
		{"число", "12,34,56", "XX", "0"},
		{"число", "12-34-56", "XX", "0"},
		{"число", "12/34/46", "XX", "0"},
		{"число", "A.01", "XX", "a.0"},
		{"число", "A:01", "XX", "a:0"},
		{"число", "A/01", "XX", "a/0"},
		{"число", "$10.23,45:67-89/10%", "XX", "0"},

		// --- ПУНКТУАЦИЯ ---
		{"пунктуация", ".!?-*=~,", "XX", ".!?-*=~,"},
		{"пунктуация", "..!!??--**==~~,,", "XX", "..!!??--**==~~,,"},
		{"пунктуация", "...!!!???---***===~~~,,,", "XX", "..!!??--**==~~,,"},
		{"пунктуация", "....!!!!????----****====~~~~,,,,", "XX", "..!!??--**==~~,,"},
	}

	for _, tc := range testCases {
		t.Run(tc.group+"/"+tc.form+"_"+tc.pos, func(t *testing.T) {
			if got := analyzer.Lemma(tc.form, tc.pos); got != tc.lemma {
				t.Errorf("Lemma(%q, %q): ожидали %q, получили %q", tc.form, tc.pos, tc.lemma, got)
			}
		})
	}
}

// --- РАЗБОР НА МОРФЕМЫ ---

func TestAnalyze_Morphemes(t *testing.T) {
	testCases := []struct {
		name string
		form string
		pos  string
		want Decomposition
	}{
		{
			name: "3-е лицо (studies)",
			form: "studies",
			pos:  "VBZ",
			want: Decomposition{Base: Morpheme{"study", "VB"}, Affix: Morpheme{"-s", "I_3PS"}},
		},
		{
			name: "Множественное через f->v (wolves)",
			form: "wolves",
			pos:  "NNS",
			want: Decomposition{Base: Morpheme{"wolf", "NN"}, Affix: Morpheme{"-s", "I_PLR"}},
		},
		{
			name: "Причастие (forbidden)",
			form: "Forbidden",
			pos:  "VBN",
			want: Decomposition{Base: Morpheme{"forbid", "VB"}, Affix: Morpheme{"-ed", "I_PSP"}},
		},
		{
			name: "Превосходная степень (biggest)",
			form: "biggest",
			pos:  "JJS",
			want: Decomposition{Base: Morpheme{"big", "JJ"}, Affix: Morpheme{"-est", "I_SUP"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := analyzer.Analyze(tc.form, tc.pos)
			if !ok {
				t.Fatalf("Слово '%s' не разобрано, хотя должно было", tc.form)
			}
			if got != tc.want {
				t.Errorf("Неверный разбор: ожидали %+v, получили %+v", tc.want, got)
			}
		})
	}
}

func TestAnalyze_NoDecomposition(t *testing.T) {
	testCases := []struct {
		name string
		form string
		pos  string
	}{
		{"Глагольный тег у существительного", "wolves", "VBZ"},
		{"Тег без семейства", "studies", "XX"},
		{"Нет основы в словаре", "blorfs", "NNS"},
		{"Начальная форма", "study", "VB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := analyzer.Analyze(tc.form, tc.pos); ok {
				t.Errorf("Слово '%s' (%s) не должно было разобраться, получили %+v", tc.form, tc.pos, got)
			}
		})
	}
}

func TestLemma_TagCase(t *testing.T) {
	testCases := []struct {
		name string
		form string
		pos  string
		want string
	}{
		{"Глагол, тег в нижнем регистре", "studies", "vbz", "study"},
		{"Существительное, смешанный регистр", "wolves", "Nns", "wolf"},
		{"Стяжение, тег в нижнем регистре", "n't", "rb", "not"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := analyzer.Lemma(tc.form, tc.pos); got != tc.want {
				t.Errorf("Lemma(%q, %q): ожидали %q, получили %q", tc.form, tc.pos, tc.want, got)
			}
			if got, upper := analyzer.Lemma(tc.form, tc.pos), analyzer.Lemma(tc.form, strings.ToUpper(tc.pos)); got != upper {
				t.Errorf("регистр тега меняет лемму: %q против %q", got, upper)
			}
		})
	}

	if _, ok := analyzer.Analyze("studies", "vbz"); !ok {
		t.Error("Analyze должен разбирать studies с тегом vbz")
	}
}

func TestParse(t *testing.T) {
	got := analyzer.Parse("Took", "VBD")
	want := &Parsed{Word: "Took", POS: "VBD", Lemma: "take", Base: "take", BasePOS: "VB", Affix: "-ed", AffixPOS: "I_PST"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Неверный разбор: ожидали %+v, получили %+v", want, got)
	}

	got = analyzer.Parse("12.34", "CD")
	if got.Lemma != "0" || got.Base != "" || got.Affix != "" {
		t.Errorf("Для числа не должно быть морфем: %+v", got)
	}
}

// TestParseList проверяет корректность работы метода пакетной обработки разбора слов.
func TestParseList(t *testing.T) {
	words := []TaggedWord{
		{"studies", "VBZ"}, {"mice", "NNS"}, {"n't", "RB"}, {"first", "JJ"}, {"www.google.com", "NN"},
	}
	expectedLemmas := []string{"study", "mouse", "not", LemmaOrdinal, LemmaURL}

	results := analyzer.ParseList(words)
	if len(results) != len(words) {
		t.Fatalf("Ожидалось %d разборов, получено %d", len(words), len(results))
	}

	// Порядок результатов совпадает с порядком входа.
	for i, p := range results {
		if p.Word != words[i].Word {
			t.Errorf("Позиция %d: ожидали слово '%s', получили '%s'", i, words[i].Word, p.Word)
		}
		if p.Lemma != expectedLemmas[i] {
			t.Errorf("Позиция %d: ожидали лемму '%s', получили '%s'", i, expectedLemmas[i], p.Lemma)
		}
	}

	if got := analyzer.ParseList(nil); len(got) != 0 {
		t.Errorf("Пустой вход должен давать пустой результат, получили %d", len(got))
	}
}

func TestParseList_ManyChunks(t *testing.T) {
	words := make([]TaggedWord, 2500)
	for i := range words {
		if i%2 == 0 {
			words[i] = TaggedWord{"running", "VBG"}
		} else {
			words[i] = TaggedWord{"knives", "NNS"}
		}
	}
	for i, p := range analyzer.ParseList(words) {
		want := "run"
		if i%2 == 1 {
			want = "knife"
		}
		if p.Lemma != want {
			t.Fatalf("Позиция %d: ожидали лемму '%s', получили '%s'", i, want, p.Lemma)
		}
	}
}
