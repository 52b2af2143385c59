// tagset.go определяет теги Penn Treebank, с которыми работает анализатор,
// и результат разбора `Parsed`, удобный и в Go, и после сериализации в JSON.
package analyzer

// TagSet - это множество тегов.
type TagSet map[string]struct{}

// Family - семейство тегов, по которому выбирается словарь основ.
type Family int

const (
	FamilyOther Family = iota
	FamilyVerb
	FamilyNoun
	FamilyAdjective
	FamilyAdverb
)

// Теги-заглушки для лемм, которые не сводятся к словарной форме.
const (
	LemmaOrdinal  = "#ord#"
	LemmaCardinal = "#crd#"
	LemmaURL      = "#url#"
)

// Parsed - это объект для хранения полного разбора словоформы.
type Parsed struct {
	Word     string `json:"word"`                // Исходное слово
	POS      string `json:"pos"`                 // Тег словоформы
	Lemma    string `json:"lemma"`               // Лемма
	Base     string `json:"base,omitempty"`      // Основа, если форму разобрал аффиксный движок
	BasePOS  string `json:"base_pos,omitempty"`  // Тег основы
	Affix    string `json:"affix,omitempty"`     // Каноническая форма аффикса
	AffixPOS string `json:"affix_pos,omitempty"` // Тег аффикса
}

// Множества тегов по семействам. Используются функцией `familyOf` для выбора словаря.
var (
	// verbTags - глагольные теги Penn.
	verbTags = TagSet{"VB": {}, "VBD": {}, "VBG": {}, "VBN": {}, "VBP": {}, "VBZ": {}}

	// nounTags - существительные, включая собственные.
	nounTags = TagSet{"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {}}

	// adjectiveTags - прилагательные и их степени.
	adjectiveTags = TagSet{"JJ": {}, "JJR": {}, "JJS": {}}

	// adverbTags - наречия и их степени.
	adverbTags = TagSet{"RB": {}, "RBR": {}, "RBS": {}}

	// affixTags - теги словоизменительных аффиксов.
	affixTags = TagSet{
		"I_3PS": {}, // 3-е лицо единственного числа
		"I_GRD": {}, // герундий
		"I_PST": {}, // прошедшее время
		"I_PSP": {}, // причастие прошедшего времени
		"I_PLR": {}, // множественное число
		"I_COM": {}, // сравнительная степень
		"I_SUP": {}, // превосходная степень
	}
)

// familyOf возвращает семейство тега в верхнем регистре. Неизвестные теги попадают в FamilyOther.
func familyOf(pos string) Family {
	switch {
	case inSet(pos, verbTags):
		return FamilyVerb
	case inSet(pos, nounTags):
		return FamilyNoun
	case inSet(pos, adjectiveTags):
		return FamilyAdjective
	case inSet(pos, adverbTags):
		return FamilyAdverb
	}
	return FamilyOther
}

// IsAffixTag сообщает, является ли tag тегом словоизменительного аффикса.
func IsAffixTag(tag string) bool {
	return inSet(tag, affixTags)
}

// newParsed - это конструктор-фабрика для объекта `Parsed`.
// dec заполняет поля основы и аффикса, только если разбор был (ok == true).
func newParsed(word, pos, lemma string, dec Decomposition, ok bool) *Parsed {
	p := &Parsed{Word: word, POS: pos, Lemma: lemma}
	if ok {
		p.Base = dec.Base.Form
		p.BasePOS = dec.Base.POS
		p.Affix = dec.Affix.Form
		p.AffixPOS = dec.Affix.POS
	}
	return p
}

func inSet(key string, set TagSet) bool {
	_, ok := set[key]
	return ok
}
