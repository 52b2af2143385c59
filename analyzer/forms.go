package analyzer

import (
	"regexp"
	"strings"
)

// --- ШАБЛОНЫ ДЛЯ НЕСЛОВАРНЫХ ФОРМ ---

var (
	reOrdinalDigits = regexp.MustCompile(`^\d+(?:st|nd|rd|th)$`)

	// Лемма URL проверяется по всей форме целиком, в отличие от токенизатора.
	reURLForm = regexp.MustCompile(`^(?:(?:https?|s?ftp|file|ssh|git)://|www\d{0,3}\.|mailto:)\S+$` +
		`|^[^\s@]+@[^\s@]+\.[[:alpha:]]{2,}$`)

	reDigits       = regexp.MustCompile(`\d+`)
	reDigitPunct   = regexp.MustCompile(`0[.,:\-/]0`)
	reLeadingPoint = regexp.MustCompile(`(^|[^[:alnum:]])\.0`)
	reDollarZero   = regexp.MustCompile(`\$0`)
	rePercentZero  = regexp.MustCompile(`0%`)
)

// rePunctRuns - для каждого знака шаблон "три и больше подряд". RE2 не умеет
// обратные ссылки, поэтому шаблон на знак свой.
var rePunctRuns = func() []punctRun {
	const marks = ".!?-*=~,"
	runs := make([]punctRun, 0, len(marks))
	for _, m := range marks {
		mark := string(m)
		runs = append(runs, punctRun{
			pattern: regexp.MustCompile(regexp.QuoteMeta(mark) + `{3,}`),
			double:  mark + mark,
		})
	}
	return runs
}()

type punctRun struct {
	pattern *regexp.Regexp
	double  string
}

// isURL сообщает, похожа ли форма целиком на URL или адрес почты.
func isURL(form string) bool {
	return reURLForm.MatchString(form)
}

// normalizeForm сводит несловарную форму к стабильному виду: числа в 0,
// длинные повторы пунктуации - к двум знакам. form уже в нижнем регистре.
func normalizeForm(form string) string {
	if strings.IndexFunc(form, isASCIIDigit) >= 0 {
		form = normalizeDigits(form)
	}
	for _, r := range rePunctRuns {
		form = r.pattern.ReplaceAllLiteralString(form, r.double)
	}
	return form
}

func normalizeDigits(form string) string {
	form = reDigits.ReplaceAllLiteralString(form, "0")
	// "0,0,0" сворачивается за несколько проходов: совпадения не перекрываются.
	for reDigitPunct.MatchString(form) {
		form = reDigitPunct.ReplaceAllLiteralString(form, "0")
	}
	form = reLeadingPoint.ReplaceAllString(form, "${1}0")
	form = reDollarZero.ReplaceAllLiteralString(form, "0")
	form = rePercentZero.ReplaceAllLiteralString(form, "0")
	return form
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
