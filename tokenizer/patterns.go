package tokenizer

import "regexp"

// --- СТАТИЧЕСКИЕ ШАБЛОНЫ ---
// Классы [[:alpha:]], [[:alnum:]], [[:punct:]], [[:upper:]] и \w здесь ASCII-шные.

var (
	// URL и адреса электронной почты. Последний символ не может быть знаком препинания,
	// чтобы точка в конце предложения не прилипала к адресу.
	reURL = regexp.MustCompile(`(?i)(?:(?:https?|s?ftp|file|ssh|git)://|www\d{0,3}\.|mailto:)[^\s"<>]*[^\s"<>.,;:!?'()\[\]{}]` +
		`|[[:alnum:]._%+-]+@[[:alnum:]-]+(?:\.[[:alnum:]-]+)*\.[[:alpha:]]{2,}`)

	// Остаток сокращения: "U.S.A.," -> защищенное "U.S.A." и ",". Защищается группа 1.
	reAbbreviationRemnant = regexp.MustCompile(`^((?:[[:alpha:]]\.)+)[[:punct:]]*$`)

	// Форма сокращения целиком: одна или больше групп "буква.", в конце может стоять буква.
	reAbbreviationShape = regexp.MustCompile(`^(?:[[:alpha:]]\.)+[[:alpha:]]?$`)

	// Похоже на имя файла: что-то, точка и известное расширение в конце.
	reFilename = regexp.MustCompile(`\S\.(?:txt|text|rtf|doc|docx|odt|pdf|ppt|pptx|xls|xlsx|csv|tsv|xml|html?|json|ya?ml|md|` +
		`zip|gz|tgz|tar|rar|7z|bz2|jpe?g|png|gif|bmp|tiff?|svg|mp3|mp4|wav|avi|mov|mkv|` +
		`exe|dll|jar|java|go|py|rb|js|ts|css|cpp|hpp|sh|bat|log|ini|cfg|conf)$`)

	// Соцсети: @user или #tag, дальше только буквы и цифры.
	reSocialTag = regexp.MustCompile(`^[@#][\pL\pN]+$`)

	reRepeatedTerminal = regexp.MustCompile(`[.?!]{2,}`)
	reRepeatedMarker   = regexp.MustCompile("-{2,}|\\*{2,}|={2,}|~{2,}|,{2,}|`{2,}|'{2,}")
	reUSDollar         = regexp.MustCompile(`^US\$`)

	// Пунктуация в начале обработки: скобки, кавычки, запятая, двоеточие, точка с запятой.
	reLeadingPunct = regexp.MustCompile(`[()\[\]{}<>,:;"]`)
	// Вся оставшаяся пунктуация, выделяется в самом конце.
	reTrailingPunct = regexp.MustCompile("[.?!`'\\-/@#$%&|]")

	// Стяжение на конце токена: 's, 'd, 'm, 'z, 'll, 're, 've, 'nt и n't.
	reContraction = regexp.MustCompile(`(?i)(?:'(?:s|d|m|z|ll|re|ve|nt)|n't)$`)

	// Ступени экранирования: группа 1 и 3 - контекст, группа 2 - прячущийся знак.
	rePeriodInWord     = regexp.MustCompile(`([[:alnum:]])(\.)([[:alnum:]])`)
	reAmpersandInUpper = regexp.MustCompile(`([[:upper:]])(&)([[:upper:]])`)
	reApostropheInWord = regexp.MustCompile(`(\w)(')(\w)`)
)

// d0dPatterns - шаблоны D0D для каждого знака из d0dMarks, в порядке индексов.
// Для апострофа два шаблона: '90 и 1990's.
var d0dPatterns = [len(d0dMarks)][]*regexp.Regexp{
	{regexp.MustCompile(`(^|[[:alnum:]])(\.)(\d)`)},
	{regexp.MustCompile(`(\d)(,)(\d)`)},
	{regexp.MustCompile(`(\d)(:)(\d)`)},
	{regexp.MustCompile(`(\d)(-)(\d)`)},
	{regexp.MustCompile(`(\d)(/)(\d)`)},
	{regexp.MustCompile(`(^)(')(\d)`), regexp.MustCompile(`(\d)(')(s)`)},
}
