package service

import "regexp"

// Python-совместимый \s: всё, для чего str.isspace() истинно.
const pySpace = `[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]`

// Шум в названиях товаров, порядок важен.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`#.*?セット`), // "#2本セット" и т.п.
	regexp.MustCompile(`【.*?】`),
	regexp.MustCompile(`/.*?`), // lazy with nothing after it: only the slash itself goes
	regexp.MustCompile(`韓コスメ`),
	regexp.MustCompile(`口紅`),
	regexp.MustCompile(`リップ`),
	regexp.MustCompile(`アワグロウ`),
	regexp.MustCompile(`[\[\]【】#]`),
	regexp.MustCompile(pySpace + `{2,}`),
}

var reAnySpace = regexp.MustCompile(pySpace + `+`)

// CleanText reduces a product name to the form compared by the matcher:
// noise patterns removed, then every whitespace code point dropped.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	for _, re := range noisePatterns {
		s = re.ReplaceAllLiteralString(s, "")
	}
	return reAnySpace.ReplaceAllLiteralString(s, "")
}

// CleanAll — CleanText по всему срезу.
func CleanAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = CleanText(n)
	}
	return out
}
