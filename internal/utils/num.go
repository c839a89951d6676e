package utils

import (
	"math"
	"strconv"
	"strings"
)

var amountNoise = strings.NewReplacer(
	"\u00A0", "", "\u202F", "", "\u3000", "", " ", "", "\t", "",
	",", "", "¥", "", "￥", "", "₩", "", "$", "", "円", "", "원", "",
)

// ParseAmount парсит "1,200", "¥ 1,200", "3" и т.п. Запятая здесь всегда
// разделитель тысяч (JPY/KRW). Любой другой мусор -> false.
func ParseAmount(s string) (float64, bool) {
	s = amountNoise.Replace(strings.TrimSpace(s))
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
