package service

import (
	"regexp"
	"strings"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
)

var (
	reBracketNote = regexp.MustCompile(`\[.*?\]`)
	rePostal7     = regexp.MustCompile(`^[0-9]{7}$`)
)

// PrefixOrderNo adds the routing prefix unless the number already carries it.
// A blank order number stays blank.
func PrefixOrderNo(no, prefix string) string {
	if no == "" || strings.HasPrefix(no, prefix) {
		return no
	}
	return prefix + no
}

// StripBracketNote убирает пометки вида "[...]" из адреса.
func StripBracketNote(s string) string {
	return reBracketNote.ReplaceAllLiteralString(s, "")
}

// FormatPostalCode turns "1234567" into "123-4567"; anything else passes through.
func FormatPostalCode(s string) string {
	if !rePostal7.MatchString(s) {
		return s
	}
	return s[:3] + "-" + s[3:]
}

// IsRealRow reports whether a row carries data rather than template filler:
// more than one non-empty cell.
func IsRealRow(row []string) bool {
	n := 0
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			n++
			if n > 1 {
				return true
			}
		}
	}
	return false
}

// orderIndex — позиции колонок листа заказов; -1 значит «колонки нет».
type orderIndex struct {
	orderNo     int
	itemName    int
	itemPcs     int
	serviceCode int
	countryCode int
	pkg         int
	itemOrigin  int
	currency    int
	address     int
	postalCode  int
	shopURL     int
	unitPrice   int
}

func set(row []string, col int, v string) {
	if col >= 0 && col < len(row) {
		row[col] = v
	}
}

func get(row []string, col int) string {
	if col >= 0 && col < len(row) {
		return row[col]
	}
	return ""
}

// rewriteRow applies the fixed rule table to one row in place. isReal is the
// placeholder predicate evaluated once for the row before any rule runs.
func rewriteRow(row []string, ix orderIndex, c model.Constants, isReal bool) {
	set(row, ix.orderNo, PrefixOrderNo(get(row, ix.orderNo), c.OrderPrefix))
	if isReal {
		set(row, ix.serviceCode, c.ServiceCode)
		set(row, ix.countryCode, c.CountryCode)
	}
	set(row, ix.address, StripBracketNote(get(row, ix.address)))
	set(row, ix.postalCode, FormatPostalCode(get(row, ix.postalCode)))
	if isReal {
		set(row, ix.pkg, c.Pkg)
		set(row, ix.itemOrigin, c.ItemOrigin)
		set(row, ix.currency, c.Currency)
	}
}
