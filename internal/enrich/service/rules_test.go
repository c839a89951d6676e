package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
)

func TestFormatPostalCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1234567", "123-4567"},
		{"0600001", "060-0001"},
		{"123456", "123456"},
		{"12A4567", "12A4567"},
		{"12345678", "12345678"},
		{"123-4567", "123-4567"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPostalCode(tt.input))
		})
	}
}

func TestPrefixOrderNo(t *testing.T) {
	assert.Equal(t, "8645038359", PrefixOrderNo("45038359", "86"))
	assert.Equal(t, "8645038359", PrefixOrderNo("8645038359", "86"))
	assert.Equal(t, "", PrefixOrderNo("", "86"))
}

func TestStripBracketNote(t *testing.T) {
	assert.Equal(t, "東京都渋谷区  1-2-3", StripBracketNote("東京都渋谷区 [様方] 1-2-3"))
	assert.Equal(t, "ab", StripBracketNote("a[x]b[y]"))
	assert.Equal(t, "no notes", StripBracketNote("no notes"))
}

func TestIsRealRow(t *testing.T) {
	assert.False(t, IsRealRow(nil))
	assert.False(t, IsRealRow([]string{"", "", ""}))
	assert.False(t, IsRealRow([]string{"45038359", "", " "}))
	assert.True(t, IsRealRow([]string{"45038359", "lip", ""}))
}

func TestRewriteRow(t *testing.T) {
	ix := orderIndex{
		orderNo: 0, itemName: 1, itemPcs: 2, address: 3, postalCode: 4,
		serviceCode: 5, countryCode: 6, pkg: 7, itemOrigin: 8, currency: 9,
		shopURL: 10, unitPrice: 11,
	}
	c := model.DefaultLayout().Constants

	t.Run("real row", func(t *testing.T) {
		row := []string{"45038359", "lip", "2", "東京都 [様方]", "1500001", "", "", "", "", "", "", ""}
		rewriteRow(row, ix, c, IsRealRow(row))
		assert.Equal(t, []string{"8645038359", "lip", "2", "東京都 ", "150-0001", "99", "JP", "1", "KR", "JPY", "", ""}, row)
	})

	t.Run("placeholder row keeps blanks", func(t *testing.T) {
		row := []string{"45038359", "", "", "", "", "", "", "", "", "", "", ""}
		rewriteRow(row, ix, c, IsRealRow(row))
		assert.Equal(t, "8645038359", row[0])
		for _, v := range row[1:] {
			assert.Empty(t, v)
		}
	})

	t.Run("absent postal column is skipped", func(t *testing.T) {
		noPostal := ix
		noPostal.postalCode = -1
		row := []string{"1", "lip", "2", "addr", "1500001", "", "", "", "", "", "", ""}
		rewriteRow(row, noPostal, c, true)
		assert.Equal(t, "1500001", row[4])
	})
}
