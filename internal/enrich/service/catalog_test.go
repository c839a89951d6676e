package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
)

func TestNewCatalog(t *testing.T) {
	c := testCatalog(t)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"ourglowlip11mellow", "tint02coral"}, c.Names())

	first := c.Entries[0]
	assert.Equal(t, "P-001", first.ProductCode)
	assert.Equal(t, "8809000000011", first.Barcode)
	assert.True(t, first.HasPrice)
	assert.Equal(t, 1500.0, first.UnitPrice)
	assert.Equal(t, "1,500", first.PriceText)

	assert.False(t, c.Entries[1].HasPrice)
}

func TestNewCatalogMissingColumns(t *testing.T) {
	tbl := &fileio.Table{Headers: []string{"출고상품명", "상품코드"}}

	_, err := NewCatalog(tbl, model.DefaultLayout().Catalog, "test")

	var mc *model.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "catalog", mc.Sheet)
	assert.Equal(t, []string{"바코드", "상품 shoppingmall url", "unit_total price"}, mc.Columns)
	assert.True(t, errors.Is(err, model.ErrMalformedInput))
}

func TestLoadCatalogFile(t *testing.T) {
	cols := model.DefaultLayout().Catalog

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "H.xlsx"), 1, cols)
		assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
	})

	t.Run("missing column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "H.xlsx")
		writeWorkbook(t, path, &fileio.Table{Headers: []string{"출고상품명"}, Rows: [][]string{{"x"}}})

		_, err := LoadCatalogFile(path, 1, cols)
		assert.ErrorIs(t, err, model.ErrCatalogUnavailable)
		var mc *model.MissingColumnError
		assert.ErrorAs(t, err, &mc)
	})

	t.Run("bundled workbook", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "H.xlsx")
		writeWorkbook(t, path, catalogTable())

		c, err := LoadCatalogFile(path, 1, cols)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
		assert.Equal(t, path, c.Source)
		assert.Equal(t, "8809000000028", c.Entries[1].Barcode)
		assert.Equal(t, 1500.0, c.Entries[0].UnitPrice)
	})
}

func writeWorkbook(t *testing.T, path string, tbl *fileio.Table) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, fileio.WriteXLSX(f, tbl, fileio.WriteOptions{}))
}
