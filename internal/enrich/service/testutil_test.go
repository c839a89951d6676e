package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
)

func catalogTable() *fileio.Table {
	return &fileio.Table{
		Headers: []string{"출고상품명", "상품코드", "바코드", "상품 shoppingmall url", "unit_total price"},
		Rows: [][]string{
			{"our glow lip 11 mellow", "P-001", "8809000000011", "https://shop.example/p/1", "1,500"},
			{"tint 02 coral", "P-002", "8809000000028", "https://shop.example/p/2", ""},
		},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(catalogTable(), model.DefaultLayout().Catalog, "test")
	require.NoError(t, err)
	return c
}
