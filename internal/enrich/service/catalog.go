package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
	"github.com/changmai/sabang-qoo10-rincos/internal/utils"
)

// Catalog is the read-only product master. Names are cleaned once on load
// and reused by every matching pass.
type Catalog struct {
	Source  string
	Entries []model.CatalogEntry
	names   []string
}

// NewCatalog builds a Catalog from a parsed sheet. Every catalog column of
// the layout is required.
func NewCatalog(t *fileio.Table, cols model.CatalogColumns, source string) (*Catalog, error) {
	want := []string{cols.Name, cols.ProductCode, cols.Barcode, cols.ShopURL, cols.UnitPrice}
	idx := make([]int, len(want))
	var missing []string
	for i, name := range want {
		idx[i] = t.Index(name)
		if idx[i] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &model.MissingColumnError{Sheet: "catalog", Columns: missing}
	}

	c := &Catalog{Source: source, Entries: make([]model.CatalogEntry, 0, len(t.Rows))}
	for r := range t.Rows {
		e := model.CatalogEntry{
			Name:        t.Cell(r, idx[0]),
			ProductCode: t.Cell(r, idx[1]),
			Barcode:     t.Cell(r, idx[2]),
			ShopURL:     t.Cell(r, idx[3]),
			PriceText:   t.Cell(r, idx[4]),
		}
		e.UnitPrice, e.HasPrice = utils.ParseAmount(e.PriceText)
		c.Entries = append(c.Entries, e)
	}
	c.names = make([]string, len(c.Entries))
	for i, e := range c.Entries {
		c.names[i] = CleanText(e.Name)
	}
	return c, nil
}

// LoadCatalogFile reads the bundled catalog. Any failure is reported as
// ErrCatalogUnavailable with the cause attached.
func LoadCatalogFile(path string, headerRow int, cols model.CatalogColumns) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	t, err := fileio.ReadTable(f, filepath.Base(path), headerRow)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrCatalogUnavailable, path, err)
	}
	c, err := NewCatalog(t, cols, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrCatalogUnavailable, err)
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.Entries) }

// Names returns the cleaned names in catalog order.
func (c *Catalog) Names() []string { return c.names }
