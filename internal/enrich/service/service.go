package service

import (
	"github.com/changmai/sabang-qoo10-rincos/internal/enrich/model"
	"github.com/changmai/sabang-qoo10-rincos/internal/fileio"
)

// Result — всё, что даёт один прогон: обогащённый лист заказов и DR.
type Result struct {
	Orders *fileio.Table
	DR     []model.DeliveryRequestRow
	Stats  model.Stats
}

// Run enriches a copy of the order sheet from the catalog and derives the
// delivery request rows. The input table is left untouched. A missing
// required column fails the whole run before anything is produced. A zero
// layout threshold means DefaultThreshold.
func Run(orders *fileio.Table, cat *Catalog, layout model.Layout) (*Result, error) {
	cols := layout.Orders
	thr := layout.Threshold
	if thr == 0 {
		thr = DefaultThreshold
	}

	var missing []string
	for _, name := range []string{cols.OrderNo, cols.ItemName, cols.ItemPcs, cols.Address} {
		if orders.Index(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &model.MissingColumnError{Sheet: "orders", Columns: missing}
	}

	out := orders.Clone()
	ix := orderIndex{
		orderNo:     out.Index(cols.OrderNo),
		itemName:    out.Index(cols.ItemName),
		itemPcs:     out.Index(cols.ItemPcs),
		address:     out.Index(cols.Address),
		postalCode:  out.Index(cols.PostalCode),
		shopURL:     out.EnsureColumn(cols.ShopURL),
		unitPrice:   out.EnsureColumn(cols.UnitPrice),
		serviceCode: out.EnsureColumn(cols.ServiceCode),
		countryCode: out.EnsureColumn(cols.CountryCode),
		pkg:         out.EnsureColumn(cols.Pkg),
		itemOrigin:  out.EnsureColumn(cols.ItemOrigin),
		currency:    out.EnsureColumn(cols.Currency),
	}

	st := model.Stats{OrderRows: len(out.Rows), CatalogRows: cat.Len()}

	// 1) каталожные поля в строки заказа
	names := CleanAll(out.Column(ix.itemName))
	for s, h := range MatchAll(names, cat.Names(), thr) {
		e := cat.Entries[h]
		out.Set(s, ix.shopURL, e.ShopURL)
		out.Set(s, ix.unitPrice, e.PriceText)
	}

	// 2) правила; признак «настоящей» строки считаем один раз до правок
	for _, row := range out.Rows {
		isReal := IsRealRow(row)
		if isReal {
			st.RealRows++
		} else {
			st.Placeholders++
		}
		rewriteRow(row, ix, layout.Constants, isReal)
	}

	// 3) DR: отдельный проход сопоставления по уже обогащённым названиям
	dr := make([]model.DeliveryRequestRow, len(out.Rows))
	drNames := make([]string, len(out.Rows))
	for i, row := range out.Rows {
		dr[i] = model.DeliveryRequestRow{
			RefNo:       row[ix.orderNo],
			ProductName: row[ix.itemName],
			Quantity:    row[ix.itemPcs],
		}
		drNames[i] = CleanText(row[ix.itemName])
	}
	scored := MatchScored(drNames, cat.Names(), thr)
	for i := range dr {
		m, ok := scored[i]
		if !ok {
			if dr[i].ProductName != "" {
				st.Unmatched++
				st.UnmatchedNames = append(st.UnmatchedNames, dr[i].ProductName)
			}
			continue
		}
		e := cat.Entries[m.Target]
		score := m.Score
		dr[i].ProductCode = e.ProductCode
		dr[i].Barcode = e.Barcode
		dr[i].ProductName = e.Name
		dr[i].Score = &score
		st.Matched++
	}

	return &Result{Orders: out, DR: dr, Stats: st}, nil
}

// DRTable lays the DR rows out under the configured headers.
func DRTable(rows []model.DeliveryRequestRow, cols model.DRColumns) *fileio.Table {
	t := &fileio.Table{Headers: cols.Headers(), Rows: make([][]string, len(rows))}
	for i, r := range rows {
		t.Rows[i] = []string{r.RefNo, r.ProductCode, r.ProductName, r.Quantity, r.Barcode}
	}
	return t
}
