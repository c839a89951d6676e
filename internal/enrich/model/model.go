package model

// CatalogEntry — одна строка мастер-каталога (H).
type CatalogEntry struct {
	Name        string  `json:"name"`        // каноническое наименование
	ProductCode string  `json:"productCode"` // код товара фулфилмента
	Barcode     string  `json:"barcode"`
	ShopURL     string  `json:"shopUrl"`
	UnitPrice   float64 `json:"unitPrice"`
	HasPrice    bool    `json:"-"` // false, если ячейка цены пустая или не число
	PriceText   string  `json:"-"` // ячейка цены как есть; её и копируем в заказ
}

// MatchMapping maps a source index to a target index. A missing key means
// no candidate scored above the threshold.
type MatchMapping map[int]int

// DeliveryRequestRow is one line of the DR manifest.
type DeliveryRequestRow struct {
	RefNo       string   `json:"refNo"`
	ProductCode string   `json:"productCode"`
	ProductName string   `json:"productName"`
	Quantity    string   `json:"quantity"`
	Barcode     string   `json:"barcode"`
	Score       *float64 `json:"score,omitempty"` // схожесть принятой позиции каталога
}

// Stats — сводка по одному прогону.
type Stats struct {
	OrderRows      int      `json:"orderRows"`
	CatalogRows    int      `json:"catalogRows"`
	Matched        int      `json:"matched"`
	Unmatched      int      `json:"unmatched"`
	RealRows       int      `json:"realRows"`
	Placeholders   int      `json:"placeholders"`
	UnmatchedNames []string `json:"unmatchedNames"`
}

type Preview struct {
	Catalog string               `json:"catalog"` // default | upload
	Stats   Stats                `json:"stats"`
	DR      []DeliveryRequestRow `json:"dr"`
}
