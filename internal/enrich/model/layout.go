package model

// OrderColumns — заголовки листа заказов (S).
type OrderColumns struct {
	OrderNo     string `yaml:"order_no"`
	ItemName    string `yaml:"item_name"`
	ItemPcs     string `yaml:"item_pcs"`
	ServiceCode string `yaml:"service_code"`
	CountryCode string `yaml:"country_code"`
	Address     string `yaml:"address"`
	PostalCode  string `yaml:"postal_code"` // optional: the rule is skipped when the sheet has no such column
	Pkg         string `yaml:"pkg"`
	ItemOrigin  string `yaml:"item_origin"`
	Currency    string `yaml:"currency"`
	ShopURL     string `yaml:"shop_url"`
	UnitPrice   string `yaml:"unit_price"`
}

// CatalogColumns — заголовки мастер-каталога (H).
type CatalogColumns struct {
	Name        string `yaml:"name"`
	ProductCode string `yaml:"product_code"`
	Barcode     string `yaml:"barcode"`
	ShopURL     string `yaml:"shop_url"`
	UnitPrice   string `yaml:"unit_price"`
}

// DRColumns — заголовки выходного DR в порядке вывода.
type DRColumns struct {
	RefNo       string `yaml:"ref_no"`
	ProductCode string `yaml:"product_code"`
	ProductName string `yaml:"product_name"`
	Quantity    string `yaml:"quantity"`
	Barcode     string `yaml:"barcode"`
}

func (c DRColumns) Headers() []string {
	return []string{c.RefNo, c.ProductCode, c.ProductName, c.Quantity, c.Barcode}
}

// Constants are the values forced onto real order rows.
type Constants struct {
	OrderPrefix string `yaml:"order_prefix"`
	ServiceCode string `yaml:"service_code"`
	CountryCode string `yaml:"country_code"`
	Pkg         string `yaml:"pkg"`
	ItemOrigin  string `yaml:"item_origin"`
	Currency    string `yaml:"currency"`
}

// Layout is the whole column/constant profile of one variant of the tool.
type Layout struct {
	Orders    OrderColumns   `yaml:"orders"`
	Catalog   CatalogColumns `yaml:"catalog"`
	DR        DRColumns      `yaml:"dr"`
	Constants Constants      `yaml:"constants"`
	Threshold float64        `yaml:"threshold"`
}

// DefaultLayout returns the Qoo10 JP -> KR fulfillment profile.
func DefaultLayout() Layout {
	return Layout{
		Orders: OrderColumns{
			OrderNo:     "order_no",
			ItemName:    "item_name",
			ItemPcs:     "item_pcs",
			ServiceCode: "service code",
			CountryCode: "consignee_국가코드",
			Address:     "consignee_address (en)_jp지역 현지어 기재",
			PostalCode:  "consignee_postal code",
			Pkg:         "pkg",
			ItemOrigin:  "item_origin",
			Currency:    "currency",
			ShopURL:     "상품 shoppingmall url",
			UnitPrice:   "unit_total price",
		},
		Catalog: CatalogColumns{
			Name:        "출고상품명",
			ProductCode: "상품코드",
			Barcode:     "바코드",
			ShopURL:     "상품 shoppingmall url",
			UnitPrice:   "unit_total price",
		},
		DR: DRColumns{
			RefNo:       "ref_no (주문번호)",
			ProductCode: "하이브 상품코드",
			ProductName: "상품명",
			Quantity:    "수량",
			Barcode:     "바코드",
		},
		Constants: Constants{
			OrderPrefix: "86",
			ServiceCode: "99",
			CountryCode: "JP",
			Pkg:         "1",
			ItemOrigin:  "KR",
			Currency:    "JPY",
		},
		Threshold: 0.3,
	}
}
