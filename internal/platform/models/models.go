package models

import "time"

// ValueType describes how a parameter value should be interpreted.
type ValueType string

// Parameter value types.
const (
	ValueTypeText    ValueType = "text"
	ValueTypeNumber  ValueType = "number"
	ValueTypeDate    ValueType = "date"
	ValueTypeBoolean ValueType = "boolean"
)

// ParameterKind tells whether an extracted parameter is a fixed feed field
// or a repeated product characteristic.
type ParameterKind string

// Parameter kinds.
const (
	KindParameter      ParameterKind = "parameter"
	KindCharacteristic ParameterKind = "characteristic"
)

// ParameterCategory describes which part of the feed a parameter was extracted from.
type ParameterCategory string

// Parameter categories.
const (
	CategoryShop           ParameterCategory = "shop"
	CategoryParameter      ParameterCategory = "parameter"
	CategoryCurrency       ParameterCategory = "currency"
	CategoryCategory       ParameterCategory = "category"
	CategoryOffer          ParameterCategory = "offer"
	CategoryCharacteristic ParameterCategory = "characteristic"
)

// ParsedStructure is the result of extracting a catalog feed.
// Collections are always non-nil, absent feed sections produce empty slices.
type ParsedStructure struct {
	Shop       *ShopInfo
	Currencies []Currency
	Categories []Category
	Offers     []Offer
	Parameters []Parameter

	// Issues holds per-offer extraction failures collected during
	// best-effort parsing of noisy feeds.
	Issues []ItemError
}

// ShopInfo is shop header data from the feed.
type ShopInfo struct {
	Name    string
	Company string
	URL     string
}

// Currency is one currency entry from the feed, unique by ID within one parse.
type Currency struct {
	ID   string
	Rate float64
}

// Category is one category entry from the feed.
type Category struct {
	ID       string
	Name     string
	ParentID *string
}

// Offer is one fully extracted product entry from the feed.
type Offer struct {
	ID              string
	Available       bool
	Name            string
	NameUA          *string
	Article         *string
	Vendor          *string
	Description     *string
	DescriptionUA   *string
	Price           float64
	OldPrice        *float64
	CurrencyID      string
	CategoryID      string
	URL             string
	Picture         string
	StockQuantity   *int
	Characteristics []Characteristic
}

// Characteristic is a named product attribute, optionally localized.
type Characteristic struct {
	Name     string
	Value    string
	Language *string
}

// DedupKey returns the composite deduplication key for a characteristic.
// Characteristics without a language tag share the "default" bucket.
func (c Characteristic) DedupKey() string {
	language := "default"
	if c.Language != nil {
		language = *c.Language
	}
	return c.Name + "_" + language
}

// Parameter is one entry of the flat path-addressed parameter list.
// Repeated feed collections contribute only their first element here,
// full enumeration lives in the ParsedStructure collections.
type Parameter struct {
	Name     string
	Value    string
	Path     string
	Kind     ParameterKind
	Category ParameterCategory
}

// TemplateParameter is a persisted, user-editable parameter row.
type TemplateParameter struct {
	ID           int32             `json:"id"`
	TemplateID   int32             `json:"templateId"`
	Name         string            `json:"name"`
	Value        string            `json:"value"`
	Type         ValueType         `json:"type"`
	Category     ParameterCategory `json:"category"`
	XMLPath      string            `json:"xmlPath"`
	ParentID     *int32            `json:"parentId,omitempty"`
	ParentName   *string           `json:"parentName,omitempty"`
	IsActive     bool              `json:"isActive"`
	IsRequired   bool              `json:"isRequired"`
	DisplayOrder int32             `json:"displayOrder"`
}

// Product is the ingestion target shared by the XML and CSV paths.
type Product struct {
	ID            int
	ShopID        int
	Version       int64
	Name          string
	Description   string
	Price         float64
	OldPrice      *float64
	SalePrice     *float64
	Currency      string
	Manufacturer  string
	CategoryName  string
	StockQuantity *int
	Available     bool
	IsActive      bool
	CreatedAt     time.Time
	DeletedAt     *time.Time

	Images     []ProductImage
	Attributes []ProductAttribute
}

// ProductImage is one image owned by a product. Exactly one image per
// product should be main, first one wins.
type ProductImage struct {
	URL    string
	IsMain bool
}

// ProductAttribute is a name/value pair owned by a product, unique by name.
type ProductAttribute struct {
	Name     string
	Value    string
	Language *string
}

// ProductCategory is a category accumulated during ingestion.
// ProductCount is a running tally, not a live count.
type ProductCategory struct {
	Name         string
	ExternalID   *string
	ParentID     *string
	ProductCount int
}

// CSVResult is the result of parsing a delimiter-based supplier file.
type CSVResult struct {
	Products   []Product
	Categories []ProductCategory
}

// CategoryCounts are derived per-category parameter counters for dashboards.
type CategoryCounts struct {
	Parameters      int `json:"parameters"`
	Currencies      int `json:"currencies"`
	Categories      int `json:"categories"`
	Offers          int `json:"offers"`
	Characteristics int `json:"characteristics"`
}

// ItemError is a single item failure collected during best-effort parsing.
type ItemError struct {
	Index int
	Err   error
}

// ImportReport summarizes a best-effort batch ingestion.
type ImportReport struct {
	Succeeded int
	Failed    []ItemError
}

// Shop is a persisted feed source.
type Shop struct {
	ID        int
	Name      string
	URL       string
	CreatedAt time.Time
	DeletedAt *time.Time

	LastRuns []Run
}

// Run is one parsing process run.
type Run struct {
	ID              int
	ShopID          int
	CreatedAt       time.Time
	FinishedAt      *time.Time
	IsSuccess       *bool
	StatusMessage   *string
	CreatedProducts *int32
	UpdatedProducts *int32
	DeletedProducts *int32
	FailedOffers    *int32
	ProductsVersion int64
}
