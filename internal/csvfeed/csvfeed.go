// Package csvfeed parses delimiter-based supplier files into the same
// product and category shape as the XML path, so both ingestion formats
// feed one persistence pipeline.
package csvfeed

import (
	"io"
	"strconv"
	"strings"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
)

// DefaultCategory is assigned to product rows without a category value.
const DefaultCategory = "Без категорії"

// requiredColumns must be present in the header row, case-insensitive.
var requiredColumns = []string{"name", "price"}

// Parser adapts the package level Parse function to the supplier file
// interface used by the parsing pipeline.
type Parser struct{}

// Parse parses supplier CSV text, see the package level Parse.
func (Parser) Parse(r io.Reader) (*models.CSVResult, error) {
	return Parse(r)
}

// Parse parses supplier CSV text into products and categories.
//
// The header row defines the column to field mapping. Files without content
// fail with ErrEmptyFile, headers lacking name or price fail with
// FormatError naming the missing columns. Numeric fields degrade to zero or
// absent on bad input instead of failing the row. Categories are
// deduplicated by name with a running product tally, mirroring the XML
// ingestion path.
func Parse(r io.Reader) (*models.CSVResult, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	headerIx := -1
	for ix, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerIx = ix
			break
		}
	}
	if headerIx == -1 {
		return nil, ErrEmptyFile
	}

	columns := map[string]int{}
	for ix, column := range splitLine(lines[headerIx]) {
		columns[strings.ToLower(strings.TrimSpace(column))] = ix
	}

	missing := lo.Filter(requiredColumns, func(column string, _ int) bool {
		_, ok := columns[column]
		return !ok
	})
	if len(missing) > 0 {
		return nil, &FormatError{Missing: missing}
	}

	result := &models.CSVResult{
		Products:   []models.Product{},
		Categories: []models.ProductCategory{},
	}
	categoryIx := map[string]int{}

	for _, line := range lines[headerIx+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		product := buildProduct(splitLine(line), columns)
		result.Products = append(result.Products, product)

		if ix, ok := categoryIx[product.CategoryName]; ok {
			result.Categories[ix].ProductCount++
			continue
		}
		categoryIx[product.CategoryName] = len(result.Categories)
		result.Categories = append(result.Categories, models.ProductCategory{
			Name:         product.CategoryName,
			ProductCount: 1,
		})
	}

	return result, nil
}

// splitLine tokenizes one csv line respecting double-quoted fields that may
// contain literal commas. Quote-toggle state machine, one pass, no
// backtracking. Unquoted fields are trimmed, quoted fields keep their
// padding verbatim.
func splitLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
		quoted   bool
	)

	flush := func() {
		value := field.String()
		if !quoted {
			value = strings.TrimSpace(value)
		}
		fields = append(fields, value)
		field.Reset()
		quoted = false
	}

	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			inQuotes = !inQuotes
			quoted = true
		case ch == ',' && !inQuotes:
			flush()
		default:
			field.WriteByte(ch)
		}
	}
	flush()

	return fields
}

func buildProduct(fields []string, columns map[string]int) models.Product {
	value := func(column string) string {
		ix, ok := columns[column]
		if !ok || ix >= len(fields) {
			return ""
		}
		return fields[ix]
	}

	product := models.Product{
		Name:         value("name"),
		Description:  value("description"),
		Price:        parsePrice(value("price")),
		OldPrice:     parseOptionalPrice(value("old_price")),
		SalePrice:    parseOptionalPrice(value("sale_price")),
		Currency:     value("currency"),
		Manufacturer: value("manufacturer"),
		CategoryName: value("category"),
		Available:    true,
		IsActive:     true,
		Images:       parseImages(value("images")),
		Attributes:   parseAttributes(value("attributes")),
	}

	if product.CategoryName == "" {
		product.CategoryName = DefaultCategory
	}
	if quantity, err := strconv.Atoi(strings.TrimSpace(value("stock_quantity"))); err == nil {
		product.StockQuantity = lo.ToPtr(quantity)
	}

	return product
}

// parseImages splits a ;-delimited image list. The first image is marked
// main, first wins even when later rows repeat the url.
func parseImages(raw string) []models.ProductImage {
	var images []models.ProductImage
	for _, part := range strings.Split(raw, ";") {
		url := strings.TrimSpace(part)
		if url == "" {
			continue
		}
		images = append(images, models.ProductImage{
			URL:    url,
			IsMain: len(images) == 0,
		})
	}
	return images
}

// parseAttributes splits a ;-delimited attribute list of name:value pairs.
// The first colon separates name from value, embedded colons stay in the
// value. Duplicate names are dropped, first occurrence wins.
func parseAttributes(raw string) []models.ProductAttribute {
	var attributes []models.ProductAttribute
	seen := map[string]struct{}{}

	for _, part := range strings.Split(raw, ";") {
		pair := strings.TrimSpace(part)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		attributes = append(attributes, models.ProductAttribute{
			Name:  name,
			Value: strings.TrimSpace(value),
		})
	}

	return attributes
}

func parsePrice(raw string) float64 {
	parsed, err := parseFloat(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func parseOptionalPrice(raw string) *float64 {
	parsed, err := parseFloat(raw)
	if err != nil {
		return nil
	}
	return lo.ToPtr(parsed)
}

func parseFloat(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(raw, " ", ""), ",", ".")
	return strconv.ParseFloat(cleaned, 64)
}
