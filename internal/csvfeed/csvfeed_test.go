package csvfeed_test

import (
	"strings"
	"testing"

	"github.com/feedline/yml-feed-parser/internal/csvfeed"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitParse(t *testing.T) {
	file := strings.Join([]string{
		"Name,Price,Old_Price,Currency,Category,Images,Attributes,Stock_Quantity",
		`"Phone, black",12499.50,13999,UAH,Смартфони,https://s.ua/1.jpg;https://s.ua/2.jpg,"Колір:Чорний;РК:16:9;Колір:Сірий",5`,
		"",
		"Cable,199,,UAH,,,,",
	}, "\r\n")

	result, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err, "should not return any error")

	want := []models.Product{
		{
			Name:          "Phone, black",
			Price:         12499.50,
			OldPrice:      lo.ToPtr(13999.0),
			Currency:      "UAH",
			CategoryName:  "Смартфони",
			StockQuantity: lo.ToPtr(5),
			Available:     true,
			IsActive:      true,
			Images: []models.ProductImage{
				{URL: "https://s.ua/1.jpg", IsMain: true},
				{URL: "https://s.ua/2.jpg"},
			},
			Attributes: []models.ProductAttribute{
				{Name: "Колір", Value: "Чорний"},
				{Name: "РК", Value: "16:9"},
			},
		},
		{
			Name:         "Cable",
			Price:        199,
			Currency:     "UAH",
			CategoryName: csvfeed.DefaultCategory,
			Available:    true,
			IsActive:     true,
		},
	}
	assert.Equal(t, want, result.Products, "should parse all data rows")

	wantCategories := []models.ProductCategory{
		{Name: "Смартфони", ProductCount: 1},
		{Name: csvfeed.DefaultCategory, ProductCount: 1},
	}
	assert.Equal(t, wantCategories, result.Categories, "should tally categories with default bucket")
}

func TestUnitParseHeaderValidation(t *testing.T) {
	tests := map[string]struct {
		file        string
		wantErr     error
		wantMissing string
	}{
		"empty file": {
			file:    "",
			wantErr: csvfeed.ErrEmptyFile,
		},
		"blank lines only": {
			file:    "\n  \n\n",
			wantErr: csvfeed.ErrEmptyFile,
		},
		"missing price": {
			file:        "name,category\nLamp,Dim",
			wantMissing: "price",
		},
		"missing both": {
			file:        "sku,category\n1,Dim",
			wantMissing: "name, price",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result, err := csvfeed.Parse(strings.NewReader(tt.file))

			require.Nil(t, result, "should not return result")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}

			var formatErr *csvfeed.FormatError
			require.ErrorAs(t, err, &formatErr, "should return FormatError")
			assert.Contains(t, formatErr.Error(), tt.wantMissing, "error should name missing columns")
		})
	}
}

func TestUnitParseToleratesBadNumbers(t *testing.T) {
	file := "name,price,old_price,stock_quantity\nLamp,not-a-price,also-bad,many"

	result, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err, "bad numeric fields should not fail the row")

	require.Len(t, result.Products, 1)
	product := result.Products[0]
	assert.Zero(t, product.Price, "unparsable price should degrade to zero")
	assert.Nil(t, product.OldPrice, "unparsable old price should stay absent")
	assert.Nil(t, product.StockQuantity, "unparsable quantity should stay absent")
}

func TestUnitParseQuotedPadding(t *testing.T) {
	file := "name,price,manufacturer\n\" Phone \",10,\"  Acme\""

	result, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err, "should not return any error")

	require.Len(t, result.Products, 1)
	assert.Equal(t, " Phone ", result.Products[0].Name, "quoted padding should be kept verbatim")
	assert.Equal(t, "  Acme", result.Products[0].Manufacturer)
}

func TestUnitParseRepeatedParse(t *testing.T) {
	file := "name,price,category,attributes\n" +
		"Phone,10,Смартфони,Колір:Чорний;РК:16:9\n" +
		"Cable,5,,"

	first, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err)
	second, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same text should parse deep-equal results")
}

func TestUnitParseLeadingBlankLines(t *testing.T) {
	file := "\n\nname,price\nLamp,10"

	result, err := csvfeed.Parse(strings.NewReader(file))
	require.NoError(t, err, "header may be preceded by blank lines")
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Lamp", result.Products[0].Name)
}
