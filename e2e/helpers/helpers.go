package helpers

import (
	"bytes"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/models/modelstesting"
	pgmodels "github.com/feedline/yml-feed-parser/internal/platform/storage/gen/postgres/public/model"
	"github.com/feedline/yml-feed-parser/internal/platform/storage/storagetesting"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// WaitForRunToBeFinished is blocking helper function, returns latest run after it is finished.
func WaitForRunToBeFinished(t *testing.T, queryable qrm.Queryable, feedURL string) *models.Run {
	t.Helper()

	var shopID int
	for {
		<-time.After(time.Millisecond * 250)
		shopID = storagetesting.GetShopID(t, queryable, feedURL)
		if shopID != 0 {
			break
		}
	}

	var latestRun *models.Run
	for {
		<-time.After(time.Millisecond * 500)
		latestRun = storagetesting.GetLatestRun(t, queryable, shopID)
		if latestRun != nil && latestRun.FinishedAt != nil {
			return latestRun
		}
	}
}

// GetProducts is helper function for getting products from db with their
// images and attributes, ordered by name (must be integer).
func GetProducts(t *testing.T, queryable qrm.Queryable, feedURL string) []models.Product {
	t.Helper()

	shopID := storagetesting.GetShopID(t, queryable, feedURL)
	dbProducts := storagetesting.GetProductsByShopID(t, queryable, shopID)

	products := make([]models.Product, len(dbProducts))
	for ix := range dbProducts {
		products[ix] = *fromDBProduct(
			&dbProducts[ix],
			storagetesting.GetImagesByProductID(t, queryable, int(dbProducts[ix].ID)),
			storagetesting.GetAttributesByProductID(t, queryable, int(dbProducts[ix].ID)),
		)
	}

	sort.Slice(products, func(i, j int) bool {
		var aID, bID int
		var err error
		if aID, err = strconv.Atoi(products[i].Name); err != nil {
			require.FailNow(t, "expected product name should be integer")
		}
		if bID, err = strconv.Atoi(products[j].Name); err != nil {
			require.FailNow(t, "expected product name should be integer")
		}
		return aID < bID
	})

	return products
}

// PrepareMockedHTTPServer is helper function for mocking http srv and client.
// Returns function for setting feed file to return, feed number is from 0 to len(feedFiles) inclusive.
func PrepareMockedHTTPServer(t *testing.T, feedFiles [][]byte, statusCode int) (*httptest.Server, func(int)) {
	t.Helper()

	feedFileToReturnIx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/xml")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(feedFiles[feedFileToReturnIx])
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { feedFileToReturnIx = i }
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateTestOffers generates n offers with names in [1;n] all referencing
// the same feed category.
func GenerateTestOffers(t *testing.T, n int, categoryID string) []models.Offer {
	t.Helper()

	results := make([]models.Offer, n)

	for ix := 0; ix < n; ix++ {
		results[ix] = modelstesting.FakeOffer(func(o *models.Offer) {
			o.Name = strconv.Itoa(ix + 1)
			o.CategoryID = categoryID
		})
	}

	return results
}

type feedXML struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Date    string   `xml:"date,attr"`
	Shop    shopXML  `xml:"shop"`
}

type shopXML struct {
	Name       string        `xml:"name"`
	Company    string        `xml:"company,omitempty"`
	URL        string        `xml:"url,omitempty"`
	Currencies []currencyXML `xml:"currencies>currency"`
	Categories []categoryXML `xml:"categories>category"`
	Offers     []offerXML    `xml:"offers>offer"`
}

type currencyXML struct {
	ID   string  `xml:"id,attr"`
	Rate float64 `xml:"rate,attr"`
}

type categoryXML struct {
	ID       string  `xml:"id,attr"`
	ParentID *string `xml:"parentId,attr,omitempty"`
	Name     string  `xml:",chardata"`
}

type offerXML struct {
	ID            string     `xml:"id,attr"`
	Available     bool       `xml:"available,attr"`
	Name          string     `xml:"name"`
	NameUA        *string    `xml:"name_ua,omitempty"`
	VendorCode    *string    `xml:"vendorCode,omitempty"`
	Vendor        *string    `xml:"vendor,omitempty"`
	Description   *string    `xml:"description,omitempty"`
	DescriptionUA *string    `xml:"description_ua,omitempty"`
	Price         float64    `xml:"price"`
	OldPrice      *float64   `xml:"price_old,omitempty"`
	CurrencyID    string     `xml:"currencyId"`
	CategoryID    string     `xml:"categoryId"`
	URL           string     `xml:"url"`
	Picture       string     `xml:"picture,omitempty"`
	StockQuantity *int       `xml:"stock_quantity,omitempty"`
	Params        []paramXML `xml:"param"`
}

type paramXML struct {
	Name  string  `xml:"name,attr"`
	Lang  *string `xml:"lang,attr,omitempty"`
	Value string  `xml:",chardata"`
}

// FeedToXML is helper function which renders a whole catalog document from
// shop header, currencies, categories and offers.
func FeedToXML(
	t *testing.T,
	shop models.ShopInfo,
	currencies []models.Currency,
	categories []models.Category,
	offers []models.Offer,
) []byte {
	t.Helper()

	feed := feedXML{
		Date: time.Now().Format("2006-01-02 15:04"),
		Shop: shopXML{
			Name:    shop.Name,
			Company: shop.Company,
			URL:     shop.URL,
		},
	}

	for _, currency := range currencies {
		feed.Shop.Currencies = append(feed.Shop.Currencies, currencyXML{ID: currency.ID, Rate: currency.Rate})
	}
	for _, category := range categories {
		feed.Shop.Categories = append(feed.Shop.Categories, categoryXML{
			ID:       category.ID,
			ParentID: category.ParentID,
			Name:     category.Name,
		})
	}
	for ix := range offers {
		feed.Shop.Offers = append(feed.Shop.Offers, *toOfferXML(&offers[ix]))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(&buf)

	if err := encoder.Encode(&feed); err != nil {
		require.FailNow(t, "can't encode feed to xml", err)
	}

	if err := encoder.Close(); err != nil {
		require.FailNow(t, "can't close xml encoder", err)
	}

	return buf.Bytes()
}

func toOfferXML(offer *models.Offer) *offerXML {
	result := offerXML{
		ID:            offer.ID,
		Available:     offer.Available,
		Name:          offer.Name,
		NameUA:        offer.NameUA,
		VendorCode:    offer.Article,
		Vendor:        offer.Vendor,
		Description:   offer.Description,
		DescriptionUA: offer.DescriptionUA,
		Price:         offer.Price,
		OldPrice:      offer.OldPrice,
		CurrencyID:    offer.CurrencyID,
		CategoryID:    offer.CategoryID,
		URL:           offer.URL,
		Picture:       offer.Picture,
		StockQuantity: offer.StockQuantity,
	}

	for _, characteristic := range offer.Characteristics {
		result.Params = append(result.Params, paramXML{
			Name:  characteristic.Name,
			Lang:  characteristic.Language,
			Value: characteristic.Value,
		})
	}

	return &result
}

func fromDBProduct(
	product *pgmodels.Product,
	images []pgmodels.ProductImage,
	attributes []pgmodels.ProductAttribute,
) *models.Product {
	return &models.Product{
		ID:            int(product.ID),
		ShopID:        int(product.ShopID),
		Version:       product.Version,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		OldPrice:      product.OldPrice,
		SalePrice:     product.SalePrice,
		Currency:      product.Currency,
		Manufacturer:  product.Manufacturer,
		CategoryName:  product.CategoryName,
		StockQuantity: fromInt32Ptr(product.StockQuantity),
		Available:     product.Available,
		IsActive:      product.IsActive,
		Images:        fromDBImages(images),
		Attributes:    fromDBAttributes(attributes),
		CreatedAt:     product.CreatedAt,
		DeletedAt:     product.DeletedAt,
	}
}

func fromDBImages(images []pgmodels.ProductImage) []models.ProductImage {
	result := make([]models.ProductImage, 0, len(images))
	for ix := range images {
		result = append(result, models.ProductImage{
			URL:    images[ix].URL,
			IsMain: images[ix].IsMain,
		})
	}
	return result
}

func fromDBAttributes(attributes []pgmodels.ProductAttribute) []models.ProductAttribute {
	result := make([]models.ProductAttribute, 0, len(attributes))
	for ix := range attributes {
		result = append(result, models.ProductAttribute{
			Name:     attributes[ix].Name,
			Value:    attributes[ix].Value,
			Language: attributes[ix].Language,
		})
	}
	return result
}

func fromInt32Ptr(value *int32) *int {
	if value == nil {
		return nil
	}
	result := int(*value)
	return &result
}
