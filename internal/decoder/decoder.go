package decoder

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
)

// Fixed path-addressed locations of feed values. Paths stay literal even
// when offers were located by a fallback strategy, editors match rows by
// these canonical strings.
const (
	pathShopName    = "/yml_catalog/shop/name"
	pathShopCompany = "/yml_catalog/shop/company"
	pathShopURL     = "/yml_catalog/shop/url"
	pathCurrency    = "/yml_catalog/shop/currencies/currency"
	pathCategory    = "/yml_catalog/shop/categories/category"
	pathOffer       = "/yml_catalog/shop/offers/offer"
)

// offerSampleFields is the allow-list of basic offer children contributing
// to the flat parameters list, in emission order.
var offerSampleFields = []string{
	"price", "price_old", "price_promo", "currencyId", "categoryId",
	"picture", "vendor", "name", "description", "stock_quantity",
	"available", "url",
}

// languageSuffixes are recognized locale markers in param names,
// e.g. "Колір_ua".
var languageSuffixes = []string{"_ua", "_uk", "_ru", "_en"}

// Decoder extracts normalized catalog structure from XML feeds.
//
// By default repeated collections contribute only their first element to the
// flat Parameters list to keep it small, full enumeration lives in the
// Currencies, Categories and Offers collections. Set SampleAll to emit
// parameters for every element of repeated collections.
type Decoder struct {
	SampleAll bool
}

// ExtractStructure parses feed XML from r and derives the normalized
// path-addressed parameter structure.
//
// Malformed markup fails with ParseError. A well-formed document without
// shop header and without any product-like elements fails with ErrNoOffers.
// Absent feed sections produce empty collections, never nil. Individual
// malformed offers are collected into Issues and don't fail the parse.
func (d Decoder) ExtractStructure(r io.Reader) (*models.ParsedStructure, error) {
	root, err := ParseTree(r)
	if err != nil {
		return nil, err
	}

	// synthetic document node, lets fixed-path strategies match the root tag
	doc := &Node{Children: []*Node{root}}

	structure := &models.ParsedStructure{
		Currencies: []models.Currency{},
		Categories: []models.Category{},
		Offers:     []models.Offer{},
		Parameters: []models.Parameter{},
	}

	d.extractShop(doc, structure)
	d.extractCurrencies(doc, structure)
	d.extractCategories(doc, structure)

	offerNodes, _ := locateOffers(doc)
	if len(offerNodes) == 0 && structure.Shop == nil &&
		len(structure.Currencies) == 0 && len(structure.Categories) == 0 {
		return nil, ErrNoOffers
	}

	d.extractOffers(offerNodes, structure)

	return structure, nil
}

func (d Decoder) extractShop(doc *Node, structure *models.ParsedStructure) {
	shop := doc.FindFirst("shop")
	if shop == nil {
		return
	}

	structure.Shop = &models.ShopInfo{
		Name:    shop.ChildText("name"),
		Company: shop.ChildText("company"),
		URL:     shop.ChildText("url"),
	}

	fields := []struct {
		name  string
		value string
		path  string
	}{
		{"shop_name", structure.Shop.Name, pathShopName},
		{"shop_company", structure.Shop.Company, pathShopCompany},
		{"shop_url", structure.Shop.URL, pathShopURL},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		structure.Parameters = append(structure.Parameters, models.Parameter{
			Name:     field.name,
			Value:    field.value,
			Path:     field.path,
			Kind:     models.KindParameter,
			Category: models.CategoryShop,
		})
	}
}

func (d Decoder) extractCurrencies(doc *Node, structure *models.ParsedStructure) {
	seen := map[string]struct{}{}
	for _, node := range doc.FindAll("currency") {
		id := node.Attr("id")
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		structure.Currencies = append(structure.Currencies, models.Currency{
			ID:   id,
			Rate: parseFloat(node.Attr("rate"), 1),
		})
	}

	for ix := range structure.Currencies {
		if ix > 0 && !d.SampleAll {
			break
		}
		currency := structure.Currencies[ix]
		structure.Parameters = append(structure.Parameters,
			models.Parameter{
				Name:     "currency_id",
				Value:    currency.ID,
				Path:     indexedPath(pathCurrency, ix) + "/@id",
				Kind:     models.KindParameter,
				Category: models.CategoryCurrency,
			},
			models.Parameter{
				Name:     "currency_rate",
				Value:    strconv.FormatFloat(currency.Rate, 'f', -1, 64),
				Path:     indexedPath(pathCurrency, ix) + "/@rate",
				Kind:     models.KindParameter,
				Category: models.CategoryCurrency,
			},
		)
	}
}

func (d Decoder) extractCategories(doc *Node, structure *models.ParsedStructure) {
	for _, node := range doc.FindAll("category") {
		category := models.Category{
			ID:   node.Attr("id"),
			Name: node.TrimmedText(),
		}
		if parent := node.Attr("parentId"); parent != "" {
			category.ParentID = lo.ToPtr(parent)
		} else if rzID := node.Attr("rz_id"); rzID != "" {
			category.ParentID = lo.ToPtr(rzID)
		}
		structure.Categories = append(structure.Categories, category)
	}

	for ix := range structure.Categories {
		if ix > 0 && !d.SampleAll {
			break
		}
		category := structure.Categories[ix]
		structure.Parameters = append(structure.Parameters,
			models.Parameter{
				Name:     "category_id",
				Value:    category.ID,
				Path:     indexedPath(pathCategory, ix) + "/@id",
				Kind:     models.KindParameter,
				Category: models.CategoryCategory,
			},
			models.Parameter{
				Name:     "category_name",
				Value:    category.Name,
				Path:     indexedPath(pathCategory, ix),
				Kind:     models.KindParameter,
				Category: models.CategoryCategory,
			},
		)
	}
}

func (d Decoder) extractOffers(offerNodes []*Node, structure *models.ParsedStructure) {
	for ix, node := range offerNodes {
		offer, err := extractOffer(node)
		if err != nil {
			structure.Issues = append(structure.Issues, models.ItemError{Index: ix, Err: err})
			continue
		}
		structure.Offers = append(structure.Offers, offer)
	}

	for ix, node := range offerNodes {
		if ix > 0 && !d.SampleAll {
			break
		}
		d.sampleOffer(node, ix, structure)
	}
}

// sampleOffer emits the fixed allow-list of basic offer fields, the first
// param's name and value and the offer's id/available attributes into the
// flat parameters list.
func (d Decoder) sampleOffer(node *Node, ix int, structure *models.ParsedStructure) {
	base := indexedPath(pathOffer, ix)

	for _, field := range offerSampleFields {
		child := node.Child(field)
		if child == nil {
			continue
		}
		value := child.TrimmedText()
		if field == "description" {
			value = child.InnerXML()
		}
		structure.Parameters = append(structure.Parameters, models.Parameter{
			Name:     "offer_" + field,
			Value:    value,
			Path:     base + "/" + field,
			Kind:     models.KindParameter,
			Category: models.CategoryOffer,
		})
	}

	if param := node.Child("param"); param != nil {
		structure.Parameters = append(structure.Parameters,
			models.Parameter{
				Name:     "offer_param_name",
				Value:    param.Attr("name"),
				Path:     base + "/param/@name",
				Kind:     models.KindCharacteristic,
				Category: models.CategoryOffer,
			},
			models.Parameter{
				Name:     "offer_param_value",
				Value:    param.TrimmedText(),
				Path:     base + "/param",
				Kind:     models.KindCharacteristic,
				Category: models.CategoryOffer,
			},
		)
	}

	if id := node.Attr("id"); id != "" {
		structure.Parameters = append(structure.Parameters, models.Parameter{
			Name:     "offer_id",
			Value:    id,
			Path:     base + "/@id",
			Kind:     models.KindParameter,
			Category: models.CategoryOffer,
		})
	}
	if available := node.Attr("available"); available != "" {
		structure.Parameters = append(structure.Parameters, models.Parameter{
			Name:     "offer_available",
			Value:    available,
			Path:     base + "/@available",
			Kind:     models.KindParameter,
			Category: models.CategoryOffer,
		})
	}
}

// extractOffer walks every direct child of an offer node. Children named
// param become characteristics, everything else maps onto fixed offer
// fields. Duplicate characteristics within one offer overwrite by
// name+language, last write wins.
func extractOffer(node *Node) (models.Offer, error) {
	offer := models.Offer{
		ID:        node.Attr("id"),
		Available: parseAvailable(node.Attr("available")),
	}

	var characteristics []models.Characteristic
	seen := map[string]int{}

	for _, child := range node.Children {
		if child.Name == "param" {
			characteristic, ok := extractCharacteristic(child)
			if !ok {
				continue
			}
			if ix, dup := seen[characteristic.DedupKey()]; dup {
				characteristics[ix].Value = characteristic.Value
				continue
			}
			seen[characteristic.DedupKey()] = len(characteristics)
			characteristics = append(characteristics, characteristic)
			continue
		}
		setOfferField(&offer, child)
	}

	offer.Characteristics = characteristics

	if offer.ID == "" && offer.Name == "" {
		return offer, errors.New("offer has neither id attribute nor name element")
	}

	return offer, nil
}

func setOfferField(offer *models.Offer, child *Node) {
	text := child.TrimmedText()

	switch child.Name {
	case "name":
		offer.Name = text
	case "name_ua":
		offer.NameUA = lo.ToPtr(text)
	case "article", "vendorCode":
		offer.Article = lo.ToPtr(text)
	case "vendor":
		offer.Vendor = lo.ToPtr(text)
	case "description":
		// markup stays intact, stripping is a presentation concern
		offer.Description = lo.ToPtr(child.InnerXML())
	case "description_ua":
		offer.DescriptionUA = lo.ToPtr(child.InnerXML())
	case "price":
		offer.Price = parseFloat(text, 0)
	case "price_old", "oldprice":
		if value, err := parsePrice(text); err == nil {
			offer.OldPrice = lo.ToPtr(value)
		}
	case "currencyId":
		offer.CurrencyID = text
	case "categoryId":
		offer.CategoryID = text
	case "url":
		offer.URL = text
	case "picture":
		if offer.Picture == "" {
			offer.Picture = text
		}
	case "stock_quantity", "quantity_in_stock":
		if quantity, err := strconv.Atoi(text); err == nil {
			offer.StockQuantity = lo.ToPtr(quantity)
		}
	}
}

// extractCharacteristic reads one param element. Language comes from the
// lang attribute when present, otherwise from a recognized name suffix.
func extractCharacteristic(node *Node) (models.Characteristic, bool) {
	name := node.Attr("name")
	if name == "" {
		return models.Characteristic{}, false
	}

	characteristic := models.Characteristic{
		Name:  name,
		Value: node.TrimmedText(),
	}

	if lang := node.Attr("lang"); lang != "" {
		characteristic.Language = lo.ToPtr(lang)
		return characteristic, true
	}

	lowered := strings.ToLower(name)
	for _, suffix := range languageSuffixes {
		if strings.HasSuffix(lowered, suffix) && len(name) > len(suffix) {
			characteristic.Name = name[:len(name)-len(suffix)]
			characteristic.Language = lo.ToPtr(suffix[1:])
			break
		}
	}

	return characteristic, true
}

func parseAvailable(value string) bool {
	return !strings.EqualFold(value, "false")
}

func parseFloat(value string, fallback float64) float64 {
	parsed, err := parsePrice(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// parsePrice parses a price-like value tolerating comma decimal separators
// and embedded spaces common in supplier feeds.
func parsePrice(value string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), ",", ".")
	return strconv.ParseFloat(cleaned, 64)
}

func indexedPath(path string, ix int) string {
	if ix == 0 {
		return path
	}
	return fmt.Sprintf("%s[%d]", path, ix)
}
