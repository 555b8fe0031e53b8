package modelstesting

import (
	"math/rand"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and random numbers of
// fake images and attributes.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		Version:       rand.Int63(),
		Name:          faker.Word(),
		Description:   faker.Sentence(),
		Price:         float64(rand.Intn(100000)) / 100,
		OldPrice:      lo.ToPtr(float64(rand.Intn(100000)) / 100),
		Currency:      faker.Currency(),
		Manufacturer:  faker.Word(),
		CategoryName:  faker.Word(),
		StockQuantity: lo.ToPtr(rand.Intn(100)),
		Available:     true,
		IsActive:      true,
		Images:        fakeImages(),
		Attributes:    fakeAttributes(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeOffer returns models.Offer with fake data and random number of fake
// characteristics.
func FakeOffer(ops ...func(o *models.Offer)) models.Offer {
	offer := models.Offer{
		ID:              faker.UUIDDigit(),
		Available:       true,
		Name:            faker.Word(),
		NameUA:          lo.ToPtr(faker.Word()),
		Article:         lo.ToPtr(faker.Word()),
		Vendor:          lo.ToPtr(faker.Word()),
		Description:     lo.ToPtr(faker.Sentence()),
		Price:           float64(rand.Intn(100000)) / 100,
		CurrencyID:      faker.Currency(),
		CategoryID:      faker.UUIDDigit(),
		URL:             faker.URL(),
		Picture:         faker.URL(),
		Characteristics: fakeCharacteristics(),
	}

	for _, op := range ops {
		op(&offer)
	}

	return offer
}

// FakeCharacteristic returns models.Characteristic with fake data.
func FakeCharacteristic(ops ...func(c *models.Characteristic)) models.Characteristic {
	characteristic := models.Characteristic{
		Name:  faker.Word(),
		Value: faker.Word(),
	}

	for _, op := range ops {
		op(&characteristic)
	}

	return characteristic
}

// FakeTemplateParameter returns models.TemplateParameter with fake data.
func FakeTemplateParameter(ops ...func(p *models.TemplateParameter)) models.TemplateParameter {
	parameter := models.TemplateParameter{
		Name:         faker.Word(),
		Value:        faker.Word(),
		Type:         models.ValueTypeText,
		Category:     models.CategoryOffer,
		XMLPath:      "/yml_catalog/shop/offers/offer/" + faker.Word(),
		IsActive:     true,
		DisplayOrder: int32(rand.Intn(100)),
	}

	for _, op := range ops {
		op(&parameter)
	}

	return parameter
}

func fakeImages() []models.ProductImage {
	imagesLen := rand.Intn(5)
	images := make([]models.ProductImage, 0, imagesLen)
	for ix := 0; ix < imagesLen; ix++ {
		images = append(images, models.ProductImage{
			URL:    faker.URL(),
			IsMain: ix == 0,
		})
	}

	return images
}

func fakeAttributes() []models.ProductAttribute {
	attributesLen := rand.Intn(5)
	attributes := make([]models.ProductAttribute, 0, attributesLen)
	for i := 0; i < attributesLen; i++ {
		attributes = append(attributes, models.ProductAttribute{
			Name:  faker.UUIDDigit(),
			Value: faker.Word(),
		})
	}

	return attributes
}

func fakeCharacteristics() []models.Characteristic {
	characteristicsLen := rand.Intn(5)
	characteristics := make([]models.Characteristic, 0, characteristicsLen)
	for i := 0; i < characteristicsLen; i++ {
		characteristics = append(characteristics, FakeCharacteristic(func(c *models.Characteristic) {
			c.Name = faker.UUIDDigit()
		}))
	}

	return characteristics
}
