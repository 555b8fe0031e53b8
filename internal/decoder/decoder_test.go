package decoder_test

import (
	"bytes"
	"io"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/feedline/yml-feed-parser/internal/decoder"
	"github.com/feedline/yml-feed-parser/internal/decoder/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFileName = "feed.xml"

func TestUnitExtractStructure(t *testing.T) {
	dec := decoder.Decoder{}

	structure, err := dec.ExtractStructure(FeedFileAsReader(t))
	require.NoError(t, err, "should not return any error")

	assert.Equal(t, testdata.Shop, structure.Shop, "should extract shop header")
	assert.Equal(t, testdata.Currencies, structure.Currencies, "should extract deduplicated currencies")
	assert.Equal(t, testdata.Categories, structure.Categories, "should extract categories with parents")
	assert.Equal(t, testdata.Offers, structure.Offers, "should extract all offers")
	assert.Equal(t, testdata.Parameters, structure.Parameters, "should sample first elements into parameters")
	assert.Empty(t, structure.Issues, "should not report any offer issues")
}

func TestUnitExtractStructureBadXML(t *testing.T) {
	dec := decoder.Decoder{}

	structure, err := dec.ExtractStructure(strings.NewReader("<offer><name></offer>"))

	require.Nil(t, structure, "should not return structure")

	var parseErr *decoder.ParseError
	require.ErrorAs(t, err, &parseErr, "should return ParseError")
	assert.Contains(t, parseErr.Error(), "malformed XML", "error should be display-safe")
}

func TestUnitExtractStructureNoOffers(t *testing.T) {
	tests := map[string]struct {
		feed    string
		wantErr error
	}{
		"no product-like elements and no shop data": {
			feed:    "<root><something>else</something></root>",
			wantErr: decoder.ErrNoOffers,
		},
		"shop header without offers is not an error": {
			feed: "<yml_catalog><shop><name>MyShop</name><offers></offers></shop></yml_catalog>",
		},
		"categories without offers is not an error": {
			feed: "<yml_catalog><shop><categories><category id=\"1\">Взуття</category></categories></shop></yml_catalog>",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}
			structure, err := dec.ExtractStructure(strings.NewReader(tt.feed))

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")

			if tt.wantErr == nil {
				require.NotNil(t, structure)
				assert.NotNil(t, structure.Currencies, "currencies should never be nil")
				assert.NotNil(t, structure.Categories, "categories should never be nil")
				assert.NotNil(t, structure.Offers, "offers should never be nil")
				assert.NotNil(t, structure.Parameters, "parameters should never be nil")
			}
		})
	}
}

func TestUnitExtractStructureFallbackStrategies(t *testing.T) {
	tests := map[string]struct {
		feed      string
		wantNames []string
	}{
		"shop products": {
			feed:      "<shop><products><product id=\"1\"><name>A</name></product></products></shop>",
			wantNames: []string{"A"},
		},
		"root products": {
			feed:      "<products><product id=\"1\"><name>A</name></product><product id=\"2\"><name>B</name></product></products>",
			wantNames: []string{"A", "B"},
		},
		"catalog product": {
			feed:      "<catalog><product id=\"1\"><name>A</name></product></catalog>",
			wantNames: []string{"A"},
		},
		"items item": {
			feed:      "<items><item id=\"1\"><name>A</name></item></items>",
			wantNames: []string{"A"},
		},
		"document scan for good elements": {
			feed:      "<export><goods><good id=\"1\"><name>A</name></good></goods></export>",
			wantNames: []string{"A"},
		},
		"yml catalog offers win over stray items": {
			feed: "<yml_catalog><shop><offers><offer id=\"1\"><name>A</name></offer></offers>" +
				"<items><item id=\"9\"><name>Z</name></item></items></shop></yml_catalog>",
			wantNames: []string{"A"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}
			structure, err := dec.ExtractStructure(strings.NewReader(tt.feed))
			require.NoError(t, err, "should not return any error")

			names := make([]string, 0, len(structure.Offers))
			for _, offer := range structure.Offers {
				names = append(names, offer.Name)
			}
			assert.Equal(t, tt.wantNames, names, "should locate offers with correct strategy")
		})
	}
}

func TestUnitExtractStructureOfferIssues(t *testing.T) {
	feed := "<offers>" +
		"<offer id=\"1\"><name>Good</name></offer>" +
		"<offer><price>10</price></offer>" +
		"<offer id=\"3\"><name>Also good</name></offer>" +
		"</offers>"

	dec := decoder.Decoder{}
	structure, err := dec.ExtractStructure(strings.NewReader(feed))
	require.NoError(t, err, "nameless offer should not fail the whole parse")

	assert.Len(t, structure.Offers, 2, "should keep extractable offers")
	require.Len(t, structure.Issues, 1, "should report one offer issue")
	assert.Equal(t, 1, structure.Issues[0].Index, "issue should carry offer position")
}

func TestUnitExtractStructureSampleAll(t *testing.T) {
	feed := "<yml_catalog><shop>" +
		"<currencies><currency id=\"UAH\" rate=\"1\"/><currency id=\"USD\" rate=\"41.5\"/></currencies>" +
		"<offers><offer id=\"1\"><name>A</name></offer></offers>" +
		"</shop></yml_catalog>"

	dec := decoder.Decoder{SampleAll: true}
	structure, err := dec.ExtractStructure(strings.NewReader(feed))
	require.NoError(t, err, "should not return any error")

	paths := make([]string, 0, len(structure.Parameters))
	for _, parameter := range structure.Parameters {
		paths = append(paths, parameter.Path)
	}

	assert.Contains(t, paths, "/yml_catalog/shop/currencies/currency/@id",
		"first element should keep the plain path")
	assert.Contains(t, paths, "/yml_catalog/shop/currencies/currency[1]/@id",
		"later elements should get indexed paths")
}

func TestUnitExtractStructureDescriptionMarkup(t *testing.T) {
	tests := map[string]struct {
		description string
		want        string
	}{
		"literal markup": {
			description: "Intro <b>bold</b> outro",
			want:        "Intro <b>bold</b> outro",
		},
		"nested elements with attributes": {
			description: "<p class=\"lead\">Hi <a href=\"https://s.ua\">link</a></p>",
			want:        "<p class=\"lead\">Hi <a href=\"https://s.ua\">link</a></p>",
		},
		"cdata markup": {
			description: "<![CDATA[<p>Опис <i>товару</i></p>]]>",
			want:        "<p>Опис <i>товару</i></p>",
		},
		"plain text is trimmed": {
			description: "  Good phone  ",
			want:        "Good phone",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			feed := "<offers><offer id=\"1\"><name>A</name>" +
				"<description>" + tt.description + "</description>" +
				"<description_ua>" + tt.description + "</description_ua>" +
				"</offer></offers>"

			dec := decoder.Decoder{}
			structure, err := dec.ExtractStructure(strings.NewReader(feed))
			require.NoError(t, err, "should not return any error")

			require.Len(t, structure.Offers, 1)
			offer := structure.Offers[0]
			require.NotNil(t, offer.Description)
			assert.Equal(t, tt.want, *offer.Description, "embedded markup should stay intact")
			require.NotNil(t, offer.DescriptionUA)
			assert.Equal(t, tt.want, *offer.DescriptionUA, "localized description should keep markup too")
		})
	}
}

func TestUnitExtractStructureRepeatedParse(t *testing.T) {
	feed, err := os.ReadFile(path.Join("testdata", feedFileName))
	require.NoError(t, err)

	dec := decoder.Decoder{}
	first, err := dec.ExtractStructure(bytes.NewReader(feed))
	require.NoError(t, err)
	second, err := dec.ExtractStructure(bytes.NewReader(feed))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same bytes should extract deep-equal structures")
}

func TestUnitExtractStructureCharsetDeclaration(t *testing.T) {
	feed := "<?xml version=\"1.0\" encoding=\"windows-1251\"?>" +
		"<offers><offer id=\"1\"><name>Lamp</name></offer></offers>"

	dec := decoder.Decoder{}
	structure, err := dec.ExtractStructure(strings.NewReader(feed))

	require.NoError(t, err, "should tolerate non-utf8 charset declarations")
	require.Len(t, structure.Offers, 1)
	assert.Equal(t, "Lamp", structure.Offers[0].Name)
}

// FeedFileAsReader returns io.Reader with feed file.
func FeedFileAsReader(t *testing.T) io.Reader {
	t.Helper()

	f, err := os.Open(path.Join("testdata", feedFileName))
	require.NoError(t, err)

	return f
}
