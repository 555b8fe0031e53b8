package decoder

import "strings"

// offerStrategy locates offer-like elements in a parsed feed document.
// Strategies are tried in order, first non-empty result wins.
type offerStrategy struct {
	name   string
	locate func(doc *Node) []*Node
}

// fixedPath matches elements at an exact path from the document root.
func fixedPath(path ...string) offerStrategy {
	return offerStrategy{
		name: strings.Join(path, ">"),
		locate: func(doc *Node) []*Node {
			return doc.Select(path...)
		},
	}
}

// rootScan is the last-resort strategy scanning the whole document for
// candidate product-like tags.
func rootScan(candidates ...string) offerStrategy {
	return offerStrategy{
		name: "scan:" + strings.Join(candidates, "|"),
		locate: func(doc *Node) []*Node {
			for _, tag := range candidates {
				if found := doc.FindAll(tag); len(found) > 0 {
					return found
				}
			}
			return nil
		},
	}
}

// offerStrategies covers feed shapes seen in the wild, from the canonical
// yml_catalog layout down to bare product lists.
var offerStrategies = []offerStrategy{
	fixedPath("yml_catalog", "shop", "offers", "offer"),
	fixedPath("shop", "products", "product"),
	fixedPath("products", "product"),
	fixedPath("catalog", "product"),
	fixedPath("items", "item"),
	fixedPath("product"),
	rootScan("item", "offer", "product", "good", "article"),
}

// locateOffers returns offer elements found by the first matching strategy
// and the name of that strategy.
func locateOffers(doc *Node) ([]*Node, string) {
	for _, strategy := range offerStrategies {
		if offers := strategy.locate(doc); len(offers) > 0 {
			return offers, strategy.name
		}
	}
	return nil, ""
}
