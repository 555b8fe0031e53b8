// Package treeview renders extracted feed structures for human review and
// builds the editable parameter forest shown in template editors.
package treeview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/samber/lo"
)

const indent = "  "

// RenderStructure renders the extracted structure as a plain indented text
// tree for copy-to-clipboard and review. Output is deterministic: shop
// block, currencies, categories, offers, always in this order, so the same
// input renders byte-identical text.
func RenderStructure(structure *models.ParsedStructure) string {
	var b strings.Builder

	if structure.Shop != nil {
		b.WriteString("shop\n")
		writeField(&b, 1, "name", structure.Shop.Name)
		writeField(&b, 1, "company", structure.Shop.Company)
		writeField(&b, 1, "url", structure.Shop.URL)
	}

	if len(structure.Currencies) > 0 {
		b.WriteString("currencies\n")
		for _, currency := range structure.Currencies {
			fmt.Fprintf(&b, "%s%s (rate %s)\n",
				indent, currency.ID, formatFloat(currency.Rate))
		}
	}

	if len(structure.Categories) > 0 {
		b.WriteString("categories\n")
		for _, category := range structure.Categories {
			fmt.Fprintf(&b, "%s[%s] %s", indent, category.ID, category.Name)
			if category.ParentID != nil {
				fmt.Fprintf(&b, " (parent %s)", *category.ParentID)
			}
			b.WriteByte('\n')
		}
	}

	if len(structure.Offers) > 0 {
		b.WriteString("offers\n")
		for _, offer := range structure.Offers {
			writeOffer(&b, offer)
		}
	}

	return b.String()
}

func writeOffer(b *strings.Builder, offer models.Offer) {
	availability := "available"
	if !offer.Available {
		availability = "unavailable"
	}
	fmt.Fprintf(b, "%s[%s] %s - %s %s (%s)\n",
		indent, offer.ID, offer.Name,
		formatFloat(offer.Price), offer.CurrencyID, availability)

	if offer.Vendor != nil {
		writeField(b, 2, "vendor", *offer.Vendor)
	}
	if offer.Article != nil {
		writeField(b, 2, "article", *offer.Article)
	}

	for _, characteristic := range offer.Characteristics {
		line := fmt.Sprintf("%s: %s", characteristic.Name, characteristic.Value)
		if characteristic.Language != nil {
			line += fmt.Sprintf(" [%s]", *characteristic.Language)
		}
		writeField(b, 2, "param", line)
	}
}

func writeField(b *strings.Builder, depth int, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s%s: %s\n", strings.Repeat(indent, depth), name, value)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ParameterNode is one node of the editable parameter forest.
type ParameterNode struct {
	Parameter models.TemplateParameter
	Depth     int
	Children  []*ParameterNode

	// Ambiguous marks nodes whose legacy name-based parent lookup matched
	// more than one candidate. The first candidate in input order was used.
	Ambiguous bool
}

// BuildParameterTree converts a flat template parameter list into a forest.
//
// Parents resolve by explicit ParentID when set. Rows migrated from older
// templates carry only a parent name, those fall back to matching another
// parameter's name, first match in input order wins and multi-candidate
// matches are flagged Ambiguous. Parameters whose declared parent cannot be
// resolved become roots, they are never dropped. Reference cycles are
// broken, the promoted node loses its stale parent edge so the returned
// forest is always acyclic and every node stays reachable.
func BuildParameterTree(parameters []models.TemplateParameter) []*ParameterNode {
	nodes := make([]*ParameterNode, len(parameters))
	byID := make(map[int32]*ParameterNode, len(parameters))
	byName := make(map[string][]*ParameterNode, len(parameters))

	for ix := range parameters {
		nodes[ix] = &ParameterNode{Parameter: parameters[ix]}
		byID[parameters[ix].ID] = nodes[ix]
	}
	for _, node := range nodes {
		byName[node.Parameter.Name] = append(byName[node.Parameter.Name], node)
	}

	var roots []*ParameterNode
	parentOf := make(map[*ParameterNode]*ParameterNode, len(nodes))
	for _, node := range nodes {
		parent := resolveParent(node, byID, byName)
		if parent == nil {
			roots = append(roots, node)
			continue
		}
		parentOf[node] = parent
		parent.Children = append(parent.Children, node)
	}

	visited := make(map[*ParameterNode]bool, len(nodes))
	for _, root := range roots {
		assignDepth(root, 0, visited)
	}

	// nodes trapped in parent cycles are not reachable from any root,
	// promote them in input order and detach the edge pointing back at
	// them, each node keeps exactly one incoming edge at most
	for _, node := range nodes {
		if visited[node] {
			continue
		}
		if parent := parentOf[node]; parent != nil {
			parent.Children = lo.Without(parent.Children, node)
		}
		roots = append(roots, node)
		assignDepth(node, 0, visited)
	}

	return roots
}

func resolveParent(
	node *ParameterNode,
	byID map[int32]*ParameterNode,
	byName map[string][]*ParameterNode,
) *ParameterNode {
	parameter := node.Parameter

	if parameter.ParentID != nil {
		parent := byID[*parameter.ParentID]
		if parent == nil || parent == node {
			return nil
		}
		return parent
	}

	if parameter.ParentName == nil || *parameter.ParentName == "" {
		return nil
	}

	candidates := make([]*ParameterNode, 0, 1)
	for _, candidate := range byName[*parameter.ParentName] {
		if candidate != node {
			candidates = append(candidates, candidate)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) > 1 {
		node.Ambiguous = true
	}

	return candidates[0]
}

func assignDepth(node *ParameterNode, depth int, visited map[*ParameterNode]bool) {
	if visited[node] {
		return
	}
	visited[node] = true
	node.Depth = depth

	for _, child := range node.Children {
		assignDepth(child, depth+1, visited)
	}
}
