package decoder

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Node is one element of a parsed XML document tree.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node

	// attrOrder and parts keep document order of attributes and mixed
	// content, InnerXML needs both to serialize content verbatim.
	attrOrder []string
	parts     []part
}

// part is one piece of mixed element content, either character data or a
// child element, in document order.
type part struct {
	text string
	node *Node
}

// ParseTree reads XML from r and builds a node tree rooted at the document
// element. Supplier feeds regularly declare windows-1251 or koi8 encodings,
// so the decoder converts character sets by the declared label.
func ParseTree(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)

	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Err: err}
		}

		switch element := token.(type) {
		case xml.StartElement:
			node := &Node{
				Name:  element.Name.Local,
				Attrs: make(map[string]string, len(element.Attr)),
			}
			for _, attr := range element.Attr {
				node.Attrs[attr.Name.Local] = attr.Value
				node.attrOrder = append(node.attrOrder, attr.Name.Local)
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, &ParseError{Err: errors.New("document has more than one root element")}
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
				parent.parts = append(parent.parts, part{node: node})
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				current := stack[len(stack)-1]
				current.Text += string(element)
				current.parts = append(current.parts, part{text: string(element)})
			}
		default:
			continue
		}
	}

	if root == nil {
		return nil, &ParseError{Err: errors.New("document contains no elements")}
	}

	return root, nil
}

// Attr returns attribute value or empty string.
func (n *Node) Attr(name string) string {
	return n.Attrs[name]
}

// Child returns first direct child with name or nil.
func (n *Node) Child(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildText returns trimmed text of first direct child with name,
// empty string if such child is absent.
func (n *Node) ChildText(name string) string {
	child := n.Child(name)
	if child == nil {
		return ""
	}
	return child.TrimmedText()
}

// TrimmedText returns element text without surrounding whitespace.
// Interior markup and whitespace are preserved.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}

// InnerXML returns the element content serialized back to markup, child
// elements and character data in document order, trimmed at the ends.
// Character data is written as decoded, so CDATA sections come out as their
// literal content.
func (n *Node) InnerXML() string {
	var b strings.Builder
	n.writeInner(&b)
	return strings.TrimSpace(b.String())
}

func (n *Node) writeInner(b *strings.Builder) {
	for _, p := range n.parts {
		if p.node == nil {
			b.WriteString(p.text)
			continue
		}
		p.node.writeElement(b)
	}
}

func (n *Node) writeElement(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, name := range n.attrOrder {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(n.Attrs[name], `"`, "&quot;"))
		b.WriteByte('"')
	}
	if len(n.parts) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	n.writeInner(b)
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// Select returns all descendants reached by following path of direct child
// names, in document order.
func (n *Node) Select(path ...string) []*Node {
	current := []*Node{n}
	for _, name := range path {
		var next []*Node
		for _, node := range current {
			for _, child := range node.Children {
				if child.Name == name {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// FindAll returns all descendants with name in document order.
func (n *Node) FindAll(name string) []*Node {
	var found []*Node

	var walk func(node *Node)
	walk = func(node *Node) {
		for _, child := range node.Children {
			if child.Name == name {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(n)

	return found
}

// FindFirst returns first descendant with name in document order or nil.
func (n *Node) FindFirst(name string) *Node {
	if found := n.FindAll(name); len(found) > 0 {
		return found[0]
	}
	return nil
}
