package grants

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	rootElement        = "GrantOpportunities"
	opportunityElement = "GrantOpportunity"
)

// ErrParse is returned when the extract is not a well-formed XML document
var ErrParse = errors.New("failed to parse grants extract")

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Run parses the whole document into a tree. Anything other than a single
// well-formed root element fails; there is no partial recovery.
func (p *Parser) Run(data []byte) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var root Node
	if err := decoder.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no root element", ErrParse)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if err := p.checkTrailer(decoder); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &root, nil
}

// checkTrailer rejects content after the root element other than
// whitespace, comments and processing instructions.
func (p *Parser) checkTrailer(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return fmt.Errorf("unexpected text after root element")
			}
		}
	}
}

// Opportunities returns the GrantOpportunities/GrantOpportunity elements in
// document order. A document with another root yields none.
func Opportunities(root *Node) []*Node {
	if root == nil || root.XMLName.Local != rootElement {
		return nil
	}
	return root.ChildrenNamed(opportunityElement)
}
