package grants

import (
	"strings"
)

// Child returns the first child element with the given local name, or nil.
// It is safe to call on a nil node so lookups can be chained.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given local name in document order
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var nodes []*Node
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			nodes = append(nodes, &n.Children[i])
		}
	}
	return nodes
}

// Attr returns the value of the attribute with the given local name
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Value returns the trimmed element text, or nil when the element is missing
// or has no text.
func (n *Node) Value() *string {
	if n == nil {
		return nil
	}
	text := strings.TrimSpace(n.Text)
	if text == "" {
		return nil
	}
	return &text
}

// NewOpportunity reads the known fields of a <GrantOpportunity> element
func NewOpportunity(n *Node) Opportunity {
	return Opportunity{
		Title:                 n.Child("OpportunityTitle").Value(),
		Synopsis:              n.Child("Synopsis").Value(),
		URL:                   n.Child("URL").Value(),
		AgencyName:            n.Child("AgencyName").Value(),
		CloseDate:             n.Child("CloseDate").Value(),
		EligibilityCategory:   firstValue(n.Child("Eligibility").ChildrenNamed("EligibilityCategory")),
		EstimatedTotalFunding: n.Child("EstimatedTotalProgramFunding").Value(),
	}
}

func firstValue(nodes []*Node) *string {
	for _, node := range nodes {
		if value := node.Value(); value != nil {
			return value
		}
	}
	return nil
}
