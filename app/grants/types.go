package grants

import (
	"encoding/xml"
)

// Node is a generic element of the parsed extract. Attributes and text are
// both kept; the importer reads only text and children.
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Opportunity is one <GrantOpportunity> element. Every field is optional: the
// feed guarantees none of them.
type Opportunity struct {
	Title                 *string
	Synopsis              *string
	URL                   *string
	AgencyName            *string
	CloseDate             *string
	EligibilityCategory   *string
	EstimatedTotalFunding *string
}

// Grant is the normalized record persisted to the grants table
type Grant struct {
	Title           string   `json:"title"`
	Body            string   `json:"body"`
	SourceURL       string   `json:"source_url"`
	Organization    string   `json:"organization"`
	Deadline        *string  `json:"deadline"`
	EligibilityText *string  `json:"eligibility_text"`
	Amount          *string  `json:"amount"`
	Category        []string `json:"category"`
	ProcessedAt     string   `json:"processed_at"`
}
