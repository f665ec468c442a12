package grants

import (
	"log/slog"
	"slices"
	"time"

	"github.com/lysyi3m/grants-import/app/config"
)

// ProcessedAtLayout is ISO-8601 in UTC with millisecond precision
const ProcessedAtLayout = "2006-01-02T15:04:05.000Z"

type Transformer struct {
	parser              *Parser
	amounts             *AmountFormatter
	limit               int
	defaultOrganization string
	categories          []string
	now                 func() time.Time
}

func NewTransformer(mapping config.MappingSettings) *Transformer {
	return &Transformer{
		parser:              NewParser(),
		amounts:             NewAmountFormatter(mapping.GetLocale()),
		limit:               mapping.GetRecordLimit(),
		defaultOrganization: mapping.DefaultOrganization,
		categories:          slices.Clone(mapping.Categories),
		now:                 time.Now,
	}
}

// Run parses the extract and normalizes at most limit opportunities. It
// returns the number of opportunities found in the document alongside the
// normalized grants.
func (t *Transformer) Run(data []byte) (int, []Grant, error) {
	root, err := t.parser.Run(data)
	if err != nil {
		return 0, nil, err
	}

	nodes := Opportunities(root)
	found := len(nodes)

	if t.limit > 0 && len(nodes) > t.limit {
		slog.Debug("Record limit reached, skipping remaining opportunities",
			"limit", t.limit,
			"skipped", len(nodes)-t.limit)
		nodes = nodes[:t.limit]
	}

	grants := make([]Grant, 0, len(nodes))
	for _, node := range nodes {
		grants = append(grants, t.Normalize(NewOpportunity(node), t.now()))
	}

	return found, grants, nil
}

// Normalize maps one opportunity to a grant record. Missing fields fall back
// to their defaults; it never fails.
func (t *Transformer) Normalize(op Opportunity, now time.Time) Grant {
	return Grant{
		Title:           valueOr(op.Title, ""),
		Body:            valueOr(op.Synopsis, ""),
		SourceURL:       valueOr(op.URL, ""),
		Organization:    valueOr(op.AgencyName, t.defaultOrganization),
		Deadline:        op.CloseDate,
		EligibilityText: op.EligibilityCategory,
		Amount:          t.amounts.Format(op.EstimatedTotalFunding),
		Category:        slices.Clone(t.categories),
		ProcessedAt:     now.UTC().Format(ProcessedAtLayout),
	}
}

func valueOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
