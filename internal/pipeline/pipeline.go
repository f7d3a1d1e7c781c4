// Package pipeline orchestrates one normalization pass: for each requested
// source, stream the latest snapshot's rows through that source's parser,
// the price sanity check and the filter, accumulating accepted listings.
// No record-level failure ever aborts the pass.
package pipeline

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"housinglake/server/internal/filter"
	"housinglake/server/internal/models"
	"housinglake/server/internal/normalize"
	"housinglake/server/internal/record"
	"housinglake/server/internal/snapshot"
	"housinglake/server/internal/sources"
)

// Snapshots abstracts snapshot access so tests can feed rows in-memory.
type Snapshots interface {
	Rows(source string, fn func(record.Row)) error
}

type Pipeline struct {
	snapshots Snapshots
	parsers   []sources.Parser
	logger    *logrus.Logger
}

func New(snapshots Snapshots, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		snapshots: snapshots,
		parsers:   sources.All(logger),
		logger:    logger,
	}
}

// Search runs the normalization pass and returns accepted listings in
// source-then-record order. Missing snapshots and bad records degrade to
// fewer results, never to an error.
func (p *Pipeline) Search(params models.SearchParams) []models.StandardizedProperty {
	results := make([]models.StandardizedProperty, 0)
	for _, parser := range p.parsers {
		if params.Source != "" && !strings.EqualFold(params.Source, string(parser.Source())) {
			continue
		}
		p.searchSource(parser, params, &results)
	}
	return results
}

func (p *Pipeline) searchSource(parser sources.Parser, params models.SearchParams, out *[]models.StandardizedProperty) {
	source := string(parser.Source())
	widthChecked := false

	err := p.snapshots.Rows(source, func(row record.Row) {
		if !widthChecked {
			widthChecked = true
			if row.Len() < parser.MinColumns() {
				p.logger.WithFields(logrus.Fields{
					"source":   source,
					"columns":  row.Len(),
					"expected": parser.MinColumns(),
				}).Warn("Snapshot narrower than expected layout, likely schema drift")
			}
		}

		prop, err := parser.Parse(row)
		if err != nil {
			p.logger.WithError(err).WithField("source", source).Warn("Skipping unparseable record")
			return
		}

		if !normalize.ValidAmount(prop.Price.Amount) {
			p.logger.WithFields(logrus.Fields{
				"source":      source,
				"property_id": prop.PropertyID,
				"amount":      prop.Price.Amount,
			}).Warn("Skipping record with out-of-range price")
			return
		}

		if !filter.Matches(params, prop) {
			return
		}
		*out = append(*out, *prop)
	})

	if err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			p.logger.WithField("source", source).Warn("No snapshot available for source")
			return
		}
		p.logger.WithError(err).WithField("source", source).Error("Failed to read snapshot")
	}
}
