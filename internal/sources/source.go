// Package sources translates raw snapshot rows into the canonical listing
// model, one parser per upstream provider. Parsers are pure per record:
// the only side effect is diagnostic logging through the injected logger.
package sources

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"housinglake/server/internal/models"
	"housinglake/server/internal/record"
)

var (
	// ErrMissingID marks a record without an unambiguous native identifier.
	ErrMissingID = errors.New("record has no usable identifier")

	// ErrInvalidPrice marks a record whose price text did not normalize to
	// a positive amount. Price is a mandatory signal, not cosmetic.
	ErrInvalidPrice = errors.New("record has no parseable price")
)

// Parser maps one raw record of its provider's schema to a canonical
// listing, or reports a record-level parse failure.
type Parser interface {
	Source() models.Source

	// Parse returns ErrMissingID or ErrInvalidPrice (possibly wrapped) when
	// a mandatory field is unusable; every other field degrades to its
	// absent representation instead of blocking the record.
	Parse(row record.Row) (*models.StandardizedProperty, error)

	// MinColumns is the top-level column count the provider's layout
	// expects. Narrower snapshots are a schema-drift signal.
	MinColumns() int
}

// New returns the parser for a source. The source set is closed: adding a
// provider means adding a parser implementation here.
func New(source models.Source, logger *logrus.Logger) (Parser, error) {
	switch source {
	case models.SourceDaft:
		return NewDaftParser(logger), nil
	case models.SourceMyHome:
		return NewMyHomeParser(logger), nil
	case models.SourceProperty:
		return NewPropertyParser(logger), nil
	default:
		return nil, fmt.Errorf("unknown source %q", source)
	}
}

// All returns one parser per known source, in processing order.
func All(logger *logrus.Logger) []Parser {
	parsers := make([]Parser, 0, len(models.AllSources()))
	for _, s := range models.AllSources() {
		p, err := New(s, logger)
		if err != nil {
			continue
		}
		parsers = append(parsers, p)
	}
	return parsers
}

const (
	listingTypeRent = "rent"
	statusActive    = "active"
	statusInactive  = "inactive"
	currencyEUR     = "EUR"
)

// monthlyPrice wraps a normalized amount in the canonical price shape.
// Frequency is fixed to monthly for this pipeline; any per-record suffix
// was already discarded by the normalizer.
func monthlyPrice(amount float64) models.Price {
	freq := "month"
	return models.Price{
		Amount:       amount,
		Currency:     currencyEUR,
		Frequency:    &freq,
		PriceChanges: []models.PriceChange{},
	}
}

// photoSequence places the main photo first, then the remaining URLs in
// encounter order, dropping duplicates and blanks. At most one entry is
// marked main.
func photoSequence(main string, extras []string) []models.Photo {
	photos := make([]models.Photo, 0, len(extras)+1)
	seen := make(map[string]struct{}, len(extras)+1)
	if main != "" {
		photos = append(photos, models.Photo{URL: main, IsMain: true})
		seen[main] = struct{}{}
	}
	for _, url := range extras {
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		photos = append(photos, models.Photo{URL: url})
	}
	return photos
}

// optString maps a present, non-empty string to a pointer and everything
// else to absence.
func optString(s string, ok bool) *string {
	if !ok || s == "" {
		return nil
	}
	return &s
}

func intPtr(v int) *int { return &v }

func rfc3339(t time.Time) string { return t.Format(time.RFC3339) }

// debugAbsent records a recoverable per-field absence. Widespread absence
// across a snapshot usually means the provider shifted its column layout.
func debugAbsent(logger *logrus.Logger, source models.Source, field string) {
	logger.WithFields(logrus.Fields{
		"source": source,
		"field":  field,
	}).Debug("Field absent or type-mismatched in record")
}
