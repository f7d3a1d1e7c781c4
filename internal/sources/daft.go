package sources

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"housinglake/server/internal/models"
	"housinglake/server/internal/normalize"
	"housinglake/server/internal/record"
)

// DaftParser reads the deeply nested daft snapshot schema: one outer
// listing group with scalar columns and ber/media sub-groups inside it.
type DaftParser struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewDaftParser(logger *logrus.Logger) *DaftParser {
	return &DaftParser{logger: logger, now: time.Now}
}

func (p *DaftParser) Source() models.Source { return models.SourceDaft }

func (p *DaftParser) MinColumns() int { return daftMinColumns }

func (p *DaftParser) Parse(row record.Row) (*models.StandardizedProperty, error) {
	id, ok := row.Int64At(daftColumns.id...)
	if !ok {
		return nil, fmt.Errorf("daft: %w", ErrMissingID)
	}
	sourceID := strconv.FormatInt(id, 10)

	priceText, ok := row.StringAt(daftColumns.price...)
	if !ok {
		return nil, fmt.Errorf("daft record %s: %w", sourceID, ErrInvalidPrice)
	}
	amount, ok := normalize.Amount(priceText)
	if !ok {
		return nil, fmt.Errorf("daft record %s: %w", sourceID, ErrInvalidPrice)
	}

	category, ok := row.StringAt(daftColumns.category...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "category")
	}

	// Daft has no clean display-address column; the listing title is the
	// closest thing, with the category string as a fallback.
	address, ok := row.StringAt(daftColumns.title...)
	if !ok || address == "" {
		debugAbsent(p.logger, p.Source(), "title")
		address = category
	}

	var bedrooms, bathrooms *int
	if s, ok := row.StringAt(daftColumns.bedrooms...); ok {
		if n, err := strconv.Atoi(s); err == nil {
			bedrooms = intPtr(n)
		}
	} else {
		debugAbsent(p.logger, p.Source(), "bedrooms")
	}
	if s, ok := row.StringAt(daftColumns.bathrooms...); ok {
		if n, err := strconv.Atoi(s); err == nil {
			bathrooms = intPtr(n)
		}
	} else {
		debugAbsent(p.logger, p.Source(), "bathrooms")
	}

	ber := optString(row.StringAt(daftColumns.berRating...))
	if ber == nil {
		debugAbsent(p.logger, p.Source(), "ber_rating")
	}

	hasVideo, ok := row.BoolAt(daftColumns.hasVideo...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "has_video")
	}

	now := rfc3339(p.now())

	return &models.StandardizedProperty{
		PropertyID:   models.PropertyID(models.SourceDaft, sourceID),
		Source:       models.SourceDaft,
		SourceID:     sourceID,
		Address:      models.Address{DisplayAddress: address},
		PropertyType: category,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		BerRating:    ber,
		Price:        monthlyPrice(amount),
		CreatedDate:  now,
		UpdatedDate:  now,
		ListingType:  listingTypeRent,
		Status:       statusActive,
		Photos:       []models.Photo{},
		HasVideo:     hasVideo,
	}, nil
}
