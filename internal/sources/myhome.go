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

// MyHomeParser reads the flat myhome snapshot schema. It is the richest
// feed: agent contacts, a primary photo plus a repeated photo list, and
// authoritative created/refreshed timestamps.
type MyHomeParser struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewMyHomeParser(logger *logrus.Logger) *MyHomeParser {
	return &MyHomeParser{logger: logger, now: time.Now}
}

func (p *MyHomeParser) Source() models.Source { return models.SourceMyHome }

func (p *MyHomeParser) MinColumns() int { return myhomeMinColumns }

func (p *MyHomeParser) Parse(row record.Row) (*models.StandardizedProperty, error) {
	id, ok := row.Int64At(myhomeColumns.id...)
	if !ok {
		return nil, fmt.Errorf("myhome: %w", ErrMissingID)
	}
	sourceID := strconv.FormatInt(id, 10)

	priceText, ok := row.StringAt(myhomeColumns.price...)
	if !ok {
		return nil, fmt.Errorf("myhome record %s: %w", sourceID, ErrInvalidPrice)
	}
	amount, ok := normalize.Amount(priceText)
	if !ok {
		return nil, fmt.Errorf("myhome record %s: %w", sourceID, ErrInvalidPrice)
	}

	address, ok := row.StringAt(myhomeColumns.address...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "display_address")
	}
	propertyType, ok := row.StringAt(myhomeColumns.propertyType...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "property_type")
	}

	var bedrooms, bathrooms *int
	if n, ok := row.Int64At(myhomeColumns.bedrooms...); ok {
		bedrooms = intPtr(int(n))
	} else {
		debugAbsent(p.logger, p.Source(), "bedrooms")
	}
	if n, ok := row.Int64At(myhomeColumns.bathrooms...); ok {
		bathrooms = intPtr(int(n))
	} else {
		debugAbsent(p.logger, p.Source(), "bathrooms")
	}

	var size *models.Size
	if v, ok := row.DoubleAt(myhomeColumns.sizeMeters...); ok {
		size = &models.Size{Value: v, Unit: "square_meters"}
	}

	ber := optString(row.StringAt(myhomeColumns.berRating...))
	if ber == nil {
		debugAbsent(p.logger, p.Source(), "ber_rating")
	}

	// Synthesized timestamps only when the feed's own dates are missing.
	now := rfc3339(p.now())
	created, ok := row.StringAt(myhomeColumns.createdDate...)
	if !ok || created == "" {
		created = now
	}
	updated, ok := row.StringAt(myhomeColumns.updatedDate...)
	if !ok || updated == "" {
		updated = now
	}

	status := statusActive
	if active, ok := row.BoolAt(myhomeColumns.isActive...); ok && !active {
		status = statusInactive
	}

	mainPhoto, _ := row.StringAt(myhomeColumns.mainPhoto...)
	extraPhotos, ok := row.StringsAt(myhomeColumns.photos...)
	if !ok {
		debugAbsent(p.logger, p.Source(), "photos")
	}

	hasVideo, _ := row.BoolAt(myhomeColumns.hasVideos...)

	var agent *models.Agent
	name, nameOK := row.StringAt(myhomeColumns.agentName...)
	phone, phoneOK := row.StringAt(myhomeColumns.agentPhone...)
	email, emailOK := row.StringAt(myhomeColumns.agentEmail...)
	agentAddr, addrOK := row.StringAt(myhomeColumns.agentAddress...)
	if nameOK || phoneOK || emailOK || addrOK {
		agent = &models.Agent{Name: name, Phone: phone, Email: email, Address: agentAddr}
	} else {
		debugAbsent(p.logger, p.Source(), "agent")
	}

	return &models.StandardizedProperty{
		PropertyID:   models.PropertyID(models.SourceMyHome, sourceID),
		Source:       models.SourceMyHome,
		SourceID:     sourceID,
		Address:      models.Address{DisplayAddress: address},
		PropertyType: propertyType,
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Size:         size,
		BerRating:    ber,
		Price:        monthlyPrice(amount),
		CreatedDate:  created,
		UpdatedDate:  updated,
		ListingType:  listingTypeRent,
		Status:       status,
		Photos:       photoSequence(mainPhoto, extraPhotos),
		HasVideo:     hasVideo,
		Agent:        agent,
		SeoURL:       optString(row.StringAt(myhomeColumns.seoURL...)),
	}, nil
}
