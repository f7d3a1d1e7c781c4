package sources

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housinglake/server/internal/models"
	"housinglake/server/internal/record"
)

func propertyRow(address, price, id string) record.Row {
	return record.Row{
		record.String(address),
		record.String(price),
		record.String(id),
	}
}

func TestPropertyParser_Parse(t *testing.T) {
	p := NewPropertyParser(testLogger())
	p.now = fixedClock()

	prop, err := p.Parse(propertyRow("Test Address", "€1,500 monthly", "12345"))
	require.NoError(t, err)

	assert.Equal(t, "property_12345", prop.PropertyID)
	assert.Equal(t, models.SourceProperty, prop.Source)
	assert.Equal(t, "12345", prop.SourceID)
	assert.Equal(t, "Test Address", prop.Address.DisplayAddress)
	assert.Equal(t, 1500.0, prop.Price.Amount)
	assert.Equal(t, "EUR", prop.Price.Currency)
	assert.Equal(t, "rent", prop.ListingType)
	assert.Equal(t, "active", prop.Status)

	// The feed carries nothing else; those attributes stay absent
	assert.Equal(t, "", prop.PropertyType)
	assert.Nil(t, prop.Bedrooms)
	assert.Nil(t, prop.Bathrooms)
	assert.Nil(t, prop.Size)
	assert.Nil(t, prop.BerRating)
	assert.Nil(t, prop.Agent)
	assert.Empty(t, prop.Photos)
	assert.False(t, prop.HasVideo)
}

func TestPropertyParser_MissingIDFailsRecord(t *testing.T) {
	p := NewPropertyParser(testLogger())

	_, err := p.Parse(record.Row{record.String("Test Address"), record.String("€950")})
	assert.True(t, errors.Is(err, ErrMissingID))

	_, err = p.Parse(propertyRow("Test Address", "€950", ""))
	assert.True(t, errors.Is(err, ErrMissingID))
}

func TestPropertyParser_BadPriceFailsRecord(t *testing.T) {
	p := NewPropertyParser(testLogger())

	_, err := p.Parse(propertyRow("Test Address", "POA", "12345"))
	assert.True(t, errors.Is(err, ErrInvalidPrice))
}

func TestPropertyParser_Idempotent(t *testing.T) {
	p := NewPropertyParser(testLogger())
	p.now = fixedClock()

	first, err := p.Parse(propertyRow("Test Address", "€1,500 monthly", "12345"))
	require.NoError(t, err)
	second, err := p.Parse(propertyRow("Test Address", "€1,500 monthly", "12345"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
