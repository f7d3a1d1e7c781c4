package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housinglake/server/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := newTestDatabase(t)

	min, max := 1000.0, 2000.0
	beds := 2
	sub := models.AlertSubscription{
		ChatID: "12345",
		Criteria: models.SearchParams{
			Source:       "daft",
			MinPrice:     &min,
			MaxPrice:     &max,
			Bedrooms:     &beds,
			PropertyType: "apartment",
			BerRating:    "B",
		},
		Locations: []string{"dublin", "cork"},
	}

	require.NoError(t, db.CreateSubscription(&sub))
	assert.NotZero(t, sub.ID)

	subs, err := db.ListSubscriptions()
	require.NoError(t, err)
	require.Len(t, subs, 1)

	got := subs[0]
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "12345", got.ChatID)
	assert.Equal(t, "daft", got.Criteria.Source)
	require.NotNil(t, got.Criteria.MinPrice)
	assert.Equal(t, 1000.0, *got.Criteria.MinPrice)
	require.NotNil(t, got.Criteria.Bedrooms)
	assert.Equal(t, 2, *got.Criteria.Bedrooms)
	assert.Equal(t, []string{"dublin", "cork"}, got.Locations)

	require.NoError(t, db.DeleteSubscription(sub.ID))

	subs, err = db.ListSubscriptions()
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestCreateSubscription_EmptyCriteria(t *testing.T) {
	db := newTestDatabase(t)

	sub := models.AlertSubscription{ChatID: "67890"}
	require.NoError(t, db.CreateSubscription(&sub))

	subs, err := db.ListSubscriptions()
	require.NoError(t, err)
	require.Len(t, subs, 1)

	got := subs[0]
	assert.Nil(t, got.Criteria.MinPrice)
	assert.Nil(t, got.Criteria.MaxPrice)
	assert.Nil(t, got.Criteria.Bedrooms)
	assert.Empty(t, got.Locations)
}

func TestDeleteSubscription_NotFound(t *testing.T) {
	db := newTestDatabase(t)

	assert.Error(t, db.DeleteSubscription(999))
}
