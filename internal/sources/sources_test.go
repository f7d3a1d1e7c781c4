package sources

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"housinglake/server/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestNew_ClosedSourceSet(t *testing.T) {
	logger := testLogger()

	for _, source := range models.AllSources() {
		p, err := New(source, logger)
		assert.NoError(t, err)
		assert.Equal(t, source, p.Source())
	}

	_, err := New(models.Source("zillow"), logger)
	assert.Error(t, err)
}

func TestAll_OneParserPerSource(t *testing.T) {
	parsers := All(testLogger())
	assert.Len(t, parsers, len(models.AllSources()))
}

func TestPhotoSequence_Dedup(t *testing.T) {
	photos := photoSequence("main.jpg", []string{"a.jpg", "main.jpg", "a.jpg", "b.jpg", ""})

	assert.Equal(t, []models.Photo{
		{URL: "main.jpg", IsMain: true},
		{URL: "a.jpg"},
		{URL: "b.jpg"},
	}, photos)
}

func TestPhotoSequence_NoMain(t *testing.T) {
	photos := photoSequence("", []string{"a.jpg", "b.jpg"})

	assert.Len(t, photos, 2)
	for _, p := range photos {
		assert.False(t, p.IsMain)
	}
}

func TestPhotoSequence_Empty(t *testing.T) {
	assert.Empty(t, photoSequence("", nil))
}
