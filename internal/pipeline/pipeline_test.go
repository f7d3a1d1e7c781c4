package pipeline

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housinglake/server/internal/models"
	"housinglake/server/internal/record"
	"housinglake/server/internal/snapshot"
)

// fakeSnapshots serves rows from memory; sources without an entry behave
// like sources with no snapshot on disk.
type fakeSnapshots struct {
	rows map[string][]record.Row
	errs map[string]error
}

func (f *fakeSnapshots) Rows(source string, fn func(record.Row)) error {
	if err, ok := f.errs[source]; ok {
		return err
	}
	rows, ok := f.rows[source]
	if !ok {
		return snapshot.ErrNoSnapshot
	}
	for _, row := range rows {
		fn(row)
	}
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func propertyRow(address, price, id string) record.Row {
	return record.Row{
		record.String(address),
		record.String(price),
		record.String(id),
	}
}

func TestSearch_MissingSnapshotsDegradeToFewerResults(t *testing.T) {
	snapshots := &fakeSnapshots{rows: map[string][]record.Row{
		"property": {
			propertyRow("1 Main Street", "€1,200", "100"),
			propertyRow("2 Main Street", "€1,800", "200"),
		},
	}}
	p := New(snapshots, testLogger())

	results := p.Search(models.SearchParams{})

	require.Len(t, results, 2)
	assert.Equal(t, "property_100", results[0].PropertyID)
	assert.Equal(t, "property_200", results[1].PropertyID)
}

func TestSearch_SourceSelection(t *testing.T) {
	snapshots := &fakeSnapshots{rows: map[string][]record.Row{
		"property": {propertyRow("1 Main Street", "€1,200", "100")},
	}}
	p := New(snapshots, testLogger())

	assert.Len(t, p.Search(models.SearchParams{Source: "property"}), 1)
	assert.Len(t, p.Search(models.SearchParams{Source: "PROPERTY"}), 1)
	assert.Empty(t, p.Search(models.SearchParams{Source: "daft"}))
}

func TestSearch_SkipsBadRecords(t *testing.T) {
	snapshots := &fakeSnapshots{rows: map[string][]record.Row{
		"property": {
			propertyRow("No ID", "€1,200", ""),
			propertyRow("POA Listing", "POA", "300"),
			propertyRow("Good Listing", "€1,400", "400"),
		},
	}}
	p := New(snapshots, testLogger())

	results := p.Search(models.SearchParams{})

	require.Len(t, results, 1)
	assert.Equal(t, "property_400", results[0].PropertyID)
}

func TestSearch_RejectsOutOfRangePrices(t *testing.T) {
	snapshots := &fakeSnapshots{rows: map[string][]record.Row{
		"property": {
			propertyRow("Too Expensive", "€150,000", "500"),
			propertyRow("Reasonable", "€1,500", "600"),
		},
	}}
	p := New(snapshots, testLogger())

	results := p.Search(models.SearchParams{})

	require.Len(t, results, 1)
	assert.Equal(t, "property_600", results[0].PropertyID)
}

func TestSearch_AppliesFilter(t *testing.T) {
	snapshots := &fakeSnapshots{rows: map[string][]record.Row{
		"property": {
			propertyRow("Cheap", "€900", "700"),
			propertyRow("Mid", "€1,500", "800"),
			propertyRow("Dear", "€2,500", "900"),
		},
	}}
	p := New(snapshots, testLogger())

	min, max := 1000.0, 2000.0
	results := p.Search(models.SearchParams{MinPrice: &min, MaxPrice: &max})

	require.Len(t, results, 1)
	assert.Equal(t, "property_800", results[0].PropertyID)
}

func TestSearch_ReadFailureDoesNotAbortOtherSources(t *testing.T) {
	snapshots := &fakeSnapshots{
		rows: map[string][]record.Row{
			"property": {propertyRow("1 Main Street", "€1,200", "100")},
		},
		errs: map[string]error{
			"daft": errors.New("corrupt file"),
		},
	}
	p := New(snapshots, testLogger())

	results := p.Search(models.SearchParams{})

	require.Len(t, results, 1)
	assert.Equal(t, "property_100", results[0].PropertyID)
}
