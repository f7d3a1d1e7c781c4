package sources

// Positional layouts for each provider's snapshot schema, resolved once at
// startup. These are the single place the column-index contracts live:
// when an upstream feed reorders columns, only this file changes. A
// mismatch shows up as mass per-field absence in the output, not a crash.

// fieldPath addresses a value from the row root, descending nested groups.
type fieldPath []int

// Daft nests everything under one outer listing group. The ber and media
// sub-group offsets were recovered from observed snapshots, not from
// provider documentation, and the title offset is inferred the same way;
// the drift check and absence logging are the guard rails.
var daftColumns = struct {
	listing   fieldPath
	price     fieldPath
	berRating fieldPath
	category  fieldPath
	id        fieldPath
	hasVideo  fieldPath
	bathrooms fieldPath
	bedrooms  fieldPath
	title     fieldPath
}{
	listing:   fieldPath{0},
	price:     fieldPath{0, 0},  // abbreviatedPrice
	berRating: fieldPath{0, 1, 2}, // ber.rating
	category:  fieldPath{0, 2},
	id:        fieldPath{0, 7},
	hasVideo:  fieldPath{0, 8, 2}, // media.hasVideo
	bathrooms: fieldPath{0, 9}, // numBathrooms, stringly typed upstream
	bedrooms:  fieldPath{0, 10},
	title:     fieldPath{0, 12},
}

// MyHome exposes everything as flat top-level columns.
var myhomeColumns = struct {
	id           fieldPath
	address      fieldPath
	propertyType fieldPath
	bedrooms     fieldPath
	bathrooms    fieldPath
	sizeMeters   fieldPath
	berRating    fieldPath
	price        fieldPath
	createdDate  fieldPath
	updatedDate  fieldPath
	isActive     fieldPath
	seoURL       fieldPath
	mainPhoto    fieldPath
	photos       fieldPath
	hasVideos    fieldPath
	agentName    fieldPath
	agentPhone   fieldPath
	agentEmail   fieldPath
	agentAddress fieldPath
}{
	id:           fieldPath{0},
	address:      fieldPath{1},
	propertyType: fieldPath{2},
	bedrooms:     fieldPath{3},
	bathrooms:    fieldPath{4},
	sizeMeters:   fieldPath{5},
	berRating:    fieldPath{6},
	price:        fieldPath{7},
	createdDate:  fieldPath{8},
	updatedDate:  fieldPath{9},
	isActive:     fieldPath{10},
	seoURL:       fieldPath{11},
	mainPhoto:    fieldPath{12},
	photos:       fieldPath{13}, // repeated list of URLs
	hasVideos:    fieldPath{14},
	agentName:    fieldPath{15},
	agentPhone:   fieldPath{16},
	agentEmail:   fieldPath{17},
	agentAddress: fieldPath{18},
}

// Property.ie carries only an address, a price string and the listing id.
var propertyColumns = struct {
	address fieldPath
	price   fieldPath
	id      fieldPath
}{
	address: fieldPath{0},
	price:   fieldPath{1},
	id:      fieldPath{2},
}

const (
	daftMinColumns     = 1 // the single listing group
	myhomeMinColumns   = 19
	propertyMinColumns = 3
)
