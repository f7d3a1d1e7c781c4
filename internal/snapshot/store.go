package snapshot

import (
	"github.com/sirupsen/logrus"

	"housinglake/server/internal/record"
)

// Store serves snapshot rows from a data-lake root directory.
type Store struct {
	root   string
	logger *logrus.Logger
}

func NewStore(root string, logger *logrus.Logger) *Store {
	return &Store{root: root, logger: logger}
}

// Rows resolves the latest snapshot for a source and streams its rows.
// Returns ErrNoSnapshot (wrapped) when the source has nothing to read.
func (s *Store) Rows(source string, fn func(record.Row)) error {
	path, err := FindLatest(s.root, source)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"source": source,
		"path":   path,
	}).Info("Reading snapshot")

	return ReadRows(path, s.logger, fn)
}
