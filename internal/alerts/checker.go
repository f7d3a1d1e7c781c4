package alerts

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"housinglake/server/internal/database"
	"housinglake/server/internal/models"
	"housinglake/server/internal/queue"
)

// Searcher runs one normalization pass for a set of criteria.
type Searcher interface {
	Search(params models.SearchParams) []models.StandardizedProperty
}

// Checker periodically replays every stored subscription through the
// pipeline, notifies subscribers about listings they have not seen yet and
// queues those listings for the ledger.
type Checker struct {
	searcher Searcher
	db       *database.Database
	ledger   *gorm.DB
	queue    *queue.ListingQueue
	notifier *Notifier
	logger   *logrus.Logger
	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewChecker(searcher Searcher, db *database.Database, ledger *gorm.DB, queue *queue.ListingQueue, notifier *Notifier, interval time.Duration, logger *logrus.Logger) *Checker {
	return &Checker{
		searcher: searcher,
		db:       db,
		ledger:   ledger,
		queue:    queue,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic check loop.
func (c *Checker) Start() {
	c.wg.Add(1)
	go c.run()
}

// Stop gracefully stops the checker.
func (c *Checker) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

func (c *Checker) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.CheckOnce()
		}
	}
}

// CheckOnce runs every stored subscription once. Failures are isolated per
// subscription; one bad saved search never blocks the others.
func (c *Checker) CheckOnce() {
	subs, err := c.db.ListSubscriptions()
	if err != nil {
		c.logger.WithError(err).Error("Failed to load alert subscriptions")
		return
	}

	for _, sub := range subs {
		c.checkSubscription(sub)
	}
}

func (c *Checker) checkSubscription(sub models.AlertSubscription) {
	matches := c.searcher.Search(sub.Criteria)
	matches = filterLocations(matches, sub.Locations)

	unseen, err := database.FilterUnseen(c.ledger, matches)
	if err != nil {
		c.logger.WithError(err).WithField("subscription", sub.ID).
			Error("Failed to check seen-listing ledger")
		return
	}
	if len(unseen) == 0 {
		return
	}

	if c.notifier.Enabled() {
		if err := c.notifier.SendMessage(sub.ChatID, FormatMatches(unseen)); err != nil {
			// Leave the listings unmarked so the next cycle retries them.
			c.logger.WithError(err).WithField("subscription", sub.ID).
				Error("Failed to send alert")
			return
		}
	}

	batch := make([]*models.StandardizedProperty, 0, len(unseen))
	for i := range unseen {
		batch = append(batch, &unseen[i])
	}
	if err := c.queue.Push(batch); err != nil {
		c.logger.WithError(err).WithField("subscription", sub.ID).
			Error("Failed to queue listings for ledger")
	}

	c.logger.WithFields(logrus.Fields{
		"subscription": sub.ID,
		"matches":      len(matches),
		"notified":     len(unseen),
	}).Info("Alert check completed")
}

// filterLocations keeps listings whose display address contains any of the
// wanted location fragments, case-insensitively. No fragments, no filter.
func filterLocations(listings []models.StandardizedProperty, locations []string) []models.StandardizedProperty {
	if len(locations) == 0 {
		return listings
	}

	out := make([]models.StandardizedProperty, 0, len(listings))
	for _, p := range listings {
		address := strings.ToLower(p.Address.DisplayAddress)
		for _, loc := range locations {
			if loc != "" && strings.Contains(address, strings.ToLower(loc)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
