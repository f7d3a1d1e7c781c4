// Package alerts replays stored saved searches against the normalization
// pipeline and pushes unseen matches to subscribers over Telegram.
package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"housinglake/server/internal/models"
)

// Notifier delivers alert messages through the Telegram Bot API.
type Notifier struct {
	logger   *logrus.Logger
	client   *http.Client
	botToken string
}

func NewNotifier(botToken string, logger *logrus.Logger) *Notifier {
	return &Notifier{
		logger:   logger,
		botToken: botToken,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a bot token is configured. A disabled notifier
// turns sends into no-ops so the checker can still maintain the ledger.
func (n *Notifier) Enabled() bool {
	return n.botToken != ""
}

// SendMessage sends a message to a Telegram chat.
func (n *Notifier) SendMessage(chatID, message string) error {
	if !n.Enabled() {
		return nil
	}

	if chatID == "" {
		return errors.New("Telegram chat ID is not configured")
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)
	payload := map[string]interface{}{
		"chat_id":    chatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	resp, err := n.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send message to Telegram API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errors.New("invalid bot token - please check your token from @BotFather")
		case http.StatusBadRequest:
			return fmt.Errorf("invalid chat ID or message format: %s", string(body))
		case http.StatusForbidden:
			return errors.New("bot was blocked by the user or chat")
		case http.StatusNotFound:
			return errors.New("bot not found - please check your token from @BotFather")
		default:
			return fmt.Errorf("Telegram API error (status %d): %s", resp.StatusCode, string(body))
		}
	}

	return nil
}

// maxListingsPerMessage caps how many listings one alert spells out; the
// rest are summarized in a trailer line.
const maxListingsPerMessage = 5

// FormatMatches renders matched listings into one alert message. Returns
// an empty string when there is nothing to say.
func FormatMatches(listings []models.StandardizedProperty) string {
	if len(listings) == 0 {
		return ""
	}

	lines := []string{"🏠 Found matching properties!\n"}
	for i, p := range listings {
		if i == maxListingsPerMessage {
			break
		}
		lines = append(lines, fmt.Sprintf("📍 %s", p.Address.DisplayAddress))
		lines = append(lines, fmt.Sprintf("💰 €%.2f", p.Price.Amount))
		if p.Bedrooms != nil {
			lines = append(lines, fmt.Sprintf("🛏️ %d bed(s)", *p.Bedrooms))
		}
		lines = append(lines, fmt.Sprintf("🔍 Source: %s", p.Source))
		lines = append(lines, "───────────────")
	}

	if len(listings) > maxListingsPerMessage {
		lines = append(lines, fmt.Sprintf("\n...and %d more properties", len(listings)-maxListingsPerMessage))
	}

	return strings.Join(lines, "\n")
}
