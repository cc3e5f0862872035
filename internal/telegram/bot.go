package telegram

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go-jobscout/internal/models"
	"go-jobscout/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultCooldown is the minimum gap between two alerts of the same kind.
const DefaultCooldown = 10 * time.Minute

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot posts operator alerts to a single chat.
type Bot struct {
	api      sender
	chatID   int64
	cooldown time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastSent map[scraper.FailureKind]time.Time
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return newBot(api, chatID), nil
}

func newBot(api sender, chatID int64) *Bot {
	return &Bot{
		api:      api,
		chatID:   chatID,
		cooldown: DefaultCooldown,
		now:      time.Now,
		lastSent: make(map[scraper.FailureKind]time.Time),
	}
}

// WithCooldown overrides DefaultCooldown. Zero sends every alert.
func (b *Bot) WithCooldown(d time.Duration) *Bot {
	b.cooldown = d
	return b
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// NotifyDegraded reports that a search was answered from the fallback.
// Repeats of the same failure kind inside the cooldown are dropped.
func (b *Bot) NotifyDegraded(q models.Query, kind scraper.FailureKind, warning string) error {
	if !b.allow(kind) {
		return nil
	}

	msg := tgbotapi.NewMessage(b.chatID, formatDegraded(q, kind, warning))
	msg.ParseMode = "MarkdownV2"
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) allow(kind scraper.FailureKind) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if last, ok := b.lastSent[kind]; ok && now.Sub(last) < b.cooldown {
		return false
	}
	b.lastSent[kind] = now
	return true
}

func formatDegraded(q models.Query, kind scraper.FailureKind, warning string) string {
	msgText := fmt.Sprintf("⚠️ *Degraded search* \\(%s\\)\n", escapeMarkdown(string(kind)))
	msgText += fmt.Sprintf("🔍 %s\n", escapeMarkdown(q.Keywords))

	loc := q.Location
	if loc == "" {
		loc = "N/A"
	}
	msgText += fmt.Sprintf("📍 %s\n", escapeMarkdown(loc))
	msgText += fmt.Sprintf("🏷 %s / %s\n", escapeMarkdown(string(q.JobType)), escapeMarkdown(string(q.DatePosted)))
	msgText += fmt.Sprintf("📝 %s\n", escapeMarkdown(warning))
	return msgText
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
