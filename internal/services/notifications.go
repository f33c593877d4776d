package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/i18n"
	"github.com/terraincognita07/cyclecast/internal/models"
	"github.com/terraincognita07/cyclecast/internal/prediction"
)

const (
	defaultNotifyInterval = 6 * time.Hour
	notifyHorizonDays     = 60
	maxSentNotifications  = 500
)

// MessageSender delivers a plain-text reminder to a chat.
type MessageSender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot}, nil
}

func (sender *TelegramSender) Send(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := sender.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

type NotifierSettings struct {
	ChatID             int64
	PeriodReminderDays int
	NotifyFertility    bool
	Language           string
	Interval           time.Duration
}

// Notifier periodically checks each owner's forecast and sends reminders for
// an upcoming period, the start of the fertile window and a long delay.
type Notifier struct {
	users    UserRepository
	cycles   *CycleService
	sender   MessageSender
	settings NotifierSettings
	messages *i18n.Manager
	logger   *slog.Logger

	mu   sync.Mutex
	sent map[string]dates.Day
}

func NewNotifier(users UserRepository, cycles *CycleService, sender MessageSender, settings NotifierSettings, logger *slog.Logger) *Notifier {
	if settings.Interval <= 0 {
		settings.Interval = defaultNotifyInterval
	}
	if settings.PeriodReminderDays < 0 {
		settings.PeriodReminderDays = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		users:    users,
		cycles:   cycles,
		sender:   sender,
		settings: settings,
		messages: i18n.Default(),
		logger:   logger.With("component", "notifier"),
		sent:     make(map[string]dates.Day),
	}
}

// Start runs one pass immediately and then one per interval until ctx ends.
func (notifier *Notifier) Start(ctx context.Context) {
	ticker := time.NewTicker(notifier.settings.Interval)
	go func() {
		defer ticker.Stop()

		notifier.RunOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				notifier.RunOnce(ctx)
			}
		}
	}()
}

func (notifier *Notifier) RunOnce(ctx context.Context) {
	owners, err := notifier.users.ListOwners(ctx)
	if err != nil {
		notifier.logger.Error("fetch owners failed", "error", err)
		return
	}

	today := notifier.cycles.Today()
	for _, owner := range owners {
		for _, message := range notifier.messagesFor(ctx, owner, today) {
			if !notifier.shouldSend(message.key, today) {
				continue
			}
			if err := notifier.sender.Send(ctx, notifier.settings.ChatID, message.text); err != nil {
				notifier.logger.Error("send reminder failed", "user_id", owner.ID, "kind", message.kind, "error", err)
				continue
			}
			notifier.logger.Info("reminder sent", "user_id", owner.ID, "kind", message.kind)
		}
	}
}

type reminder struct {
	kind string
	key  string
	text string
}

func (notifier *Notifier) messagesFor(ctx context.Context, owner models.User, today dates.Day) []reminder {
	newReminder := func(kind string, text string) reminder {
		return reminder{
			kind: kind,
			key:  fmt.Sprintf("%s:%d:%s", kind, owner.ID, today),
			text: text,
		}
	}

	language := notifier.settings.Language
	formatDay := func(day dates.Day) string {
		return day.Time(time.UTC).Format(notifier.messages.Translate(language, "notify.date_layout"))
	}

	messages := make([]reminder, 0, 3)
	outlook, ok, err := notifier.cycles.Outlook(ctx, owner.ID, notifyHorizonDays)
	if err != nil {
		notifier.logger.Error("forecast failed", "user_id", owner.ID, "error", err)
		return nil
	}
	if ok {
		if next, found := firstStartingFrom(outlook.PredictedPeriods, today); found &&
			dates.Gap(today, next.Start) == notifier.settings.PeriodReminderDays {
			messages = append(messages, newReminder("period", notifier.messages.Translatef(
				language, "notify.period_reminder", notifier.settings.PeriodReminderDays, formatDay(next.Start),
			)))
		}
		if notifier.settings.NotifyFertility {
			if window, found := firstStartingFrom(outlook.FertileRanges, today); found && window.Start == today {
				messages = append(messages, newReminder("fertility", notifier.messages.Translatef(
					language, "notify.fertile_window", formatDay(today),
				)))
			}
		}
	}

	status, err := notifier.cycles.Status(ctx, owner.ID, today)
	if err != nil {
		notifier.logger.Error("status failed", "user_id", owner.ID, "error", err)
		return messages
	}
	if status.PregnancyProbability == prediction.ProbabilitySeekMedicalAdvice {
		messages = append(messages, newReminder("delay", notifier.messages.Translatef(
			language, "notify.delay_alert", status.DelayDays,
		)))
	}
	return messages
}

func firstStartingFrom(ranges []prediction.DateRange, day dates.Day) (prediction.DateRange, bool) {
	for _, candidate := range ranges {
		if candidate.Start >= day {
			return candidate, true
		}
	}
	return prediction.DateRange{}, false
}

func (notifier *Notifier) shouldSend(key string, today dates.Day) bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	if sentOn, ok := notifier.sent[key]; ok && sentOn == today {
		return false
	}

	notifier.sent[key] = today
	if len(notifier.sent) > maxSentNotifications {
		notifier.sent = map[string]dates.Day{key: today}
	}
	return true
}
