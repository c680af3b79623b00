package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking activity to the organizer chat.
type TelegramNotifier struct {
	bot    messageSender
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, event *domain.Event, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Новая бронь*\n\n"+"Мероприятие: %s\n"+"Дата (UTC): %s\n"+"Мест: %d\n"+"Контакт: %s",
		event.Name,
		event.StartDate.Format(dateLayout),
		booking.Spots,
		contact(booking),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingDeleted(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\n"+"Бронь: %s\n"+"Мероприятие: %s\n"+"Освобождено мест: %d",
		booking.ID, booking.EventID, booking.Spots,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyOverbooked(ctx context.Context, usage domain.CapacityUsage) {
	text := fmt.Sprintf(
		"*Превышена вместимость!*\n\n"+"Мероприятие: %s\n"+"Вместимость: %d\n"+"Забронировано: %d",
		usage.EventID, usage.Capacity, usage.Reserved,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

func contact(b *domain.Booking) string {
	if b.Email != "" {
		return b.Email
	}
	return b.Tel
}
