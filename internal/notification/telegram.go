package notification

import (
	"context"
	"fmt"

	"github.com/Alexandre-Machu/BagExpress/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingAccepted(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Курьер найден!*\n\n"+"Забор: %s\n"+"Доставка: %s\n"+"Время забора (UTC): %s",
		b.Pickup.Label, b.Delivery.Label, b.PickupTime.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingPickedUp(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Багаж забран*\n\n"+"Едет по адресу: %s",
		b.Delivery.Label,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingDelivered(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Багаж доставлен!*\n\n"+"Адрес: %s\n"+"Спасибо, что выбрали BagExpress.",
		b.Delivery.Label,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\n"+"Забор: %s\n"+"Доставка: %s",
		b.Pickup.Label, b.Delivery.Label,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
