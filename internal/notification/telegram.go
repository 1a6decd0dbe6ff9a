package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

// TelegramNotifier pushes payment updates to the organizer's chat. With an
// empty token it degrades to a no-op so local runs work without a bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyPaymentReceived(ctx context.Context, p *domain.Payment) {
	text := fmt.Sprintf(
		"*Payment received*\n\n"+"Client: %s\n"+"Invoice: %s\n"+"Amount: $%s\n"+"Net after fees: $%s",
		p.ClientName, p.InvoiceNumber, p.Amount.StringFixed(2), p.NetAmount.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyVendorPaid(ctx context.Context, p *domain.Payment) {
	text := fmt.Sprintf(
		"*Vendor paid*\n\n"+"Vendor: %s\n"+"Amount: $%s\n"+"Confirmation: %s",
		p.VendorName, p.Amount.StringFixed(2), p.ConfirmationNumber,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaymentOverdue(ctx context.Context, p *domain.Payment) {
	text := fmt.Sprintf(
		"*Payment overdue*\n\n"+"Counterparty: %s\n"+"Amount: $%s\n"+"Was due: %s",
		p.Counterparty(), p.Amount.StringFixed(2), p.DueDate.Format("02.01.2006"),
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
