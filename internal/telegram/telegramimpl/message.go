package telegramimpl

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-tweet-relay/internal/domain"
	"github.com/orgball2608/insta-tweet-relay/pkg/formatter"
)

// NotifyPublication sends a MarkdownV2 summary of the outcome to the
// configured chat.
func (tg *TelegramImpl) NotifyPublication(ctx context.Context, pub domain.Publication) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(tg.ChatID, FormatPublication(pub))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending publication notice",
			"chatID", tg.ChatID,
			"username", pub.Username,
			"error", err)
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}

	tg.Logger.Info("Publication notice sent",
		"chatID", tg.ChatID,
		"username", pub.Username,
		"success", pub.Success)
	return nil
}

// FormatPublication renders an outcome as MarkdownV2 text.
func FormatPublication(pub domain.Publication) string {
	var sb strings.Builder

	user := formatter.EscapeMarkdownV2("@" + pub.Username)
	if pub.Success {
		sb.WriteString("✅ *Auto\\-post published* for " + user + "\n")
	} else {
		sb.WriteString(fmt.Sprintf("❌ *Auto\\-post failed* at _%s_ for %s\n",
			formatter.EscapeMarkdownV2(pub.Stage), user))
	}

	if pub.PostURL != "" {
		sb.WriteString("\n📸 Post: " + formatter.EscapeMarkdownV2(pub.PostURL))
	}
	if pub.TweetURL != "" {
		sb.WriteString("\n🐦 Tweet: " + formatter.EscapeMarkdownV2(pub.TweetURL))
	}
	if pub.GeneratedTweet != "" {
		sb.WriteString("\n\n" + formatter.EscapeMarkdownV2(pub.GeneratedTweet))
	}
	if pub.Error != "" {
		sb.WriteString("\n\n⚠️ " + formatter.EscapeMarkdownV2(pub.Error))
	}

	return sb.String()
}
