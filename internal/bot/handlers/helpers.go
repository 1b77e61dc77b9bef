package handlers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// messageOrigin extracts the chat and user IDs from a plain message update.
func messageOrigin(update *models.Update) (chatID, userID int64, ok bool) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return 0, 0, false
	}
	return update.Message.Chat.ID, update.Message.From.ID, true
}

// callbackOrigin extracts the chat ID, originating message ID and user ID
// from a callback query update. Inaccessible messages (older than 48h) have
// no usable message ID and are rejected.
func callbackOrigin(update *models.Update) (chatID int64, messageID int, userID int64, ok bool) {
	if update == nil || update.CallbackQuery == nil {
		return 0, 0, 0, false
	}
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return 0, 0, 0, false
	}
	return msg.Chat.ID, msg.ID, update.CallbackQuery.From.ID, true
}

// sendText sends an HTML-formatted message, optionally with an inline
// keyboard. Send failures are logged and swallowed: there is nothing useful
// to do about a dead chat besides moving on to the next update.
func (d HandlerDeps) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}
	if _, err := b.SendMessage(ctx, params); err != nil {
		d.Logger.ErrorContext(ctx, "Failed to send message", "chat_id", chatID, "error", err)
	}
}

// editText edits a previously sent text message in place. Falls back to
// sending a new message when the edit fails, e.g. when the original message
// was a photo caption or was deleted by the user.
func (d HandlerDeps) editText(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, kb *models.InlineKeyboardMarkup) {
	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if kb != nil {
		params.ReplyMarkup = kb
	}
	if _, err := b.EditMessageText(ctx, params); err != nil {
		d.Logger.DebugContext(ctx, "Edit failed, sending new message", "chat_id", chatID, "error", err)
		d.sendText(ctx, b, chatID, text, kb)
	}
}

// sendMenuImage sends a flow menu as a photo with caption when the image
// asset exists, falling back to a plain text message otherwise. Missing
// images are a cosmetic degradation, never an error shown to the user.
func (d HandlerDeps) sendMenuImage(ctx context.Context, b *bot.Bot, chatID int64, imageName, caption string, kb *models.InlineKeyboardMarkup) {
	if d.Config.Telegram.ImageDir != "" {
		path := filepath.Join(d.Config.Telegram.ImageDir, imageName)
		if f, err := os.Open(path); err == nil {
			defer f.Close()

			params := &bot.SendPhotoParams{
				ChatID:    chatID,
				Photo:     &models.InputFileUpload{Filename: imageName, Data: f},
				Caption:   caption,
				ParseMode: models.ParseModeHTML,
			}
			if kb != nil {
				params.ReplyMarkup = kb
			}
			if _, err := b.SendPhoto(ctx, params); err == nil {
				return
			}
			d.Logger.DebugContext(ctx, "Photo send failed, falling back to text", "image", imageName)
		}
	}
	d.sendText(ctx, b, chatID, caption, kb)
}

// sendTyping shows the typing indicator while a model call is in flight.
func (d HandlerDeps) sendTyping(ctx context.Context, b *bot.Bot, chatID int64) {
	_, _ = b.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
}

// sendStaleHint tells the user a button belongs to a finished or expired
// dialogue and shows the way back to the main menu.
func (d HandlerDeps) sendStaleHint(ctx context.Context, b *bot.Bot, chatID int64) {
	d.sendText(ctx, b, chatID, d.Config.Messages.StartOver, mainMenuKeyboard())
}

func buttonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

func button(text, data string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: data}
}
