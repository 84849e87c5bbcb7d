package bot

import (
	"context"
	"errors"
	"strings"

	"lunch-tray/config"
	"lunch-tray/lang"
	"lunch-tray/models"
	"lunch-tray/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// telegramAPI is the part of *tgbotapi.BotAPI the bot uses.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api      telegramAPI
	updates  func(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	stop     func()
	cfg      *config.Config
	log      *zap.Logger
	sessions *services.SessionStore
}

func New(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	logger.Info("authorized", zap.String("bot", api.Self.UserName))
	b := newBot(api, cfg, logger)
	b.updates = api.GetUpdatesChan
	b.stop = api.StopReceivingUpdates
	return b, nil
}

func newBot(api telegramAPI, cfg *config.Config, logger *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		cfg:      cfg,
		log:      logger,
		sessions: services.NewSessionStore(cfg.Order.TaxRate),
	}
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Start a new lunch order"},
			{Command: "order", Description: "Show the current step"},
			{Command: "cancel", Description: "Cancel the current order"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

// Start consumes updates until ctx is done.
func (b *Bot) Start(ctx context.Context) {
	if err := b.setBotCommands(); err != nil {
		b.log.Warn("set commands", zap.Error(err))
	}
	go b.sessions.RunReaper(ctx, b.cfg.App.SessionTTL, b.cfg.App.SessionTTL/2, func(n int) {
		b.log.Info("expired idle sessions", zap.Int("count", n))
	})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.updates(u)

	go func() {
		<-ctx.Done()
		b.stop()
	}()

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	userID := msg.From.ID
	l := b.userLang(msg.From)

	switch strings.TrimSpace(msg.Text) {
	case "/start":
		b.sessions.Reset(userID)
		b.sendScreen(msg.Chat.ID, userID, l)
	case "/order":
		b.sendScreen(msg.Chat.ID, userID, l)
	case "/cancel":
		flow := b.sessions.Get(userID)
		if flow.Current() != services.ScreenStart {
			if _, err := flow.Dispatch(services.Event{Kind: services.EventCancel}); err != nil {
				b.log.Error("cancel", zap.Int64("user_id", userID), zap.Error(err))
			}
			b.send(msg.Chat.ID, lang.T(l, "order_canceled"))
		}
		b.sendScreen(msg.Chat.ID, userID, l)
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil || cq.From == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	userID := cq.From.ID
	l := b.userLang(cq.From)

	on, ev, err := services.DecodeAction(cq.Data)
	if err != nil {
		b.log.Warn("bad callback data", zap.Int64("user_id", userID), zap.String("data", cq.Data))
		b.toast(cq.ID, lang.T(l, "unavailable"))
		return
	}

	flow := b.sessions.Get(userID)
	receipt, err := flow.DispatchOn(on, ev)
	if err != nil {
		b.log.Debug("rejected action",
			zap.Int64("user_id", userID),
			zap.String("screen", flow.Current().Route()),
			zap.String("data", cq.Data),
			zap.Error(err))
		b.toast(cq.ID, lang.T(l, services.EventErrorKey(err)))
		// A stale keyboard is the usual cause; redraw it.
		if errors.Is(err, services.ErrInvalidTransition) || errors.Is(err, services.ErrWrongCategory) {
			b.editScreen(chatID, cq.Message.MessageID, userID, l)
		}
		return
	}
	b.toast(cq.ID, "")

	if receipt != nil {
		b.log.Info("order submitted",
			zap.Int64("user_id", userID),
			zap.String("order_id", receipt.ID),
			zap.String("total", receipt.Order.OrderTotal.StringFixed(2)))
		b.editScreen(chatID, cq.Message.MessageID, userID, l)
		b.send(chatID, receiptText(receipt, l))
		return
	}
	b.editScreen(chatID, cq.Message.MessageID, userID, l)
}

func (b *Bot) userLang(u *tgbotapi.User) string {
	if u != nil && lang.Supported(u.LanguageCode) {
		return u.LanguageCode
	}
	return b.cfg.App.Lang
}

func (b *Bot) toast(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Warn("answer callback", zap.Error(err))
	}
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("send", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (b *Bot) sendScreen(chatID, userID int64, l string) {
	content := services.BuildScreen(b.sessions.Get(userID), l)
	msg := tgbotapi.NewMessage(chatID, screenText(content))
	msg.ReplyMarkup = screenMarkup(content)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send screen", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// editScreen redraws the screen message in place.
// If the message is gone it sends a fresh one; "not modified" is ignored.
func (b *Bot) editScreen(chatID int64, messageID int, userID int64, l string) {
	content := services.BuildScreen(b.sessions.Get(userID), l)
	kb := screenMarkup(content)
	edit := tgbotapi.NewEditMessageText(chatID, messageID, screenText(content))
	edit.ReplyMarkup = &kb
	_, err := b.api.Send(edit)
	if err == nil {
		return
	}
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "not modified"):
	case strings.Contains(errStr, "not found"):
		b.sendScreen(chatID, userID, l)
	default:
		b.log.Error("edit screen", zap.Int64("chat_id", chatID), zap.Int("message_id", messageID), zap.Error(err))
	}
}

func screenText(c services.ScreenContent) string {
	return c.Title + "\n\n" + c.Text
}

// screenMarkup converts ScreenContent.Buttons to an inline keyboard.
func screenMarkup(c services.ScreenContent) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range c.Buttons {
		var btns []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Action))
		}
		rows = append(rows, btns)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func receiptText(r *models.Receipt, l string) string {
	return lang.T(l, "receipt", r.Number(), services.FormatPrice(r.Order.OrderTotal))
}

