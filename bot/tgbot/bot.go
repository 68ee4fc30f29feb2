package tgbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"campushub/bot/botstorage"
	botmodel "campushub/bot/model"
	"campushub/internal/config"
	"campushub/internal/domain"
	"campushub/internal/normalize"
	"campushub/internal/service"
)

type Bot struct {
	bot *tgbotapi.BotAPI

	botStorage botstorage.BotStorage
	log        *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs subscriptions

	commands *Commands
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(es *service.EventService, bs botstorage.BotStorage, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}

	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}
	subs := newSubs()
	users, err := bs.ListUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		for _, subType := range users[i].Subscriptions {
			subs.Add(subType, users[i].ID)
		}
	}

	b := Bot{
		bot:        bot,
		botStorage: bs,
		log:        log.WithField("from", "tg_bot"),
		subs:       subs,
	}

	b.commands = NewCommands(
		es,
		bs,
		cfg.TgBot.AdminPass,
		func(id int) {
			b.subs.Add(botmodel.NewEvent, id)
		},
		func(id int) {
			b.subs.Remove(botmodel.NewEvent, id)
		},
	)

	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	tgUser := update.SentFrom()
	if tgUser == nil {
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"user_id": tgUser.ID,
		"text":    update.Message.Text,
	})
	user, err := b.botStorage.GetUser(int(tgUser.ID))
	if err != nil {
		user, err = b.botStorage.NewUser(botmodel.User{
			ID:        int(tgUser.ID),
			FirstName: tgUser.FirstName,
			Username:  tgUser.UserName,
			Role:      botmodel.RoleUser,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		if err != nil {
			log.WithError(err).Error("unable to get user from db")
			return
		}
	}

	err = b.botStorage.Log(user, update.Message.Text)
	if err != nil {
		log.WithError(err).Error("can't log to db")
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	text, err := b.commands.RunCommand(user, update.Message.Command(), update.Message.CommandArguments())
	if err != nil {
		text = err.Error()
	}
	msg.Text = text
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

// NotifyNewEvent pushes a freshly published event to every subscriber. Wired
// as the org service's creation callback.
func (b *Bot) NotifyNewEvent(ev domain.Event) {
	text := fmt.Sprintf("New event from %s: %s\n%s\n%s at %s",
		normalize.Display(ev.Org.Name),
		ev.Name,
		ev.Description,
		ev.Date.Format("Mon, 2 Jan 15:04"),
		ev.Venue,
	)
	for _, userID := range b.subs.GetUserIDs(botmodel.NewEvent) {
		msg := tgbotapi.NewMessage(int64(userID), text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).Error("notification send error")
			return
		}
	}
}
