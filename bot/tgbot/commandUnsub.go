package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	"campushub/bot/botstorage"
	"campushub/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(user model.User, _ string) (string, error) {
	err := c.botStorage.Unsubscribe(user, model.NewEvent)
	if err != nil {
		return "", err
	}
	c.unsub(user.ID)
	return "Unsubscribed. To resubscribe: /sub", nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribe from new event announcements"
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone
}
