package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	"campushub/bot/botstorage"
	"campushub/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(user model.User, _ string) (string, error) {
	err := c.botStorage.Subscribe(user, model.NewEvent)
	if err != nil {
		return "", err
	}
	c.sub(user.ID)
	return "Subscribed to new event announcements. To stop: /unsub", nil
}

func (c *SubCommand) Help() string {
	return "Subscribe to new event announcements"
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone
}
