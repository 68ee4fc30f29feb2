package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"campushub/bot/model"
	"campushub/internal/normalize"
	"campushub/internal/service"
	"campushub/internal/storage"
)

type UpcomingCommand struct {
	eventService *service.EventService
}

func (c *UpcomingCommand) Run(_ model.User, _ string) (string, error) {
	infos, err := c.eventService.List(context.Background(), storage.EventFilter{Limit: 10}, uuid.Nil)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "Nothing scheduled right now.", nil
	}
	var b strings.Builder
	b.WriteString("Upcoming events:\n")
	for _, info := range infos {
		b.WriteString(info.Date.Format("02 Jan"))
		b.WriteString(" - ")
		b.WriteString(info.Name)
		b.WriteString(" (")
		b.WriteString(normalize.Display(info.Org.Name))
		b.WriteString(")\n")
	}
	return b.String(), nil
}

func (c *UpcomingCommand) Help() string {
	return "Lists the next scheduled events"
}

func (c *UpcomingCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *UpcomingCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone
}
