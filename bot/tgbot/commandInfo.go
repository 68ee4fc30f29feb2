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

type InfoCommand struct {
	eventService *service.EventService
}

func (c *InfoCommand) Run(_ model.User, args string) (string, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "Usage: /info event name", nil
	}
	infos, err := c.eventService.List(context.Background(), storage.EventFilter{Search: args, Limit: 1}, uuid.Nil)
	if err != nil {
		return "", err
	}
	if len(infos) == 0 {
		return "No event matches that name.", nil
	}
	ev := infos[0].Event
	var b strings.Builder
	b.WriteString(ev.Name)
	b.WriteString("\n")
	b.WriteString(normalize.Display(ev.Org.Name))
	b.WriteString("\n")
	b.WriteString(ev.Date.Format("Mon, 2 Jan 15:04"))
	if ev.Venue != "" {
		b.WriteString(" at ")
		b.WriteString(ev.Venue)
	}
	if ev.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(ev.Description)
	}
	return b.String(), nil
}

func (c *InfoCommand) Help() string {
	return "Shows details for an event. Usage: /info event name"
}

func (c *InfoCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *InfoCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone
}
