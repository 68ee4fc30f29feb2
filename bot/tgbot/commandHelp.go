package tgbot

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"campushub/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(user model.User, args string) (string, error) {
	for s, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		if args == s {
			return command.Help(), nil
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for commandName, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("For details: /help and a command name")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return everyone
}
