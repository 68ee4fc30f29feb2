package tgbot

import (
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"campushub/bot/botstorage"
	"campushub/bot/model"
)

type RoleCommand struct {
	adminPassword string
	botStorage    botstorage.BotStorage
}

func (c *RoleCommand) Run(user model.User, args string) (string, error) {
	a := strings.SplitN(args, " ", 2)
	switch a[0] {
	case "admin":
		if user.Role == model.RoleAdmin {
			return "", errors.New("role already set")
		}
		if len(a) != 2 {
			return "", ErrBadRequest
		}
		if a[1] != c.adminPassword { // wrong admin password
			return "", ErrBadRequest
		}
		user.Role = model.RoleAdmin
	case "user":
		if user.Role == model.RoleUser {
			return "", errors.New("role already set")
		}
		user.Role = model.RoleUser
	default:
		return "", ErrBadRequest
	}
	err := c.botStorage.UpdateUserRole(user)
	if err != nil {
		return "", err
	}
	return "role updated", nil
}

func (c *RoleCommand) Help() string {
	return "Change role. Usage: /role user or /role admin <pass>"
}

func (c *RoleCommand) Permission() mapset.Set[model.UserRole] {
	return everyone
}

func (c *RoleCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleModerator)
}
