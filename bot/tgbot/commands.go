package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	"campushub/bot/botstorage"
	"campushub/bot/model"
	"campushub/internal/service"
)

type Command interface {
	Run(user model.User, args string) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

var everyone = mapset.NewSet(model.RoleAdmin, model.RoleModerator, model.RoleUser)

type Commands struct {
	list map[string]Command
}

func NewCommands(
	es *service.EventService,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(id int),
	unsubFn func(id int),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"upcoming": &UpcomingCommand{
				eventService: es,
			},
			"info": &InfoCommand{
				eventService: es,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
			"role": &RoleCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args)
			}
		}
	}
	return "", ErrBadRequest
}
