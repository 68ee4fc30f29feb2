package botstorage

import "campushub/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	Subscribe(user model.User, event model.EventType) error
	Unsubscribe(user model.User, event model.EventType) error
	UpdateUserRole(user model.User) error
	Log(user model.User, msg string) error
}
