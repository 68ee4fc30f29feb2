package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	botmodel "campushub/bot/model"
)

type subscriptions struct {
	m map[botmodel.EventType]mapset.Set[int]
}

func newSubs() subscriptions {
	return subscriptions{
		m: make(map[botmodel.EventType]mapset.Set[int]),
	}
}

func (s *subscriptions) Add(t botmodel.EventType, userID int) {
	if s.m[t] == nil {
		s.m[t] = mapset.NewSet[int]()
	}
	s.m[t].Add(userID)
}

func (s *subscriptions) Remove(t botmodel.EventType, userID int) {
	if s.m[t] == nil {
		return
	}
	s.m[t].Remove(userID)
}

func (s *subscriptions) GetUserIDs(t botmodel.EventType) []int {
	if s.m[t] == nil {
		return nil
	}
	return s.m[t].ToSlice()
}
