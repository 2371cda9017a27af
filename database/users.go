package database

import (
	"sync"

	"github.com/google/uuid"
	"github.com/moonfeed/moonfeed/model"
)

// Users is the user collection. Every call locks the whole
// collection, so individual reads and writes are atomic
type Users struct {
	mu    sync.RWMutex
	items []model.User
}

func matchUser(u model.User, f *Filter) bool {
	switch f.Key {
	case "id":
		return u.Id == f.Equals
	case "firstName":
		return u.FirstName == f.Equals
	case "lastName":
		return u.LastName == f.Equals
	case "email":
		return u.Email == f.Equals
	case "subscribedToUserIds":
		for _, id := range u.SubscribedToUserIds {
			if id == f.InArray {
				return true
			}
		}
	}

	return false
}

// FindMany returns every user matching the filter,
// in creation order. A nil filter returns all users
func (c *Users) FindMany(filter *Filter) []model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.User, 0, len(c.items))
	for _, u := range c.items {
		if filter == nil || matchUser(u, filter) {
			out = append(out, u)
		}
	}

	return out
}

// FindOne returns the first user matching the filter, or nil
func (c *Users) FindOne(filter *Filter) *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if matchUser(c.items[i], filter) {
			u := c.items[i]
			return &u
		}
	}

	return nil
}

// Create stores a new user with a generated id
func (c *Users) Create(u model.User) *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	u.Id = uuid.NewString()
	if u.SubscribedToUserIds == nil {
		u.SubscribedToUserIds = []string{}
	}
	c.items = append(c.items, u)

	return &u
}

// Change merges provided fields into the stored user.
// The caller already validated that the id exists
func (c *Users) Change(id string, patch model.UserPatch) *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id != id {
			continue
		}

		if patch.FirstName != nil {
			c.items[i].FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			c.items[i].LastName = *patch.LastName
		}
		if patch.Email != nil {
			c.items[i].Email = *patch.Email
		}
		if patch.SubscribedToUserIds != nil {
			c.items[i].SubscribedToUserIds = append([]string{}, (*patch.SubscribedToUserIds)...)
		}

		u := c.items[i]
		return &u
	}

	return nil
}
