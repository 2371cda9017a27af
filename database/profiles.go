package database

import (
	"sync"

	"github.com/google/uuid"
	"github.com/moonfeed/moonfeed/model"
)

// Profiles is the profile collection
type Profiles struct {
	mu    sync.RWMutex
	items []model.Profile
}

func matchProfile(p model.Profile, f *Filter) bool {
	switch f.Key {
	case "id":
		return p.Id == f.Equals
	case "userId":
		return p.UserId == f.Equals
	case "memberTypeId":
		return p.MemberTypeId == f.Equals
	case "country":
		return p.Country == f.Equals
	case "city":
		return p.City == f.Equals
	}

	return false
}

// FindMany returns every profile matching the filter,
// in creation order. A nil filter returns all profiles
func (c *Profiles) FindMany(filter *Filter) []model.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Profile, 0, len(c.items))
	for _, p := range c.items {
		if filter == nil || matchProfile(p, filter) {
			out = append(out, p)
		}
	}

	return out
}

// FindOne returns the first profile matching the filter, or nil
func (c *Profiles) FindOne(filter *Filter) *model.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if matchProfile(c.items[i], filter) {
			p := c.items[i]
			return &p
		}
	}

	return nil
}

// Create stores a new profile with a generated id
func (c *Profiles) Create(p model.Profile) *model.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.Id = uuid.NewString()
	c.items = append(c.items, p)

	return &p
}

// Change merges provided fields into the stored profile
func (c *Profiles) Change(id string, patch model.ProfilePatch) *model.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id != id {
			continue
		}

		if patch.Avatar != nil {
			c.items[i].Avatar = *patch.Avatar
		}
		if patch.Sex != nil {
			c.items[i].Sex = *patch.Sex
		}
		if patch.Birthday != nil {
			c.items[i].Birthday = *patch.Birthday
		}
		if patch.Country != nil {
			c.items[i].Country = *patch.Country
		}
		if patch.Street != nil {
			c.items[i].Street = *patch.Street
		}
		if patch.City != nil {
			c.items[i].City = *patch.City
		}
		if patch.MemberTypeId != nil {
			c.items[i].MemberTypeId = *patch.MemberTypeId
		}

		p := c.items[i]
		return &p
	}

	return nil
}
