package database

import (
	"sync"

	"github.com/moonfeed/moonfeed/model"
)

// MemberTypes is the member type collection. Unlike the other
// collections its ids are plan names chosen by the caller,
// not generated
type MemberTypes struct {
	mu    sync.RWMutex
	items []model.MemberType
}

func matchMemberType(m model.MemberType, f *Filter) bool {
	if f.Key == "id" {
		return m.Id == f.Equals
	}

	return false
}

// FindMany returns every member type matching the filter.
// A nil filter returns all member types
func (c *MemberTypes) FindMany(filter *Filter) []model.MemberType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.MemberType, 0, len(c.items))
	for _, m := range c.items {
		if filter == nil || matchMemberType(m, filter) {
			out = append(out, m)
		}
	}

	return out
}

// FindOne returns the first member type matching the filter, or nil
func (c *MemberTypes) FindOne(filter *Filter) *model.MemberType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if matchMemberType(c.items[i], filter) {
			m := c.items[i]
			return &m
		}
	}

	return nil
}

// Create stores a new member type under its own id
func (c *MemberTypes) Create(m model.MemberType) *model.MemberType {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, m)

	return &m
}

// Change merges provided fields into the stored member type
func (c *MemberTypes) Change(id string, patch model.MemberTypePatch) *model.MemberType {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id != id {
			continue
		}

		if patch.Discount != nil {
			c.items[i].Discount = *patch.Discount
		}
		if patch.MonthPostsLimit != nil {
			c.items[i].MonthPostsLimit = *patch.MonthPostsLimit
		}

		m := c.items[i]
		return &m
	}

	return nil
}
