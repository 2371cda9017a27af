package database

import (
	"sync"

	"github.com/google/uuid"
	"github.com/moonfeed/moonfeed/model"
)

// Posts is the post collection
type Posts struct {
	mu    sync.RWMutex
	items []model.Post
}

func matchPost(p model.Post, f *Filter) bool {
	switch f.Key {
	case "id":
		return p.Id == f.Equals
	case "title":
		return p.Title == f.Equals
	case "userId":
		return p.UserId == f.Equals
	}

	return false
}

// FindMany returns every post matching the filter,
// in creation order. A nil filter returns all posts
func (c *Posts) FindMany(filter *Filter) []model.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Post, 0, len(c.items))
	for _, p := range c.items {
		if filter == nil || matchPost(p, filter) {
			out = append(out, p)
		}
	}

	return out
}

// FindOne returns the first post matching the filter, or nil
func (c *Posts) FindOne(filter *Filter) *model.Post {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.items {
		if matchPost(c.items[i], filter) {
			p := c.items[i]
			return &p
		}
	}

	return nil
}

// Create stores a new post with a generated id
func (c *Posts) Create(p model.Post) *model.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	p.Id = uuid.NewString()
	c.items = append(c.items, p)

	return &p
}

// Change merges provided fields into the stored post
func (c *Posts) Change(id string, patch model.PostPatch) *model.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id != id {
			continue
		}

		if patch.Title != nil {
			c.items[i].Title = *patch.Title
		}
		if patch.Content != nil {
			c.items[i].Content = *patch.Content
		}

		p := c.items[i]
		return &p
	}

	return nil
}

// Delete removes a post and returns it, or nil when absent
func (c *Posts) Delete(id string) *model.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Id == id {
			p := c.items[i]
			c.items = append(c.items[:i], c.items[i+1:]...)
			return &p
		}
	}

	return nil
}
