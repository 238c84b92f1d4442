package catalog

import (
	"fmt"
	"sort"
)

// Catalog is the validated, indexed item set.
type Catalog struct {
	items   []Item
	byID    map[string]*Item
	byTopic map[string][]*Item
	topics  []string
}

// New builds a catalog from a slice of items, validating structure first.
// Validation failures are configuration errors and abort startup.
func New(items []Item) (*Catalog, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:   items,
		byID:    make(map[string]*Item, len(items)),
		byTopic: make(map[string][]*Item),
	}
	for i := range c.items {
		it := &c.items[i]
		c.byID[it.ID] = it
		c.byTopic[it.Topic] = append(c.byTopic[it.Topic], it)
	}
	for topic := range c.byTopic {
		c.topics = append(c.topics, topic)
	}
	sort.Strings(c.topics)
	return c, nil
}

// Item returns the item with the given ID.
func (c *Catalog) Item(id string) (*Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return nil, &ErrUnknownItem{ID: id}
	}
	return it, nil
}

// Has reports whether the catalog contains the item ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	for i := range c.items {
		out[i] = &c.items[i]
	}
	return out
}

// Topics returns the distinct topic tags, sorted.
func (c *Catalog) Topics() []string {
	return c.topics
}

// ByTopic returns all items carrying the given topic tag.
func (c *Catalog) ByTopic(topic string) []*Item {
	return c.byTopic[topic]
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ErrUnknownItem indicates a lookup for an item ID absent from the
// catalog, a caller bug that is rejected rather than defaulted.
type ErrUnknownItem struct {
	ID string
}

func (e *ErrUnknownItem) Error() string {
	return fmt.Sprintf("unknown curriculum item %q", e.ID)
}
