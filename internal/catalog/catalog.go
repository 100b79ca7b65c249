// Package catalog holds the static reference data: the worker directory
// and the storefront product. Nothing here is persisted.
package catalog

import "strings"

// Worker is one directory entry, the join target for bookings.
type Worker struct {
	ID       int
	Name     string
	Skill    string
	City     string
	Rating   float64
	PriceUSD float64
}

// Product is the single storefront item (the mini guide eBook).
type Product struct {
	ID       string
	Title    string
	PriceUSD float64
}

// DefaultProduct matches the page's fixed USD 19 price point.
var DefaultProduct = Product{
	ID:       "workwise-mini-guide",
	Title:    "WorkWise Mini Guide (eBook)",
	PriceUSD: 19,
}

// Catalog is the fixed in-memory worker directory.
type Catalog struct {
	workers []Worker
}

func New(workers []Worker) *Catalog {
	return &Catalog{workers: workers}
}

// Default returns the shipped directory.
func Default() *Catalog {
	return New([]Worker{
		{ID: 1, Name: "Asha Verma", Skill: "Plumber", City: "Delhi", Rating: 4.8, PriceUSD: 12},
		{ID: 2, Name: "Ravi Kumar", Skill: "Electrician", City: "Mumbai", Rating: 4.6, PriceUSD: 15},
		{ID: 3, Name: "Meena Joshi", Skill: "Carpenter", City: "Pune", Rating: 4.7, PriceUSD: 14},
		{ID: 4, Name: "Sanjay Patel", Skill: "Painter", City: "Delhi", Rating: 4.3, PriceUSD: 10},
		{ID: 5, Name: "Fatima Khan", Skill: "Cleaner", City: "Mumbai", Rating: 4.9, PriceUSD: 8},
		{ID: 6, Name: "Arjun Nair", Skill: "Plumber", City: "Bengaluru", Rating: 4.5, PriceUSD: 13},
	})
}

func (c *Catalog) Workers() []Worker {
	out := make([]Worker, len(c.workers))
	copy(out, c.workers)
	return out
}

// Find returns the worker with the given id, or nil.
func (c *Catalog) Find(id int) *Worker {
	for i := range c.workers {
		if c.workers[i].ID == id {
			w := c.workers[i]
			return &w
		}
	}
	return nil
}

// Search filters the directory with case-insensitive, AND-combined
// substring matches. Empty filters match everything.
func (c *Catalog) Search(query, city, skill string) []Worker {
	query = strings.ToLower(strings.TrimSpace(query))
	city = strings.ToLower(strings.TrimSpace(city))
	skill = strings.ToLower(strings.TrimSpace(skill))

	var out []Worker
	for _, w := range c.workers {
		if query != "" &&
			!strings.Contains(strings.ToLower(w.Name), query) &&
			!strings.Contains(strings.ToLower(w.Skill), query) &&
			!strings.Contains(strings.ToLower(w.City), query) {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(w.City), city) {
			continue
		}
		if skill != "" && !strings.Contains(strings.ToLower(w.Skill), skill) {
			continue
		}
		out = append(out, w)
	}
	return out
}
