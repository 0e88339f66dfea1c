package models

// Creature is an entry in the creature catalog: either seed content
// or the result of a finalized combination.
type Creature struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// CreatureCatalog is the on-disk shape of creatures.json.
type CreatureCatalog struct {
	Creatures []Creature `json:"creatures"`
}

// Find returns the creature with the given id, or nil.
func (c *CreatureCatalog) Find(id string) *Creature {
	for i := range c.Creatures {
		if c.Creatures[i].ID == id {
			return &c.Creatures[i]
		}
	}
	return nil
}
