package models

// CombinationResult is the creature a combination produced. Image stays
// null until a drawing is submitted for it.
type CombinationResult struct {
	Name  string  `json:"name"`
	Image *string `json:"image"`
}

// Combination records an unordered pair of creature ids and the result
// generated for them. Key is the slug of the generated name and doubles
// as the resulting creature's id.
type Combination struct {
	Key     string            `json:"key"`
	Card1ID string            `json:"card1_id"`
	Card2ID string            `json:"card2_id"`
	Result  CombinationResult `json:"result"`
}

// Matches reports whether this combination covers the given pair,
// regardless of the order the ids were stored in.
func (c *Combination) Matches(id1, id2 string) bool {
	return (c.Card1ID == id1 && c.Card2ID == id2) ||
		(c.Card1ID == id2 && c.Card2ID == id1)
}

// CombinationCatalog is the on-disk shape of combinations.json.
type CombinationCatalog struct {
	Combinations []Combination `json:"combinations"`
}

// Find returns the combination with the given key, or nil.
func (c *CombinationCatalog) Find(key string) *Combination {
	for i := range c.Combinations {
		if c.Combinations[i].Key == key {
			return &c.Combinations[i]
		}
	}
	return nil
}

// FindPair returns the combination for the unordered pair, or nil.
func (c *CombinationCatalog) FindPair(id1, id2 string) *Combination {
	for i := range c.Combinations {
		if c.Combinations[i].Matches(id1, id2) {
			return &c.Combinations[i]
		}
	}
	return nil
}
