package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yalisommer/creature-creator/internal/models"
	"github.com/yalisommer/creature-creator/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger.Init("test")
	return New(t.TempDir())
}

func TestCreaturesMissingFileFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Creatures()
	assert.Error(t, err)
}

func TestCreaturesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := &models.CreatureCatalog{Creatures: []models.Creature{
		{ID: "wolf", Name: "Wolf"},
		{ID: "shark", Name: "Shark"},
	}}
	assert.NoError(t, s.WriteCreatures(in))

	out, err := s.Creatures()
	assert.NoError(t, err)
	assert.Len(t, out.Creatures, 2)
	assert.Equal(t, "Wolf", out.Creatures[0].Name)
	assert.NotNil(t, out.Find("shark"))
	assert.Nil(t, out.Find("ghost"))
}

func TestCombinationsOrEmptyMissingFile(t *testing.T) {
	s := newTestStore(t)

	cat := s.CombinationsOrEmpty()
	assert.NotNil(t, cat)
	assert.Empty(t, cat.Combinations)
}

func TestCombinationsOrEmptyMalformedFile(t *testing.T) {
	s := newTestStore(t)

	// Not a JSON document at all
	assert.NoError(t, os.WriteFile(s.combinationsPath(), []byte("not json"), 0o644))
	cat := s.CombinationsOrEmpty()
	assert.Empty(t, cat.Combinations)

	// A document missing the combinations field reads as empty
	assert.NoError(t, os.WriteFile(s.combinationsPath(), []byte("{}"), 0o644))
	cat = s.CombinationsOrEmpty()
	assert.NotNil(t, cat.Combinations)
	assert.Empty(t, cat.Combinations)
}

func TestMutateCombinationsPersists(t *testing.T) {
	s := newTestStore(t)

	err := s.MutateCombinations(func(cat *models.CombinationCatalog) (bool, error) {
		cat.Combinations = append(cat.Combinations, models.Combination{
			Key:     "wolf-shark",
			Card1ID: "wolf",
			Card2ID: "shark",
			Result:  models.CombinationResult{Name: "Wolf-Shark"},
		})
		return true, nil
	})
	assert.NoError(t, err)

	out, err := s.Combinations()
	assert.NoError(t, err)
	assert.Len(t, out.Combinations, 1)
	assert.NotNil(t, out.Find("wolf-shark"))
	assert.NotNil(t, out.FindPair("shark", "wolf")) // unordered
}

func TestMutateCombinationsNoChangeNoWrite(t *testing.T) {
	s := newTestStore(t)

	err := s.MutateCombinations(func(cat *models.CombinationCatalog) (bool, error) {
		return false, nil
	})
	assert.NoError(t, err)

	// Nothing should have been written to disk
	_, statErr := os.Stat(s.combinationsPath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteIsIndented(t *testing.T) {
	s := newTestStore(t)

	assert.NoError(t, s.WriteCreatures(&models.CreatureCatalog{Creatures: []models.Creature{{ID: "wolf", Name: "Wolf"}}}))

	data, err := os.ReadFile(filepath.Join(s.dataDir, creaturesFile))
	assert.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"creatures\"")
}
