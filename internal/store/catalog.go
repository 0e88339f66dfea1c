package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yalisommer/creature-creator/internal/models"
	"github.com/yalisommer/creature-creator/pkg/logger"
)

const (
	creaturesFile    = "creatures.json"
	combinationsFile = "combinations.json"
)

// Store owns the two JSON catalog documents on disk. Every mutation is
// a full read-mutate-write cycle guarded by a per-catalog mutex, so two
// concurrent requests cannot interleave their writes within this
// process. Multi-process access is not serialized.
type Store struct {
	dataDir string

	creaturesMu    sync.Mutex
	combinationsMu sync.Mutex
}

func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) creaturesPath() string {
	return filepath.Join(s.dataDir, creaturesFile)
}

func (s *Store) combinationsPath() string {
	return filepath.Join(s.dataDir, combinationsFile)
}

func readDocument(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeDocument(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Creatures reads the creature catalog. Unlike combinations there is no
// tolerant path: base creatures are seeded before the server is useful,
// so a missing or corrupt catalog is a real failure.
func (s *Store) Creatures() (*models.CreatureCatalog, error) {
	var cat models.CreatureCatalog
	if err := readDocument(s.creaturesPath(), &cat); err != nil {
		return nil, err
	}
	if cat.Creatures == nil {
		cat.Creatures = []models.Creature{}
	}
	return &cat, nil
}

// Combinations reads the combination catalog strictly.
func (s *Store) Combinations() (*models.CombinationCatalog, error) {
	var cat models.CombinationCatalog
	if err := readDocument(s.combinationsPath(), &cat); err != nil {
		return nil, err
	}
	if cat.Combinations == nil {
		cat.Combinations = []models.Combination{}
	}
	return &cat, nil
}

// CombinationsOrEmpty reads the combination catalog, substituting the
// canonical empty document when the file is missing, unreadable or
// malformed. The system must stay usable before any combination has
// ever been created.
func (s *Store) CombinationsOrEmpty() *models.CombinationCatalog {
	cat, err := s.Combinations()
	if err != nil {
		logger.Warn().Err(err).Msg("Combination catalog unreadable, starting empty")
		return &models.CombinationCatalog{Combinations: []models.Combination{}}
	}
	return cat
}

// WriteCreatures persists the full creature catalog.
func (s *Store) WriteCreatures(cat *models.CreatureCatalog) error {
	return writeDocument(s.creaturesPath(), cat)
}

// WriteCombinations persists the full combination catalog.
func (s *Store) WriteCombinations(cat *models.CombinationCatalog) error {
	return writeDocument(s.combinationsPath(), cat)
}

// MutateCombinations runs fn over the current combination catalog under
// the catalog lock and writes the result back when fn reports a change.
// The tolerant read applies, so the first mutation ever can start from
// the empty document.
func (s *Store) MutateCombinations(fn func(cat *models.CombinationCatalog) (bool, error)) error {
	s.combinationsMu.Lock()
	defer s.combinationsMu.Unlock()

	cat := s.CombinationsOrEmpty()
	changed, err := fn(cat)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.WriteCombinations(cat)
}

// MutateCreatures is the creature-catalog counterpart. The read here is
// strict: appending to a catalog we could not read would drop every
// existing creature.
func (s *Store) MutateCreatures(fn func(cat *models.CreatureCatalog) (bool, error)) error {
	s.creaturesMu.Lock()
	defer s.creaturesMu.Unlock()

	cat, err := s.Creatures()
	if err != nil {
		return err
	}
	changed, err := fn(cat)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.WriteCreatures(cat)
}
