package services

import (
	"context"
	"fmt"

	"github.com/yalisommer/creature-creator/internal/models"
	"github.com/yalisommer/creature-creator/internal/store"
	"github.com/yalisommer/creature-creator/pkg/errors"
	"github.com/yalisommer/creature-creator/pkg/logger"
	"github.com/yalisommer/creature-creator/pkg/utils"
)

// CombinationService orchestrates the combine workflow: resolve the two
// creatures, dedupe by unordered pair, generate a name, derive the key
// and persist. Image attachment is a separate explicit step so the fast
// name path never waits on art.
type CombinationService struct {
	store   *store.Store
	images  *store.ImageStore
	namegen NameGenerator
}

func NewCombinationService(s *store.Store, images *store.ImageStore, namegen NameGenerator) *CombinationService {
	return &CombinationService{
		store:   s,
		images:  images,
		namegen: namegen,
	}
}

// Combine returns the combination for the unordered pair, creating it
// first when no request has ever paired these two creatures.
func (s *CombinationService) Combine(ctx context.Context, card1ID, card2ID string) (*models.Combination, *errors.AppError) {
	if card1ID == "" || card2ID == "" {
		return nil, errors.BadRequest("card1_id and card2_id are required")
	}

	creatures, err := s.store.Creatures()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read creature catalog")
		return nil, errors.NotFound("Creatures not found")
	}

	card1 := creatures.Find(card1ID)
	card2 := creatures.Find(card2ID)
	if card1 == nil || card2 == nil {
		return nil, errors.NotFound("Creature not found")
	}

	// The combination catalog is soft-initialized: before the first
	// combine ever succeeds there is nothing on disk.
	catalog := s.store.CombinationsOrEmpty()
	if existing := catalog.FindPair(card1ID, card2ID); existing != nil {
		return existing, nil
	}

	name := s.namegen.Combine(ctx, card1.Name, card2.Name)
	key := utils.DeriveKey(name)

	var created models.Combination
	mutErr := s.store.MutateCombinations(func(cat *models.CombinationCatalog) (bool, error) {
		// Re-check under the catalog lock: a concurrent request for the
		// same pair may have won the race since the lookup above.
		if existing := cat.FindPair(card1ID, card2ID); existing != nil {
			created = *existing
			return false, nil
		}

		// A different pair may have generated the same name. Keys must
		// stay unique, so disambiguate with a numeric suffix.
		finalKey := key
		for n := 2; cat.Find(finalKey) != nil; n++ {
			finalKey = fmt.Sprintf("%s-%d", key, n)
		}

		created = models.Combination{
			Key:     finalKey,
			Card1ID: card1ID,
			Card2ID: card2ID,
			Result:  models.CombinationResult{Name: name, Image: nil},
		}
		cat.Combinations = append(cat.Combinations, created)
		return true, nil
	})
	if mutErr != nil {
		logger.Error().Err(mutErr).Msg("Failed to persist combination")
		return nil, errors.Internal("Failed to save combination")
	}

	return &created, nil
}

// AttachImage stores a submitted drawing for an existing combination
// and registers the resulting creature in the catalog. A creature that
// already exists under the key is left untouched.
func (s *CombinationService) AttachImage(ctx context.Context, key, encodedImage string) *errors.AppError {
	if key == "" || encodedImage == "" {
		return errors.BadRequest("combination_key and image are required")
	}

	// Resolve before touching the image store so an unknown key never
	// leaves an orphaned file behind.
	catalog := s.store.CombinationsOrEmpty()
	combination := catalog.Find(key)
	if combination == nil {
		return errors.NotFound("Combination not found")
	}

	path, err := s.images.Save(encodedImage, key)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to save image")
		return errors.Internal("Failed to save image")
	}

	resultName := combination.Result.Name
	mutErr := s.store.MutateCombinations(func(cat *models.CombinationCatalog) (bool, error) {
		target := cat.Find(key)
		if target == nil {
			return false, fmt.Errorf("combination %s vanished before update", key)
		}
		target.Result.Image = &path
		resultName = target.Result.Name
		return true, nil
	})
	if mutErr != nil {
		logger.Error().Err(mutErr).Str("key", key).Msg("Failed to update combination")
		return errors.Internal("Failed to update combination")
	}

	mutErr = s.store.MutateCreatures(func(cat *models.CreatureCatalog) (bool, error) {
		if cat.Find(key) != nil {
			return false, nil
		}
		cat.Creatures = append(cat.Creatures, models.Creature{
			ID:    key,
			Name:  resultName,
			Image: &path,
		})
		return true, nil
	})
	if mutErr != nil {
		logger.Error().Err(mutErr).Str("key", key).Msg("Failed to register creature")
		return errors.Internal("Failed to update creatures")
	}

	return nil
}
