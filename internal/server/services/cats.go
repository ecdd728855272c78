package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/dbx"
	"github.com/catcurious/catcurious/internal/server/models"
	"github.com/catcurious/catcurious/internal/server/repositories/repomanager"
)

// BreedInfoClient fetches per-breed information from the external breed
// API. Implemented by catapi.Client.
type BreedInfoClient interface {
	Description(ctx context.Context, breed string) (string, error)
	AffectionLevel(ctx context.Context, breed string) (int, error)
	Lifespan(ctx context.Context, breed string) (string, error)
	BreedImageURL(ctx context.Context, breed string) (string, error)
	RandomImageURL(ctx context.Context) (string, error)
}

// FactsClient fetches random cat facts from the external facts API.
// Implemented by catapi.FactsClient.
type FactsClient interface {
	RandomFacts(ctx context.Context, count int) ([]string, error)
}

// CatService provides the cat record lifecycle plus pass-through breed
// information lookups.
type CatService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	breedInfo   BreedInfoClient
	facts       FactsClient
}

// NewCatService constructs a CatService using the shared DB handle, the
// repository manager, and the external API clients.
func NewCatService(db *sql.DB, m repomanager.RepositoryManager, breedInfo BreedInfoClient, facts FactsClient) *CatService {
	return &CatService{db: db, repomanager: m, breedInfo: breedInfo, facts: facts}
}

// validateCat checks breed, age, and weight before any persistence attempt.
// Age zero is allowed (kittens); weight must be strictly positive.
func validateCat(breed string, age, weight float64) error {
	if !models.ValidBreed(breed) {
		return fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	if age < 0 {
		return fmt.Errorf("%w: %v, age must not be negative", common.ErrorInvalidAge, age)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %v, weight must be positive", common.ErrorInvalidWeight, weight)
	}
	return nil
}

// CreateCat validates the input and inserts a new live cat record,
// returning it with its assigned ID. A name collision among live cats is
// reported as common.ErrorAlreadyExists.
func (s *CatService) CreateCat(ctx context.Context, name, breed string, age, weight float64) (*models.Cat, error) {
	if err := validateCat(breed, age, weight); err != nil {
		return nil, err
	}

	repo := s.repomanager.Cats(s.db)
	return repo.Create(ctx, &models.Cat{Name: name, Breed: breed, Age: age, Weight: weight})
}

// DeleteCat soft-deletes the cat with the given id. The flag check and the
// flip run in one transaction with the row locked, so two concurrent
// deletes of the same id can never both succeed. Outcomes: missing row is
// common.ErrorNotFound, an already soft-deleted row is
// common.ErrorAlreadyDeleted.
func (s *CatService) DeleteCat(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Cats(tx)

		deleted, err := repoTx.GetDeletedForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("cat %d: %w", id, common.ErrorNotFound)
			}
			return err
		}
		if deleted {
			return fmt.Errorf("cat %d: %w", id, common.ErrorAlreadyDeleted)
		}

		return repoTx.MarkDeleted(ctx, id)
	})
}

// GetCatByID returns the live cat with the given id. A soft-deleted row is
// common.ErrorDeleted, a missing row common.ErrorNotFound.
func (s *CatService) GetCatByID(ctx context.Context, id int64) (*models.Cat, error) {
	repo := s.repomanager.Cats(s.db)
	cat, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("cat %d: %w", id, common.ErrorNotFound)
		}
		return nil, err
	}
	if cat.Deleted {
		return nil, fmt.Errorf("cat %d: %w", id, common.ErrorDeleted)
	}
	return cat, nil
}

// GetCatByName returns the live cat with the given name, with the same
// failure semantics as GetCatByID.
func (s *CatService) GetCatByName(ctx context.Context, name string) (*models.Cat, error) {
	repo := s.repomanager.Cats(s.db)
	cat, err := repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("cat %q: %w", name, common.ErrorNotFound)
		}
		return nil, err
	}
	if cat.Deleted {
		return nil, fmt.Errorf("cat %q: %w", name, common.ErrorDeleted)
	}
	return cat, nil
}

// ClearAll resets the whole cat collection, removing all records regardless
// of their soft-delete state.
func (s *CatService) ClearAll(ctx context.Context) error {
	repo := s.repomanager.Cats(s.db)
	return repo.Reset(ctx)
}

// BreedDescription fetches the description of a valid breed.
func (s *CatService) BreedDescription(ctx context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return s.breedInfo.Description(ctx, breed)
}

// BreedAffectionLevel fetches the affection level of a valid breed.
func (s *CatService) BreedAffectionLevel(ctx context.Context, breed string) (int, error) {
	if !models.ValidBreed(breed) {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return s.breedInfo.AffectionLevel(ctx, breed)
}

// BreedLifespan fetches the estimated lifespan range of a valid breed.
func (s *CatService) BreedLifespan(ctx context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return s.breedInfo.Lifespan(ctx, breed)
}

// BreedImage fetches a picture URL for a valid breed.
func (s *CatService) BreedImage(ctx context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return s.breedInfo.BreedImageURL(ctx, breed)
}

// RandomImage fetches a random cat image URL.
func (s *CatService) RandomImage(ctx context.Context) (string, error) {
	return s.breedInfo.RandomImageURL(ctx)
}

// RandomFacts fetches count random cat facts. count must be positive.
func (s *CatService) RandomFacts(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d, count must be positive", common.ErrorInvalidFactCount, count)
	}
	return s.facts.RandomFacts(ctx, count)
}
