package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/logging"
	"github.com/catcurious/catcurious/internal/server/models"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeUsers is an in-memory UserOperations implementation.
type fakeUsers struct {
	passwords map[string]string
	nextID    int64
	ids       map[string]int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{passwords: make(map[string]string), ids: make(map[string]int64)}
}

func (f *fakeUsers) CreateAccount(_ context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, common.ErrorEmptyCredentials
	}
	if _, ok := f.passwords[username]; ok {
		return 0, fmt.Errorf("username %q: %w", username, common.ErrorAlreadyExists)
	}
	f.nextID++
	f.passwords[username] = password
	f.ids[username] = f.nextID
	return f.nextID, nil
}

func (f *fakeUsers) VerifyPassword(_ context.Context, username, password string) (bool, error) {
	stored, ok := f.passwords[username]
	if !ok {
		return false, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	return stored == password, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, username, newPassword string) error {
	if username == "" || newPassword == "" {
		return common.ErrorEmptyCredentials
	}
	if _, ok := f.passwords[username]; !ok {
		return fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	f.passwords[username] = newPassword
	return nil
}

func (f *fakeUsers) DeleteAccount(_ context.Context, username string) error {
	if _, ok := f.passwords[username]; !ok {
		return fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	delete(f.passwords, username)
	delete(f.ids, username)
	return nil
}

func (f *fakeUsers) GetUserID(_ context.Context, username string) (int64, error) {
	id, ok := f.ids[username]
	if !ok {
		return 0, fmt.Errorf("user %q: %w", username, common.ErrorNotFound)
	}
	return id, nil
}

// fakeCats is an in-memory CatOperations implementation with canned breed
// info responses.
type fakeCats struct {
	cats   map[int64]*models.Cat
	nextID int64

	description string
	affection   int
	lifespan    string
	imageURL    string
	facts       []string
	infoErr     error
}

func newFakeCats() *fakeCats {
	return &fakeCats{
		cats:        make(map[int64]*models.Cat),
		description: "an affectionate cat",
		affection:   5,
		lifespan:    "12 - 15",
		imageURL:    "https://cdn.example/cat.jpg",
		facts:       []string{"cats purr"},
	}
}

func (f *fakeCats) CreateCat(_ context.Context, name, breed string, age, weight float64) (*models.Cat, error) {
	if !models.ValidBreed(breed) {
		return nil, fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	if age < 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidAge, age)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrorInvalidWeight, weight)
	}
	for _, c := range f.cats {
		if c.Name == name && !c.Deleted {
			return nil, fmt.Errorf("cat %q: %w", name, common.ErrorAlreadyExists)
		}
	}
	f.nextID++
	cat := &models.Cat{ID: f.nextID, Name: name, Breed: breed, Age: age, Weight: weight}
	f.cats[cat.ID] = cat
	return cat, nil
}

func (f *fakeCats) DeleteCat(_ context.Context, id int64) error {
	cat, ok := f.cats[id]
	if !ok {
		return fmt.Errorf("cat %d: %w", id, common.ErrorNotFound)
	}
	if cat.Deleted {
		return fmt.Errorf("cat %d: %w", id, common.ErrorAlreadyDeleted)
	}
	cat.Deleted = true
	return nil
}

func (f *fakeCats) GetCatByID(_ context.Context, id int64) (*models.Cat, error) {
	cat, ok := f.cats[id]
	if !ok {
		return nil, fmt.Errorf("cat %d: %w", id, common.ErrorNotFound)
	}
	if cat.Deleted {
		return nil, fmt.Errorf("cat %d: %w", id, common.ErrorDeleted)
	}
	return cat, nil
}

func (f *fakeCats) GetCatByName(_ context.Context, name string) (*models.Cat, error) {
	foundDeleted := false
	for _, cat := range f.cats {
		if cat.Name != name {
			continue
		}
		if !cat.Deleted {
			return cat, nil
		}
		foundDeleted = true
	}
	if foundDeleted {
		return nil, fmt.Errorf("cat %q: %w", name, common.ErrorDeleted)
	}
	return nil, fmt.Errorf("cat %q: %w", name, common.ErrorNotFound)
}

func (f *fakeCats) ClearAll(_ context.Context) error {
	f.cats = make(map[int64]*models.Cat)
	f.nextID = 0
	return nil
}

func (f *fakeCats) BreedDescription(_ context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return f.description, f.infoErr
}

func (f *fakeCats) BreedAffectionLevel(_ context.Context, breed string) (int, error) {
	if !models.ValidBreed(breed) {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return f.affection, f.infoErr
}

func (f *fakeCats) BreedLifespan(_ context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return f.lifespan, f.infoErr
}

func (f *fakeCats) BreedImage(_ context.Context, breed string) (string, error) {
	if !models.ValidBreed(breed) {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidBreed, breed)
	}
	return f.imageURL, f.infoErr
}

func (f *fakeCats) RandomImage(_ context.Context) (string, error) {
	return f.imageURL, f.infoErr
}

func (f *fakeCats) RandomFacts(_ context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", common.ErrorInvalidFactCount, count)
	}
	return f.facts, f.infoErr
}
