package services

// In-memory fakes for the repository layer, shared by the service tests.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/catcurious/catcurious/internal/common"
	"github.com/catcurious/catcurious/internal/dbx"
	"github.com/catcurious/catcurious/internal/server/models"
	catsrepo "github.com/catcurious/catcurious/internal/server/repositories/cats"
	usersrepo "github.com/catcurious/catcurious/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	users  map[string]*models.User
	nextID int64

	createErr error
	getErr    error
	updateErr error
	deleteErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.users[u.Username]; ok {
		return nil, fmt.Errorf("username %q: %w", u.Username, common.ErrorAlreadyExists)
	}
	f.nextID++
	stored := *u
	stored.ID = f.nextID
	f.users[u.Username] = &stored
	out := stored
	return &out, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUsersRepo) UpdateCredentials(ctx context.Context, username, salt, passwordHash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	u, ok := f.users[username]
	if !ok {
		return common.ErrorNotFound
	}
	u.Salt = salt
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, username string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[username]; !ok {
		return common.ErrorNotFound
	}
	delete(f.users, username)
	return nil
}

type fakeCatsRepo struct {
	cats   map[int64]*models.Cat
	nextID int64

	createCalls int
	createErr   error
}

func newFakeCatsRepo() *fakeCatsRepo {
	return &fakeCatsRepo{cats: map[int64]*models.Cat{}}
}

func (f *fakeCatsRepo) Create(ctx context.Context, c *models.Cat) (*models.Cat, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.cats {
		if existing.Name == c.Name && !existing.Deleted {
			return nil, fmt.Errorf("cat %q: %w", c.Name, common.ErrorAlreadyExists)
		}
	}
	f.nextID++
	stored := *c
	stored.ID = f.nextID
	f.cats[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeCatsRepo) GetByID(ctx context.Context, id int64) (*models.Cat, error) {
	c, ok := f.cats[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *c
	return &out, nil
}

func (f *fakeCatsRepo) GetByName(ctx context.Context, name string) (*models.Cat, error) {
	var deletedMatch *models.Cat
	for _, c := range f.cats {
		if c.Name != name {
			continue
		}
		if !c.Deleted {
			out := *c
			return &out, nil
		}
		deletedMatch = c
	}
	if deletedMatch != nil {
		out := *deletedMatch
		return &out, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeCatsRepo) GetDeletedForUpdate(ctx context.Context, id int64) (bool, error) {
	c, ok := f.cats[id]
	if !ok {
		return false, common.ErrorNotFound
	}
	return c.Deleted, nil
}

func (f *fakeCatsRepo) MarkDeleted(ctx context.Context, id int64) error {
	c, ok := f.cats[id]
	if !ok || c.Deleted {
		return common.ErrorAlreadyDeleted
	}
	c.Deleted = true
	return nil
}

func (f *fakeCatsRepo) Reset(ctx context.Context) error {
	f.cats = map[int64]*models.Cat{}
	f.nextID = 0
	return nil
}

func catFixture(id int64, name string, deleted bool) *models.Cat {
	return &models.Cat{ID: id, Name: name, Breed: "beng", Age: 3, Weight: 10, Deleted: deleted}
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	c *fakeCatsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Cats(db dbx.DBTX) catsrepo.Repository        { return m.c }
