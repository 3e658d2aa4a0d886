package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/wildtrack/wildlife-tracker/internal/app/models"
	appRepos "github.com/wildtrack/wildlife-tracker/internal/app/repositories"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
)

// fakeSpeciesRepo stores species by scientific name. Methods the seed never calls are left
// to the embedded nil interface.
type fakeSpeciesRepo struct {
	appRepos.ISpeciesRepository
	stored map[string]*appModels.Species
}

func (f *fakeSpeciesRepo) ExistsByScientificName(_ context.Context, name string) (bool, error) {
	_, ok := f.stored[name]
	return ok, nil
}

func (f *fakeSpeciesRepo) Create(_ context.Context, s *appModels.Species) (*appModels.Species, error) {
	s.ID = int64(len(f.stored) + 1)
	f.stored[s.ScientificName] = s
	return s, nil
}

type fakeUserRepo struct {
	appRepos.IUserRepository
	users     map[string]*appModels.User
	lookupErr error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*appModels.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	u, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *appModels.User) (*appModels.User, error) {
	u.ID = int64(len(f.users) + 1)
	f.users[u.Username] = u
	return u, nil
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	species := &fakeSpeciesRepo{stored: map[string]*appModels.Species{}}
	users := &fakeUserRepo{users: map[string]*appModels.User{}}
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, species, users, zerolog.Nop()))
	assert.Len(t, species.stored, 10)
	require.Contains(t, users.users, AdminUsername)

	admin := users.users[AdminUsername]
	assert.Equal(t, appModels.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, auth.CheckPassword(admin.HashedPassword, AdminPassword))

	require.NoError(t, CreateDefaultData(ctx, species, users, zerolog.Nop()))
	assert.Len(t, species.stored, 10)
	assert.Len(t, users.users, 1)
}

func TestCreateDefaultDataReportsLookupFailure(t *testing.T) {
	species := &fakeSpeciesRepo{stored: map[string]*appModels.Species{}}
	users := &fakeUserRepo{users: map[string]*appModels.User{}, lookupErr: errors.New("connection refused")}

	err := CreateDefaultData(context.Background(), species, users, zerolog.Nop())
	require.Error(t, err)
	assert.Len(t, species.stored, 10, "species seeding is not blocked by the admin lookup")
	assert.Empty(t, users.users)
}

func TestReferenceSpeciesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range ReferenceSpecies() {
		assert.False(t, seen[s.ScientificName], s.ScientificName)
		seen[s.ScientificName] = true
	}
}
