package services

import (
	"path/filepath"
	"testing"

	"farm-advisor/internal/models"
	"farm-advisor/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccountService(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(repository.NewFileUserRepository(filepath.Join(t.TempDir(), "users.json")))
}

func TestAdd(t *testing.T) {
	t.Run("creates a farmer account", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Add("farmer3", "secret", "Kumar")
		require.NoError(t, err)
		assert.Equal(t, "Added Kumar successfully!", message)

		accounts, err := service.List()
		require.NoError(t, err)
		account := accounts["farmer3"]
		assert.Equal(t, "secret", account.Password)
		assert.Equal(t, models.RoleFarmer, account.Role)
		assert.NotEmpty(t, account.ID)
	})

	t.Run("missing field silently skips", func(t *testing.T) {
		service := newTestAccountService(t)

		for _, args := range [][3]string{
			{"", "pw", "Name"},
			{"user", "", "Name"},
			{"user", "pw", ""},
		} {
			message, err := service.Add(args[0], args[1], args[2])
			require.NoError(t, err)
			assert.Empty(t, message)
		}

		accounts, err := service.List()
		require.NoError(t, err)
		assert.Len(t, accounts, 3, "no account may be created from incomplete input")
	})

	t.Run("existing username is overwritten", func(t *testing.T) {
		service := newTestAccountService(t)

		accounts, err := service.List()
		require.NoError(t, err)
		before := accounts["farmer1"]

		message, err := service.Add("farmer1", "newpw", "Replacement")
		require.NoError(t, err)
		assert.Equal(t, "Added Replacement successfully!", message)

		accounts, err = service.List()
		require.NoError(t, err)
		after := accounts["farmer1"]
		assert.Equal(t, "newpw", after.Password)
		assert.Equal(t, "Replacement", after.Name)
		assert.Equal(t, models.RoleFarmer, after.Role)
		assert.NotEqual(t, before.ID, after.ID, "overwrite assigns a fresh identifier")
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes a farmer", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Delete("farmer2")
		require.NoError(t, err)
		assert.Equal(t, "Deleted farmer2 successfully!", message)

		accounts, err := service.List()
		require.NoError(t, err)
		assert.NotContains(t, accounts, "farmer2")
	})

	t.Run("admin account is never deletable", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Delete("admin")
		require.NoError(t, err)
		assert.Empty(t, message)

		accounts, err := service.List()
		require.NoError(t, err)
		assert.Contains(t, accounts, "admin")
	})

	t.Run("missing username is a no-op", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Delete("ghost")
		require.NoError(t, err)
		assert.Empty(t, message)
	})
}

func TestEdit(t *testing.T) {
	t.Run("updates only the display name", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Edit("farmer1", "Shivanna Gowda")
		require.NoError(t, err)
		assert.Equal(t, "Updated farmer1 successfully!", message)

		accounts, err := service.List()
		require.NoError(t, err)
		account := accounts["farmer1"]
		assert.Equal(t, "Shivanna Gowda", account.Name)
		assert.Equal(t, "1234", account.Password)
		assert.Equal(t, models.RoleFarmer, account.Role)
		assert.Equal(t, "2", account.ID)
	})

	t.Run("missing username is a no-op", func(t *testing.T) {
		service := newTestAccountService(t)

		message, err := service.Edit("ghost", "Anyone")
		require.NoError(t, err)
		assert.Empty(t, message)
	})
}
