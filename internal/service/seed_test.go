package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"phorum/internal/model"
)

func TestEnsureSystemAccounts_CreatesWhenAbsent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	created := map[string]*model.User{}

	mockUsers.On("FindByUsername", mock.Anything, "admin").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("FindByUsername", mock.Anything, "antiphish").Return(nil, gorm.ErrRecordNotFound)
	mockUsers.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*model.User)
			created[u.Username] = u
		}).Return(nil).Twice()

	err := EnsureSystemAccounts(context.Background(), mockUsers)

	assert.NoError(t, err)
	assert.Len(t, created, 2)

	admin := created["admin"]
	assert.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin")))

	bot := created["antiphish"]
	assert.NotNil(t, bot)
	assert.Equal(t, model.RoleBot, bot.Role)
	// The bot hash is not a valid bcrypt digest, so no password can match.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(bot.PasswordHash), []byte("!")))

	mockUsers.AssertExpectations(t)
}

func TestEnsureSystemAccounts_Idempotent(t *testing.T) {
	mockUsers := new(MockUserRepository)

	mockUsers.On("FindByUsername", mock.Anything, "admin").Return(&model.User{
		ID: 1, Username: "admin", Role: model.RoleAdmin,
	}, nil)
	mockUsers.On("FindByUsername", mock.Anything, "antiphish").Return(&model.User{
		ID: 2, Username: "antiphish", Role: model.RoleBot,
	}, nil)

	// Seeding twice in sequence never creates or overwrites anything.
	assert.NoError(t, EnsureSystemAccounts(context.Background(), mockUsers))
	assert.NoError(t, EnsureSystemAccounts(context.Background(), mockUsers))
	mockUsers.AssertNotCalled(t, "Create")
}
