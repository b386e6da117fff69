package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shortspace/core/internal/models"
	"github.com/shortspace/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))
	return db
}

func TestRegister(t *testing.T) {
	svc := NewService(setupTestDB(t))

	u, err := svc.Register(context.Background(), &RegisterDTO{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Name) // defaults to username
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterDTO{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterDTO{Username: "alice", Password: "another1"})
	assert.ErrorIs(t, err, errUsernameTaken)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	created, err := svc.Register(ctx, &RegisterDTO{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)

	token, u, err := svc.Login(ctx, "alice", "hunter22", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)

	var stored models.UserModel
	require.NoError(t, db.First(&stored, "username = ?", "alice").Error)
	assert.Equal(t, "203.0.113.7", stored.LastLoginIP)
	assert.NotNil(t, stored.LastLoginTime)
}

func TestLoginRejections(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "ghost", "whatever1", "")
	assert.ErrorIs(t, err, errUserNotFound)

	_, err2 := svc.Register(ctx, &RegisterDTO{Username: "alice", Password: "hunter22"})
	require.NoError(t, err2)

	_, _, err = svc.Login(ctx, "alice", "wrongpass", "")
	assert.ErrorIs(t, err, errWrongPassword)
}
