package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/gin-news/internal/auth"
	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/repository"
	"github.com/d60-Lab/gin-news/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestRegisterStoresHash(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "plain-secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "plain-secret", stored.Password)
	assert.True(t, auth.CheckPassword("plain-secret", stored.Password))
}

func TestAuthenticate(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(openTestDB(t)))
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "first")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "alice", "other@example.com", "second")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "alice", "first")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = svc.Authenticate(ctx, "alice", "second")
	assert.ErrorIs(t, err, ErrWrongPassword, "login resolves to the first match")

	_, err = svc.Authenticate(ctx, "nobody", "first")
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestPostServiceCreateDefaults(t *testing.T) {
	svc := NewPostService(repository.NewPostRepository(openTestDB(t)))
	ctx := context.Background()

	p := &model.Post{ID: 500, Title: "Headline One", Category: model.CategoryGeneral, Content: "Some text content"}
	require.NoError(t, svc.Create(ctx, p))
	assert.NotEqual(t, uint(500), p.ID, "identifier is assigned by storage")
	assert.Equal(t, model.DefaultAuthor, p.Author)

	err := svc.Create(ctx, &model.Post{Title: "Bad category", Category: "Politics", Content: "Some text content"})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestPostServiceNotFound(t *testing.T) {
	svc := NewPostService(repository.NewPostRepository(openTestDB(t)))
	ctx := context.Background()

	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.ErrorIs(t, svc.Update(ctx, &model.Post{ID: 1, Title: "t", Category: model.CategoryGeneral}), ErrPostNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrPostNotFound)
}

type brokenPostRepo struct{ repository.PostRepository }

var errStore = errors.New("database is locked")

func (brokenPostRepo) List(context.Context) ([]*model.Post, error) { return nil, errStore }
func (brokenPostRepo) GetByID(context.Context, uint) (*model.Post, error) {
	return nil, errStore
}

func TestPostServiceWrapsStoreErrors(t *testing.T) {
	svc := NewPostService(brokenPostRepo{})
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Get(ctx, 3)
	assert.ErrorIs(t, err, errStore)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}
