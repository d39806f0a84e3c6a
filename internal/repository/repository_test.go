package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/pkg/database"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open db")
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// PostRepositoryTestSuite 新闻仓储测试
type PostRepositoryTestSuite struct {
	suite.Suite
	repo PostRepository
	ctx  context.Context
}

func (s *PostRepositoryTestSuite) SetupTest() {
	s.repo = NewPostRepository(openTestDB(s.T()))
	s.ctx = context.Background()
}

func (s *PostRepositoryTestSuite) create(title string, category model.Category) *model.Post {
	p := &model.Post{Title: title, Content: "Some text content", Author: "Jane", Category: category}
	require.NoError(s.T(), s.repo.Create(s.ctx, p))
	return p
}

func (s *PostRepositoryTestSuite) TestCreateAndGetRoundTrip() {
	p := &model.Post{Title: "Headline One", Author: "Jane", Category: model.CategorySports, Content: "Some text content"}
	require.NoError(s.T(), s.repo.Create(s.ctx, p))
	assert.NotZero(s.T(), p.ID)
	assert.False(s.T(), p.CreatedAt.IsZero())

	got, err := s.repo.GetByID(s.ctx, p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), p.ID, got.ID)
	assert.Equal(s.T(), "Headline One", got.Title)
	assert.Equal(s.T(), "Jane", got.Author)
	assert.Equal(s.T(), model.CategorySports, got.Category)
	assert.Equal(s.T(), "Some text content", got.Content)
	assert.WithinDuration(s.T(), p.CreatedAt, got.CreatedAt, time.Second)
}

func (s *PostRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.GetByID(s.ctx, 42)
	assert.ErrorIs(s.T(), err, ErrPostNotFound)
}

func (s *PostRepositoryTestSuite) TestListStorageOrder() {
	first := s.create("First headline", model.CategoryGeneral)
	second := s.create("Second headline", model.CategoryTravel)
	third := s.create("Third headline", model.CategoryGeneral)

	posts, err := s.repo.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), posts, 3)
	assert.Equal(s.T(), []uint{first.ID, second.ID, third.ID}, []uint{posts[0].ID, posts[1].ID, posts[2].ID})
}

func (s *PostRepositoryTestSuite) TestListByCategory() {
	s.create("Football results", model.CategorySports)
	s.create("Holiday in Rome", model.CategoryTravel)
	s.create("Tennis final", model.CategorySports)
	s.create("Morning routine", model.CategoryLifeStyle)

	posts, err := s.repo.ListByCategory(s.ctx, model.CategorySports)
	require.NoError(s.T(), err)
	require.Len(s.T(), posts, 2)
	for _, p := range posts {
		assert.Equal(s.T(), model.CategorySports, p.Category)
	}

	posts, err = s.repo.ListByCategory(s.ctx, model.CategoryLifeStyle)
	require.NoError(s.T(), err)
	assert.Len(s.T(), posts, 1)

	posts, err = s.repo.ListByCategory(s.ctx, "Politics")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), posts)
}

func (s *PostRepositoryTestSuite) TestUpdateKeepsIdentityAndCreatedAt() {
	p := s.create("Original headline", model.CategoryGeneral)
	before, err := s.repo.GetByID(s.ctx, p.ID)
	require.NoError(s.T(), err)

	err = s.repo.Update(s.ctx, &model.Post{
		ID:        p.ID,
		Title:     "Updated headline",
		Content:   "Updated text content",
		Author:    "Mark",
		Category:  model.CategoryTravel,
		CreatedAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(s.T(), err)

	after, err := s.repo.GetByID(s.ctx, p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), before.ID, after.ID)
	assert.True(s.T(), before.CreatedAt.Equal(after.CreatedAt), "created_at must not change")
	assert.Equal(s.T(), "Updated headline", after.Title)
	assert.Equal(s.T(), "Updated text content", after.Content)
	assert.Equal(s.T(), "Mark", after.Author)
	assert.Equal(s.T(), model.CategoryTravel, after.Category)
}

func (s *PostRepositoryTestSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, &model.Post{ID: 99, Title: "Nothing here", Category: model.CategoryGeneral})
	assert.ErrorIs(s.T(), err, ErrPostNotFound)
}

func (s *PostRepositoryTestSuite) TestDelete() {
	p := s.create("To be removed", model.CategoryGeneral)
	require.NoError(s.T(), s.repo.Delete(s.ctx, p.ID))

	_, err := s.repo.GetByID(s.ctx, p.ID)
	assert.ErrorIs(s.T(), err, ErrPostNotFound)

	assert.ErrorIs(s.T(), s.repo.Delete(s.ctx, p.ID), ErrPostNotFound)
}

func (s *PostRepositoryTestSuite) TestDefaultAuthorColumn() {
	p := &model.Post{Title: "No author given", Content: "Some text content", Category: model.CategoryGeneral}
	require.NoError(s.T(), s.repo.Create(s.ctx, p))

	got, err := s.repo.GetByID(s.ctx, p.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), model.DefaultAuthor, got.Author)
}

func TestPostRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostRepositoryTestSuite))
}

func TestUserRepositoryFirstMatch(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	first := &model.User{Username: "alice", Email: "alice@example.com", Password: "hash-1"}
	second := &model.User{Username: "alice", Email: "alice2@example.com", Password: "hash-2"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second), "duplicate usernames are accepted")

	got, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "hash-1", got.Password)

	_, err = repo.FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
