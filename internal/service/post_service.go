package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/repository"
)

var (
	ErrPostNotFound    = repository.ErrPostNotFound
	ErrInvalidCategory = errors.New("invalid category")
)

// PostService 新闻服务
type PostService interface {
	List(ctx context.Context) ([]*model.Post, error)
	ListByCategory(ctx context.Context, category model.Category) ([]*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) error
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService 创建新闻服务
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) ListByCategory(ctx context.Context, category model.Category) ([]*model.Post, error) {
	posts, err := s.postRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	return posts, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return post, nil
}

func (s *postService) Create(ctx context.Context, post *model.Post) error {
	if !post.Category.Valid() {
		return ErrInvalidCategory
	}
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	post.ID = 0
	if err := s.postRepo.Create(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *postService) Update(ctx context.Context, post *model.Post) error {
	if !post.Category.Valid() {
		return ErrInvalidCategory
	}
	if post.Author == "" {
		post.Author = model.DefaultAuthor
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}
