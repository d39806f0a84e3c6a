package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/pkg/database"
)

func setupBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(b.TempDir(), "bench.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	b.Cleanup(func() { _ = database.Close(db) })
	return db
}

func BenchmarkPostCreate(b *testing.B) {
	repo := NewPostRepository(setupBenchDB(b))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := &model.Post{
			Title:    fmt.Sprintf("Benchmark headline %d", i),
			Content:  "Generated body text",
			Author:   "bench",
			Category: model.Categories[i%len(model.Categories)],
		}
		if err := repo.Create(ctx, p); err != nil {
			b.Fatalf("create: %v", err)
		}
	}
}

func BenchmarkPostQueries(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// 预置 N 篇新闻，四个分类均匀分布
	const N = 2000
	posts := make([]model.Post, N)
	for i := range posts {
		posts[i] = model.Post{
			Title:    fmt.Sprintf("Seeded headline %04d", i),
			Content:  "Generated body text",
			Author:   "bench",
			Category: model.Categories[i%len(model.Categories)],
		}
	}
	if err := db.CreateInBatches(&posts, 500).Error; err != nil {
		b.Fatalf("seed posts: %v", err)
	}

	b.ResetTimer()
	b.Run("List", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.List(ctx)
		}
	})

	b.Run("ListByCategory", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.ListByCategory(ctx, model.CategoryTravel)
		}
	})

	b.Run("GetByID", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = repo.GetByID(ctx, posts[i%N].ID)
		}
	})
}
