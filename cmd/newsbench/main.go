package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/gin-news/config"
	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/repository"
	"github.com/d60-Lab/gin-news/internal/service"
	"github.com/d60-Lab/gin-news/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// pct 返回 p 分位延迟
func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	defer database.Close(db)

	svc := service.NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	N := envInt("N", 2000)
	CONC := envInt("CONC", 1)
	READS := envInt("READS", 100)

	// 写入：CONC 个 worker 并发创建 N 篇新闻，分类轮转
	feed := make(chan int, N)
	for i := 0; i < N; i++ {
		feed <- i
	}
	close(feed)

	workers := CONC
	if workers > N {
		workers = N
	}
	latCh := make(chan time.Duration, N)
	ids := make(chan uint, N)
	done := make(chan struct{}, workers)
	failed := 0
	errCh := make(chan error, N)

	t0 := time.Now()
	for w := 0; w < workers; w++ {
		go func() {
			for i := range feed {
				tag := uuid.New().String()[:8]
				p := &model.Post{
					Title:    "Benchmark headline " + tag,
					Content:  "Generated body for post " + tag,
					Author:   "bench",
					Category: model.Categories[i%len(model.Categories)],
				}
				st := time.Now()
				if err := svc.Create(ctx, p); err != nil {
					errCh <- err
					continue
				}
				latCh <- time.Since(st)
				ids <- p.ID
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	writeDur := time.Since(t0)
	close(latCh)
	close(ids)
	close(errCh)
	for range errCh {
		failed++
	}

	writeRecs := make([]time.Duration, 0, N)
	for d := range latCh {
		writeRecs = append(writeRecs, d)
	}
	created := make([]uint, 0, N)
	for id := range ids {
		created = append(created, id)
	}

	// 读取：列表、分类过滤、按 id 查询
	measure := func(fn func(i int)) []time.Duration {
		recs := make([]time.Duration, 0, READS)
		for i := 0; i < READS; i++ {
			st := time.Now()
			fn(i)
			recs = append(recs, time.Since(st))
		}
		return recs
	}
	listRecs := measure(func(int) { _, _ = svc.List(ctx) })
	filterRecs := measure(func(i int) {
		_, _ = svc.ListByCategory(ctx, model.Categories[i%len(model.Categories)])
	})
	var getRecs []time.Duration
	if len(created) > 0 {
		getRecs = measure(func(i int) { _, _ = svc.Get(ctx, created[i%len(created)]) })
	}

	fmt.Printf("N=%d, CONC=%d, READS=%d, failed=%d\n", N, CONC, READS, failed)
	fmt.Printf("Create total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		writeDur, writeDur/time.Duration(max(len(writeRecs), 1)), pct(writeRecs, 0.50), pct(writeRecs, 0.95), pct(writeRecs, 0.99))
	fmt.Printf("List all: p50=%v, p95=%v\n", pct(listRecs, 0.50), pct(listRecs, 0.95))
	fmt.Printf("Filter by category: p50=%v, p95=%v\n", pct(filterRecs, 0.50), pct(filterRecs, 0.95))
	fmt.Printf("Get by id: p50=%v, p95=%v\n", pct(getRecs, 0.50), pct(getRecs, 0.95))
}
