package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestCategoryCacheUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewCategoryCache(client, time.Minute)
	ctx := context.Background()

	_, err := c.Get(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)

	assert.Error(t, c.Set(ctx, map[int]string{1: "Science"}))
}
