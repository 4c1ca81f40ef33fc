package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"drivebook/internal/pkg/i18n"
	"drivebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CourseCache keeps rendered course views in redis, one key per course per
// language. Booking and admin writes invalidate both language keys.
type CourseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCourseCache(client *redis.Client, ttl time.Duration) *CourseCache {
	return &CourseCache{client: client, ttl: ttl}
}

func key(id uuid.UUID, lang i18n.Language) string {
	return "course:" + id.String() + ":" + lang.String()
}

func (c *CourseCache) Get(ctx context.Context, id uuid.UUID, lang i18n.Language) (*queries.CourseView, error) {
	raw, err := c.client.Get(ctx, key(id, lang)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var view queries.CourseView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *CourseCache) Set(ctx context.Context, view *queries.CourseView, lang i18n.Language) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(view.ID, lang), raw, c.ttl).Err()
}

func (c *CourseCache) Invalidate(ctx context.Context, courseID uuid.UUID) error {
	keys := make([]string, 0, len(i18n.Supported))
	for _, lang := range i18n.Supported {
		keys = append(keys, key(courseID, lang))
	}
	return c.client.Del(ctx, keys...).Err()
}
