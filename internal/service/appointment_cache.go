package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-dental-clinic-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key holding the serialized full appointment list view
	appointmentListKey = "appointments:list"

	// TTL is a backstop only; writes invalidate the key explicitly
	appointmentListTTL = 5 * time.Minute
)

// AppointmentCache keeps the rendered appointment list view in Redis so
// repeated GET /appointments calls skip the four-way join. Every cache
// failure is non-fatal: callers fall through to the database.
type AppointmentCache struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewAppointmentCache(client *redis.Client, log *logrus.Logger) *AppointmentCache {
	return &AppointmentCache{
		client: client,
		log:    log,
	}
}

// Get returns the cached list view and whether it was present.
func (c *AppointmentCache) Get(ctx context.Context) ([]dto.AppointmentResponse, bool) {
	data, err := c.client.Get(ctx, appointmentListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read appointment list from cache: %+v", err)
		}
		return nil, false
	}

	var views []dto.AppointmentResponse
	if err := json.Unmarshal(data, &views); err != nil {
		c.log.Warnf("Failed to decode cached appointment list, dropping key: %+v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return views, true
}

// Set stores the rendered list view.
func (c *AppointmentCache) Set(ctx context.Context, views []dto.AppointmentResponse) {
	data, err := json.Marshal(views)
	if err != nil {
		c.log.Warnf("Failed to encode appointment list for cache: %+v", err)
		return
	}
	if err := c.client.Set(ctx, appointmentListKey, data, appointmentListTTL).Err(); err != nil {
		c.log.Warnf("Failed to write appointment list to cache (non-fatal): %+v", err)
	}
}

// Invalidate drops the cached list; called after every write.
func (c *AppointmentCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, appointmentListKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate appointment list cache (non-fatal): %+v", err)
	}
}
