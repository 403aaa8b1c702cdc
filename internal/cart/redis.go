package cart

import (
	"context"
	"encoding/json"
	"time"

	"aurelia_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// Carts live for 30 days, same horizon as the abandoned-cart recovery window.
const cartTTL = 30 * 24 * time.Hour

// RedisPersister stores cart snapshots as JSON under cart:<sessionID>.
type RedisPersister struct {
	Client *redis.Client
}

func (r *RedisPersister) Save(ctx context.Context, sessionID string, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, "cart:"+sessionID, data, cartTTL).Err()
}

func (r *RedisPersister) Load(ctx context.Context, sessionID string) (models.Cart, bool, error) {
	data, err := r.Client.Get(ctx, "cart:"+sessionID).Result()
	if err == redis.Nil {
		return models.Cart{}, false, nil
	}
	if err != nil {
		return models.Cart{}, false, err
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return models.Cart{}, false, err
	}
	return c, true, nil
}
