package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix = "user:%d"
)

const (
	// UserTTL bounds how long a stale username can appear on listed tweets.
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}
