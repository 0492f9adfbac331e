package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

const productCacheTTL = 24 * time.Hour

// CacheProduct stores a product under product:{id} and tracks it on its
// category list for filtered lookups.
func CacheProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	blob, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product %d: %w", product.ID, err)
	}

	pipe := client.TxPipeline()

	productKey := fmt.Sprintf("product:%d", product.ID)
	pipe.Set(ctx, productKey, blob, productCacheTTL)

	categoryKey := fmt.Sprintf("category:%s", product.Category)
	pipe.LPush(ctx, categoryKey, product.ID)
	pipe.Expire(ctx, categoryKey, productCacheTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache product %d: %w", product.ID, err)
	}
	return nil
}

// GetProduct reads a product from the cache. A miss surfaces as the
// underlying redis error.
func GetProduct(ctx context.Context, productID int) (*models.Product, error) {
	client := RedisClient()
	defer client.Close()

	blob, err := client.Get(ctx, fmt.Sprintf("product:%d", productID)).Result()
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(blob), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %d: %w", productID, err)
	}
	return &product, nil
}

// RemoveProduct drops a product and its category-list entry from the cache.
func RemoveProduct(ctx context.Context, product *models.Product) error {
	client := RedisClient()
	defer client.Close()

	pipe := client.TxPipeline()
	pipe.Del(ctx, fmt.Sprintf("product:%d", product.ID))
	pipe.LRem(ctx, fmt.Sprintf("category:%s", product.Category), 0, product.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to remove product %d from cache: %w", product.ID, err)
	}
	return nil
}
