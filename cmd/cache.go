package main

import (
	"context"
	"shortener/internal/config"
	"shortener/pkg/cache"
	"shortener/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cacheCommand groups operator tools for the resolution cache.
func cacheCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspects and invalidates the resolution cache",
	}

	kinds := make([]string, 0, len(cache.Kinds))
	for _, k := range cache.Kinds {
		kinds = append(kinds, string(k))
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate <kind> <fields...>",
		Short: "Removes one cache entry, e.g. 'invalidate link abc123 5 7' or 'invalidate user a@b.com'",
		Long: "Removes the cache entry derived from the given identifying fields.\n" +
			"Kinds: " + strings.Join(kinds, ", ") + ".",
		Args: cobra.RangeArgs(2, 4), //nolint: mnd
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			kind, err := cache.ParseKind(args[0])
			if err != nil {
				logger.Fatal(ctx, "invalid cache kind", zap.Error(err))
			}
			key, err := cache.ParseKey(kind, args[1:]...)
			if err != nil {
				logger.Fatal(ctx, "invalid cache key", zap.Error(err))
			}

			c, closeCache := getCache(ctx, cfg, nil)
			defer closeCache()

			if err := c.RemoveKeys(ctx, key); err != nil {
				logger.Fatal(ctx, "could not invalidate cache entry", zap.String("key", key), zap.Error(err))
			}
			logger.Info(ctx, "cache entry invalidated", zap.String("key", key))
		},
	})

	return cmd
}
