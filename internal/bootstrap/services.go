package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MixCalc_Go/internal/config"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
	"github.com/osse101/MixCalc_Go/internal/recipe"
)

// Services holds the application services shared by every entrypoint
type Services struct {
	Mixing  mixing.Service
	Names   naming.Resolver
	Recipes *recipe.Book
}

// InitializeServices builds the services described by cfg
func InitializeServices(cfg *config.Config) (*Services, error) {
	names, err := naming.NewResolver(cfg.AliasesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitResolver, err)
	}

	svc := &Services{
		Mixing:  mixing.NewService(cfg.MixCacheSize, cfg.MixCacheTTL),
		Names:   names,
		Recipes: recipe.NewBook(),
	}

	slog.Info(LogMsgServicesInitialized,
		"mix_cache_size", cfg.MixCacheSize,
		"aliases_path", cfg.AliasesPath)

	return svc, nil
}
