package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/session"
)

var balanceProfiles = []string{config.ProfileEasy, config.ProfileNormal, config.ProfileHard}

// LoadBalances resolves every profile once at startup, overlaying
// cfg.BalanceFile when set, so a bad table fails the boot instead of a
// session create. An empty profile resolves to cfg.BalanceProfile. The
// resolved tables are shared between sessions and never written.
func LoadBalances(cfg *config.Config) (session.BalanceResolver, error) {
	tables := make(map[string]config.Balance, len(balanceProfiles))
	for _, profile := range balanceProfiles {
		b, err := config.BalanceForProfile(profile)
		if err != nil {
			return nil, err
		}
		if cfg.BalanceFile != "" {
			if b, err = config.LoadBalance(cfg.BalanceFile, b); err != nil {
				return nil, fmt.Errorf("%s %q: %w", ErrMsgFailedLoadBalance, profile, err)
			}
		}
		tables[profile] = b
	}

	fallback := cfg.BalanceProfile
	if fallback == "" {
		fallback = config.ProfileNormal
	}
	if _, ok := tables[fallback]; !ok {
		return nil, fmt.Errorf("%w: unknown balance profile %q", domain.ErrInvalidBalance, fallback)
	}

	slog.Info(LogMsgBalancesLoaded, "default_profile", fallback, "file", cfg.BalanceFile)

	return func(profile string) (config.Balance, error) {
		if profile == "" {
			profile = fallback
		}
		b, ok := tables[profile]
		if !ok {
			return config.Balance{}, fmt.Errorf("%w: unknown balance profile %q", domain.ErrInvalidInput, profile)
		}
		return b, nil
	}, nil
}
