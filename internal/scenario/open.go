package scenario

import (
	"fmt"

	"github.com/iwvelando/ai-roi-forecast/internal/config"
)

// OpenStore builds the Store selected by the store configuration.
func OpenStore(conf config.StoreConfig) (Store, error) {
	switch conf.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		dir := conf.Path
		if dir == "" {
			dir = "."
		}
		return NewFileStore(dir)
	case "redis":
		if conf.RedisAddress == "" {
			return nil, fmt.Errorf("store backend redis requires redisAddress")
		}
		return NewRedisStore(conf.RedisAddress, conf.RedisPassword, conf.RedisDB), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", conf.Backend)
	}
}

// SnapshotFromConfig returns the resolved main assumptions of conf.
func SnapshotFromConfig(conf *config.Configuration) Snapshot {
	return Snapshot{Costs: conf.Costs, Values: conf.Values, UseCase: conf.UseCase}.clone()
}
