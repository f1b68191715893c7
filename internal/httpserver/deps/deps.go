package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarelabs/wayfare/internal/index"
	"github.com/wayfarelabs/wayfare/internal/logger"
	"github.com/wayfarelabs/wayfare/internal/provider"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time           // for testing, defaults to time.Now
	TrustProxy    bool                       // true if running behind a trusted reverse proxy
	RedisClient   *redis.Client              // Redis client connection
	CatalogIndex  *index.CatalogIndex        // In-memory location catalog
	Provider      provider.CandidateProvider // candidate pool source
	ReloadTrigger chan struct{}              // Channel to trigger manual catalog reload
}
