package deps

import (
	"time"

	"github.com/yohoo/startpage/internal/fetch"
	"github.com/yohoo/startpage/internal/logger"
)

// Deps bundles the shared dependencies handed to handlers.
type Deps struct {
	Logger    logger.Logger
	Fetcher   *fetch.Fetcher // title retrieval, one independent fetch per request
	StartTime time.Time
	Service   string // service name reported by /health
	Version   string
}
