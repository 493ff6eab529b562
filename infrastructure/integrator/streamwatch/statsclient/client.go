package statsclient

import (
	"net/http"

	streamwatchdomain "github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/domain"
	"github.com/ghosteone/manager-api/internal/config"
)

type Client interface {
	GetStreamCounts(params StreamCountParams) (*streamwatchdomain.StreamCounts, error)
}

type StreamWatchClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StreamWatchClient{
		httpClient: &http.Client{
			Timeout: cfg.StreamWatch.RequestTimeout,
		},
		config: cfg,
	}
}
