package statsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	streamwatchdomain "github.com/ghosteone/manager-api/infrastructure/integrator/streamwatch/domain"
)

type StreamCountParams struct {
	OwnerID     string
	EntityID    string
	WindowStart time.Time
	WindowEnd   time.Time
}

// GetStreamCounts busca as contagens de streams da janela e da baseline
// equivalente imediatamente anterior, em uma única requisição.
// O deadline vem do timeout do http.Client configurado; estourar o prazo é
// tratado pelo chamador como "fonte indisponível", nunca como falha dura.
func (c *StreamWatchClient) GetStreamCounts(params StreamCountParams) (*streamwatchdomain.StreamCounts, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.httpClient.Timeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.StreamWatch.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/artists/streams/window")

	query := endpoint.Query()
	query.Set("owner_id", params.OwnerID)
	query.Set("entity_id", params.EntityID)
	query.Set("window_start", params.WindowStart.Format(time.RFC3339))
	query.Set("window_end", params.WindowEnd.Format(time.RFC3339))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.StreamWatch.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	counts := &streamwatchdomain.StreamCounts{}
	if err := json.NewDecoder(resp.Body).Decode(counts); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return counts, nil
}
