package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/latehour/loahelper/pkg/metrics"
)

const defaultBaseURL = "https://developer-lostark.game.onstove.com"

// Client talks to the Lost Ark open API. It performs no retries and no
// backoff; failures surface to the caller for a single command invocation.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// NewClient creates a client against the public Lost Ark API
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(defaultBaseURL, apiKey)
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests)
func NewClientWithBaseURL(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logging.GetGlobalLoggerFactory().CreateLogger("lostark_client"),
	}
}

// GetSiblings lists all characters sharing an account with the named
// character. Non-2xx responses map to ErrUpstreamUnavailable, an empty or
// non-list body to ErrNoData.
func (c *Client) GetSiblings(characterName string) ([]shared.SiblingCharacter, error) {
	endpoint := fmt.Sprintf("%s/characters/%s/siblings", c.baseURL, url.PathEscape(characterName))

	body, status, err := c.get(endpoint, "siblings")
	if err != nil {
		c.logger.Warn("Siblings request failed", map[string]interface{}{
			"character": characterName,
		})
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstreamUnavailable, err)
	}
	if status < 200 || status >= 300 {
		c.logger.Warn("Siblings request returned non-success status", map[string]interface{}{
			"character": characterName,
			"status":    status,
		})
		return nil, fmt.Errorf("%w: status %d", shared.ErrUpstreamUnavailable, status)
	}

	var siblings []shared.SiblingCharacter
	if err := json.Unmarshal(body, &siblings); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNoData, err)
	}
	if len(siblings) == 0 {
		return nil, fmt.Errorf("%w: empty sibling list for %s", shared.ErrNoData, characterName)
	}

	return siblings, nil
}

// armoryResponse is the envelope of the armory endpoint.
type armoryResponse struct {
	ArmoryProfile shared.ArmoryProfile `json:"ArmoryProfile"`
}

// GetArmoryProfile fetches the avatar image and expedition level for one
// character. Every failure mode degrades to zero values instead of an error;
// callers must tolerate partial profile data rather than abort a whole sync.
func (c *Client) GetArmoryProfile(characterName string) shared.ArmoryProfile {
	endpoint := fmt.Sprintf("%s/armories/characters/%s?filters=cards%%2Bprofiles", c.baseURL, url.PathEscape(characterName))

	body, status, err := c.get(endpoint, "armory")
	if err != nil || status < 200 || status >= 300 {
		c.logger.Warn("Armory profile degraded to zero values", map[string]interface{}{
			"character": characterName,
			"status":    status,
		})
		return shared.ArmoryProfile{}
	}

	var envelope armoryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Warn("Armory profile body undecodable, degraded to zero values", map[string]interface{}{
			"character": characterName,
		})
		return shared.ArmoryProfile{}
	}

	return envelope.ArmoryProfile
}

func (c *Client) get(endpoint, metricLabel string) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(metricLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(metricLabel, "error").Inc()
		return nil, 0, err
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(metricLabel, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
