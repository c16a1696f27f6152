package marvel

import (
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AnatolNica/HeroNexus-sub001/internal/domain"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/entity"
	"github.com/AnatolNica/HeroNexus-sub001/internal/domain/value"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/errcodes"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/httpx"
	"github.com/AnatolNica/HeroNexus-sub001/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	charactersPath = "/v1/public/characters"

	reasonUsage        = "usage"
	reasonUnauthorized = "unauthorized"
	reasonRateLimited  = "rate_limited"

	logFieldMaxLen = 4096
)

type Client struct {
	baseURL    string
	keys       *KeyPool
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(baseURL string, keys *KeyPool, timeout time.Duration) *Client {
	transport := httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
	)

	return &Client{
		baseURL: baseURL,
		keys:    keys,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		now: time.Now,
	}
}

func (c *Client) Characters(ctx context.Context, query entity.CharacterQuery) (entity.CharacterPage, error) {
	params := url.Values{}
	if query.NameStartsWith != "" {
		params.Set("nameStartsWith", query.NameStartsWith)
	}

	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}

	var wrapper dataWrapper
	if err := c.get(ctx, charactersPath, params, &wrapper); err != nil {
		return entity.CharacterPage{}, err
	}

	return wrapper.Data.toDomain(), nil
}

func (c *Client) Character(ctx context.Context, id value.CharacterID) (entity.Character, error) {
	var wrapper dataWrapper
	if err := c.get(ctx, charactersPath+"/"+id.String(), url.Values{}, &wrapper); err != nil {
		return entity.Character{}, err
	}

	if len(wrapper.Data.Results) == 0 {
		return entity.Character{}, domain.NewError(errcodes.CharacterNotFound, "Character not found")
	}

	return wrapper.Data.Results[0].toDomain(), nil
}

// get signs and sends the request. A rejected or throttled key is rotated and
// the call retried, at most once per key in the pool.
func (c *Client) get(ctx context.Context, path string, params url.Values, dest any) error {
	var lastStatus int

	for range c.keys.Size() {
		key, index := c.keys.Acquire()

		status, body, err := c.do(ctx, path, c.sign(params, key), dest)
		if err != nil {
			return domain.WrapError(err, errcodes.MarvelUnavailable, "Marvel API is unavailable")
		}

		requestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()

		switch status {
		case http.StatusOK:
			return nil
		case http.StatusNotFound:
			return domain.NewError(errcodes.CharacterNotFound, "Character not found")
		case http.StatusUnauthorized, http.StatusTooManyRequests:
			lastStatus = status
			reason := reasonUnauthorized
			if status == http.StatusTooManyRequests {
				reason = reasonRateLimited
			}

			if c.keys.Rotate(index) {
				keyRotationsTotal.WithLabelValues(reason).Inc()
			}

			logger(ctx).Warn("marvel key rejected",
				slog.Int(logx.FieldKeyIndex, index),
				slog.Int(logx.FieldResponseStatus, status),
			)
		default:
			return domain.WrapError(fmt.Errorf("unexpected status %d: %s", status, body),
				errcodes.MarvelUnavailable, "Marvel API is unavailable")
		}
	}

	return domain.WrapError(fmt.Errorf("all %d keys rejected, last status %d", c.keys.Size(), lastStatus),
		errcodes.MarvelUnavailable, "Marvel API is unavailable")
}

func (c *Client) do(ctx context.Context, path string, params url.Values, dest any) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return 0, "", fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", fmt.Errorf("io.ReadAll: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, string(body), nil
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return 0, "", fmt.Errorf("json.Unmarshal: %w", err)
	}

	return resp.StatusCode, "", nil
}

// sign adds ts, apikey and hash = md5(ts + private + public).
func (c *Client) sign(params url.Values, key KeyPair) url.Values {
	signed := url.Values{}
	for k, v := range params {
		signed[k] = v
	}

	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	sum := md5.Sum([]byte(ts + key.Private + key.Public)) //nolint:gosec

	signed.Set("ts", ts)
	signed.Set("apikey", key.Public)
	signed.Set("hash", hex.EncodeToString(sum[:]))

	return signed
}
