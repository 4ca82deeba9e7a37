// Package polarity calls an external sentiment-polarity service. Any
// failure degrades the affected review to Neutral instead of failing the
// batch; the service is an optional upgrade over the local lexicon.
package polarity

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/spoo-437/voiceofdine-ai/internal/adapters/observability"
	"github.com/spoo-437/voiceofdine-ai/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Classify implements the domain Classifier port. Failures of the remote
// service never propagate: the review degrades to Neutral.
func (c *Client) Classify(ctx context.Context, text string) domain.Sentiment {
	score, err := c.Score(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("polarity service failed, degrading to Neutral")
		return domain.Neutral
	}
	return domain.SentimentFromPolarity(score)
}

var (
	ErrNotFound     = errors.New("polarity: not found")
	ErrUnauthorized = errors.New("polarity: unauthorized")
	ErrForbidden    = errors.New("polarity: forbidden")
)

// Score asks the remote service for the continuous polarity of text, with
// client-side rate limiting and retries on 429 and transient 5xx,
// honoring Retry-After when provided.
func (c *Client) Score(ctx context.Context, text string) (float64, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, err
	}

	payload, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	if err != nil {
		return 0, err
	}
	url := c.base + "/v1/polarity"

	var lastErr error
	for i := 0; i < 4; i++ {
		// fresh request each attempt; the body reader is consumed
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return 0, err
		}
		if c.key != "" {
			req.Header.Set("X-API-Key", c.key)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "voiceofdine/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			return 0, lastErr
		}
		observability.ObserveExternal("polarity", "score", resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			var out struct {
				Polarity float64 `json:"polarity"`
			}
			err := json.NewDecoder(resp.Body).Decode(&out)
			resp.Body.Close()
			return out.Polarity, err

		case http.StatusNotFound:
			resp.Body.Close()
			return 0, ErrNotFound

		case http.StatusUnauthorized:
			resp.Body.Close()
			return 0, ErrUnauthorized

		case http.StatusForbidden:
			resp.Body.Close()
			return 0, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			return 0, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return 0, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return 0, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with up to
// +50% jitter from crypto/rand so concurrent workers spread out.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
