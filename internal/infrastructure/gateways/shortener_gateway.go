package gateways

import (
	"context"
	"strings"

	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const shortenerGatewayName = "url shortener"

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"short_url"`
}

type ShortenerGateway struct {
	client   *resty.Client
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.IURLShortener = (*ShortenerGateway)(nil)

func NewShortenerGateway(cfg Config, mockMode bool, logger *zap.Logger) (*ShortenerGateway, error) {
	if mockMode {
		logger.Info("[shortener][gateway] mock mode enabled")
		return &ShortenerGateway{logger: logger, mockMode: true}, nil
	}
	if cfg.BaseURL == "" {
		return nil, ErrGatewayNotConfigured
	}
	client := newRestyClient(cfg).
		SetHeader("X-API-KEY", cfg.APIKey).
		SetError(&partnerError{})
	return &ShortenerGateway{client: client, logger: logger}, nil
}

func (g *ShortenerGateway) Shorten(ctx context.Context, longURL string) (string, error) {
	if g.mockMode {
		return longURL, nil
	}

	var out shortenResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(shortenRequest{URL: longURL}).
		SetResult(&out).
		Post("/shorten")
	if cerr := classify(shortenerGatewayName, resp, err); cerr != nil {
		g.logger.Warn("[shortener][gateway] shorten failed", zap.Error(cerr))
		return "", cerr
	}
	if strings.TrimSpace(out.ShortURL) == "" {
		return "", failure.Transient(shortenerGatewayName, errInvalidBody(resp))
	}
	return out.ShortURL, nil
}
