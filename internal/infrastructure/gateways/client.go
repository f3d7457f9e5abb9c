// Package gateways holds the HTTP clients of the partner APIs: the benefit bureau, the
// signature hub, the SMS provider and the URL shortener. Every client classifies its
// failures into the failure taxonomy so the orchestrator can tell retryable errors from
// rejections.
package gateways

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"consig_origination/internal/domain/failure"

	"github.com/go-resty/resty/v2"
)

// Config is the connection data of one partner API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int
}

var ErrGatewayNotConfigured = errors.New("gateway not configured")

func newRestyClient(cfg Config) *resty.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// partnerError is the error body the partners answer with.
type partnerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classify turns a resty outcome into nil or a *failure.Error. Network errors,
// timeouts, 429 and 5xx are transient; every other non 2xx answer is permanent.
func classify(gateway string, resp *resty.Response, err error) error {
	if err != nil {
		return failure.Transient(gateway, err)
	}
	if resp == nil {
		return failure.Transient(gateway, errors.New("empty response"))
	}
	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusTooManyRequests || status >= 500 || status == http.StatusRequestTimeout:
		return failure.Transient(gateway, fmt.Errorf("status %d", status))
	}
	code, reason := "", strings.TrimSpace(resp.String())
	if pe, ok := resp.Error().(*partnerError); ok && pe != nil {
		code = pe.Code
		if pe.Message != "" {
			reason = pe.Message
		}
	}
	if reason == "" {
		reason = fmt.Sprintf("status %d", status)
	}
	return failure.Permanent(gateway, code, reason)
}
