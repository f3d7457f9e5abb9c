package gateways

import (
	"context"
	"strings"

	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const smsGatewayName = "sms"

type smsContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type smsMessageRequest struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Contents []smsContent `json:"contents"`
}

// SMSGateway sends text messages through the Zenvia messaging API.
type SMSGateway struct {
	client   *resty.Client
	from     string
	logger   *zap.Logger
	mockMode bool
}

var _ interfaces.ISMSGateway = (*SMSGateway)(nil)

func NewSMSGateway(cfg Config, from string, mockMode bool, logger *zap.Logger) (*SMSGateway, error) {
	if mockMode {
		logger.Info("[sms][gateway] mock mode enabled")
		return &SMSGateway{logger: logger, mockMode: true}, nil
	}
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil, ErrGatewayNotConfigured
	}
	client := newRestyClient(cfg).
		SetHeader("X-API-TOKEN", cfg.APIKey).
		SetError(&partnerError{})
	return &SMSGateway{client: client, from: from, logger: logger}, nil
}

func (g *SMSGateway) Send(ctx context.Context, phone, message string) error {
	to := NormalizePhone(phone)
	if to == "" {
		return failure.Permanent(smsGatewayName, "INVALID_PHONE", "telefone inválido")
	}
	if g.mockMode {
		g.logger.Info("[sms][gateway] mock send", zap.String("to", to), zap.Int("message_len", len(message)))
		return nil
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(smsMessageRequest{
			From:     g.from,
			To:       to,
			Contents: []smsContent{{Type: "text", Text: message}},
		}).
		Post("/v2/channels/sms/messages")
	if cerr := classify(smsGatewayName, resp, err); cerr != nil {
		g.logger.Warn("[sms][gateway] send failed", zap.String("to", to), zap.Error(cerr))
		return cerr
	}
	g.logger.Info("[sms][gateway] message sent", zap.String("to", to))
	return nil
}

// NormalizePhone keeps the digits of phone and prefixes the Brazilian country code.
// It returns "" when too few digits remain.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if len(digits) < 10 {
		return ""
	}
	if len(digits) <= 11 {
		digits = "55" + digits
	}
	return digits
}
