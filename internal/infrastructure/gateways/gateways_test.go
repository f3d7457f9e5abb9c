package gateways

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/domain/failure"
	"consig_origination/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T, handler http.HandlerFunc) Config {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return Config{BaseURL: srv.URL, APIKey: "key", Timeout: 2 * time.Second}
}

func TestBureauGateway_Query(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("ok answer", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/in100/consultas", r.URL.Path)
			assert.Equal(t, "key", r.Header.Get("X-API-KEY"))
			var body bureauQueryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "1234567890", body.BenefitNumber)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"resp-1","sequencia":7,"numero_beneficio":"1234567890","codigo_retorno":"00","valor_margem":"-10.50","valor_liquido":"2000"}`))
		})
		g, err := NewBureauGateway(cfg, false, log)
		require.NoError(t, err)

		res, err := g.Query(ctx, "1234567890")
		require.NoError(t, err)
		assert.Equal(t, "resp-1", res.ResponseID)
		assert.Equal(t, int64(7), res.Sequence)
		assert.Equal(t, entities.BureauStatusOK, res.Status)
		assert.True(t, res.HasNegativeMargin())
		assert.NotEmpty(t, res.RawPayload)
	})

	t.Run("no data is definitive negative", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"resp-2","sequencia":1,"numero_beneficio":"1","codigo_retorno":"BD"}`))
		})
		g, err := NewBureauGateway(cfg, false, log)
		require.NoError(t, err)

		res, err := g.Query(ctx, "1")
		require.NoError(t, err)
		assert.True(t, res.DefinitiveNegative())
	})

	t.Run("5xx is transient", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		g, err := NewBureauGateway(cfg, false, log)
		require.NoError(t, err)

		_, err = g.Query(ctx, "1")
		assert.True(t, errors.Is(err, failure.ErrTransientExternal))
	})

	t.Run("timeout is transient", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(300 * time.Millisecond)
		})
		cfg.Timeout = 50 * time.Millisecond
		g, err := NewBureauGateway(cfg, false, log)
		require.NoError(t, err)

		_, err = g.Query(ctx, "1")
		assert.True(t, errors.Is(err, failure.ErrTransientExternal))
	})

	t.Run("4xx is permanent", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"INVALID_BENEFIT","message":"benefício inválido"}`))
		})
		g, err := NewBureauGateway(cfg, false, log)
		require.NoError(t, err)

		_, err = g.Query(ctx, "1")
		assert.True(t, errors.Is(err, failure.ErrPermanentExternal))
		assert.Equal(t, "INVALID_BENEFIT", failure.CodeOf(err))
	})

	t.Run("missing base url", func(t *testing.T) {
		_, err := NewBureauGateway(Config{}, false, log)
		assert.ErrorIs(t, err, ErrGatewayNotConfigured)
	})

	t.Run("mock mode", func(t *testing.T) {
		g, err := NewBureauGateway(Config{}, true, log)
		require.NoError(t, err)
		res, err := g.Query(ctx, "99")
		require.NoError(t, err)
		assert.Equal(t, "99", res.BenefitNumber)
		assert.Equal(t, entities.BureauStatusOK, res.Status)
	})
}

func TestSignatureHubGateway_SubmitProposal(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()
	proposal := interfaces.ProposalSubmission{ContractToken: "tok-1", ProductType: entities.ProductPortability}

	t.Run("accepted", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/proposals", r.URL.Path)
			assert.Equal(t, "tok-1", r.Header.Get("Idempotency-Key"))
			assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"document_key":"doc-9","status":"accepted"}`))
		})
		g, err := NewSignatureHubGateway(cfg, false, log)
		require.NoError(t, err)

		res, err := g.SubmitProposal(ctx, proposal)
		require.NoError(t, err)
		assert.True(t, res.Accepted)
		assert.Equal(t, "doc-9", res.DocumentKey)
	})

	t.Run("422 becomes a rejection result", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"code":"CPF_BLOCKED","message":"cpf bloqueado"}`))
		})
		g, err := NewSignatureHubGateway(cfg, false, log)
		require.NoError(t, err)

		res, err := g.SubmitProposal(ctx, proposal)
		require.NoError(t, err)
		assert.False(t, res.Accepted)
		assert.Equal(t, "CPF_BLOCKED", res.RejectionCode)
	})

	t.Run("502 is transient", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		g, err := NewSignatureHubGateway(cfg, false, log)
		require.NoError(t, err)

		_, err = g.SubmitProposal(ctx, proposal)
		assert.True(t, errors.Is(err, failure.ErrTransientExternal))
	})
}

func TestSMSGateway_Send(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("posts zenvia message", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/channels/sms/messages", r.URL.Path)
			assert.Equal(t, "key", r.Header.Get("X-API-TOKEN"))
			var body smsMessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "5511987654321", body.To)
			assert.Equal(t, "banco", body.From)
			require.Len(t, body.Contents, 1)
			assert.Equal(t, "olá", body.Contents[0].Text)
			w.WriteHeader(http.StatusOK)
		})
		g, err := NewSMSGateway(cfg, "banco", false, log)
		require.NoError(t, err)
		require.NoError(t, g.Send(ctx, "(11) 98765-4321", "olá"))
	})

	t.Run("invalid phone", func(t *testing.T) {
		g, err := NewSMSGateway(Config{}, "", true, log)
		require.NoError(t, err)
		err = g.Send(ctx, "123", "x")
		assert.True(t, errors.Is(err, failure.ErrPermanentExternal))
	})
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"(11) 98765-4321":  "5511987654321",
		"+55 11 3333-4444": "551133334444",
		"011987654321":     "5511987654321",
		"12345":            "",
		"":                 "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizePhone(in))
		})
	}
}

func TestShortenerGateway_Shorten(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("returns short url", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"short_url":"https://s.io/abc"}`))
		})
		g, err := NewShortenerGateway(cfg, false, log)
		require.NoError(t, err)
		short, err := g.Shorten(ctx, "https://formalizacao.example/long")
		require.NoError(t, err)
		assert.Equal(t, "https://s.io/abc", short)
	})

	t.Run("empty body is transient", func(t *testing.T) {
		cfg := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		})
		g, err := NewShortenerGateway(cfg, false, log)
		require.NoError(t, err)
		_, err = g.Shorten(ctx, "https://x")
		assert.True(t, errors.Is(err, failure.ErrTransientExternal))
	})

	t.Run("mock mode echoes", func(t *testing.T) {
		g, err := NewShortenerGateway(Config{}, true, log)
		require.NoError(t, err)
		short, err := g.Shorten(ctx, "https://x")
		require.NoError(t, err)
		assert.Equal(t, "https://x", short)
	})
}
