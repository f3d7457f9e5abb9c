package entities

import (
	"encoding/json"
	"time"
)

// RetryRule is the teimosinha rule configured for a product: how often and how many
// times a failed margin lookup is re-attempted. RetryCodes lists the bureau return codes
// that are worth retrying; timeouts and 5xx answers are always retryable.
type RetryRule struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	IntervalMinutes int      `json:"interval_minutes" yaml:"interval_minutes"`
	MaxAttempts     int      `json:"max_attempts" yaml:"max_attempts"`
	RetryCodes      []string `json:"retry_codes" yaml:"retry_codes"`
}

func (r RetryRule) Interval() time.Duration {
	return time.Duration(r.IntervalMinutes) * time.Minute
}

func (r RetryRule) RetriesCode(code string) bool {
	for _, c := range r.RetryCodes {
		if c == code {
			return true
		}
	}
	return false
}

// RetryAttempt is one teimosinha try (TentativaTeimosinhaINSS).
//
// A row is written as pending (RespondidaEm == nil) with the time it becomes due in
// ProximaTentativaEm. Processing it fills RespondidaEm and Sucesso. At most one pending
// row exists per contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_token-index): contract_token
//   - GSI2 (pending-index, sparse): pending + proxima_tentativa_em
type RetryAttempt struct {
	ID                 string          `json:"id"`
	ContractToken      string          `json:"contract_token"`
	Attempt            int             `json:"attempt"`
	SolicitadaEm       time.Time       `json:"solicitada_em"`
	ProximaTentativaEm time.Time       `json:"proxima_tentativa_em"`
	RespondidaEm       *time.Time      `json:"respondida_em,omitempty"`
	Sucesso            bool            `json:"sucesso"`
	ReturnCode         string          `json:"codigo_retorno,omitempty"`
	Outcome            RetryOutcome    `json:"outcome,omitempty"`
	RetornoDataprev    json.RawMessage `json:"retorno_dataprev,omitempty"`
}

func (a RetryAttempt) Pending() bool {
	return a.RespondidaEm == nil
}

type RetryOutcome string

const (
	RetryOutcomeSuccess            RetryOutcome = "success"
	RetryOutcomeRescheduled        RetryOutcome = "rescheduled"
	RetryOutcomeDefinitiveNegative RetryOutcome = "definitive_negative"
	RetryOutcomeRejected           RetryOutcome = "rejected"
	RetryOutcomeExhausted          RetryOutcome = "exhausted"
	RetryOutcomeSuperseded         RetryOutcome = "superseded"
)
