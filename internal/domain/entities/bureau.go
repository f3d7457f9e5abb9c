package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BureauStatus is the normalized outcome of an IN100/benefit lookup.
type BureauStatus string

const (
	BureauStatusOK               BureauStatus = "ok"
	BureauStatusDataNotAvailable BureauStatus = "data_not_available"
	BureauStatusIneligible       BureauStatus = "ineligible"
	BureauStatusBlocked          BureauStatus = "blocked"
)

// BureauCodeNoData is the Dataprev return code for "no data available". It is a
// definitive negative: the lookup is never retried after it.
const BureauCodeNoData = "BD"

// BureauResult is the benefit data returned by the bureau (DadosIn100).
type BureauResult struct {
	ResponseID    string          `json:"response_id"`
	Sequence      int64           `json:"sequence"`
	BenefitNumber string          `json:"numero_beneficio"`
	Status        BureauStatus    `json:"status"`
	ReturnCode    string          `json:"codigo_retorno,omitempty"`
	MarginValue   decimal.Decimal `json:"valor_margem"`
	LiquidValue   decimal.Decimal `json:"valor_liquido"`
	BenefitKind   string          `json:"especie,omitempty"`
	RawPayload    json.RawMessage `json:"raw_payload,omitempty"`
	ReceivedAt    time.Time       `json:"received_at"`
}

// DefinitiveNegative reports whether the answer closes the lookup for good.
func (r BureauResult) DefinitiveNegative() bool {
	return r.Status == BureauStatusDataNotAvailable || r.ReturnCode == BureauCodeNoData
}

func (r BureauResult) HasNegativeMargin() bool {
	return r.MarginValue.IsNegative()
}
