package repository

import (
	"time"

	"consig_origination/internal/domain/entities"
)

type witnessItem struct {
	Name  string `dynamodbav:"name"`
	CPF   string `dynamodbav:"cpf"`
	Phone string `dynamodbav:"phone,omitempty"`
}

type contractItem struct {
	Token                  string        `dynamodbav:"token"`
	ClientID               string        `dynamodbav:"client_id"`
	ClientCPF              string        `dynamodbav:"client_cpf"`
	ClientName             string        `dynamodbav:"client_name,omitempty"`
	ClientPhone            string        `dynamodbav:"client_phone,omitempty"`
	ClientEscolaridade     int           `dynamodbav:"client_escolaridade"`
	ProductType            int           `dynamodbav:"product_type"`
	Kind                   int           `dynamodbav:"kind"`
	CreatedBy              string        `dynamodbav:"created_by"`
	CorbanID               string        `dynamodbav:"corban_id,omitempty"`
	BenefitNumber          string        `dynamodbav:"benefit_number,omitempty"`
	Enrollment             string        `dynamodbav:"enrollment,omitempty"`
	MarginType             int           `dynamodbav:"margin_type"`
	EnvelopeToken          string        `dynamodbav:"envelope_token,omitempty"`
	Status                 string        `dynamodbav:"status"`
	IsMainProposal         bool          `dynamodbav:"is_main_proposal"`
	RogadoID               string        `dynamodbav:"rogado_id,omitempty"`
	Witnesses              []witnessItem `dynamodbav:"witnesses,omitempty"`
	FormalizationURL       string        `dynamodbav:"formalization_url,omitempty"`
	RogadoFormalizationURL string        `dynamodbav:"rogado_formalization_url,omitempty"`
	LinkCreatedAt          string        `dynamodbav:"link_created_at,omitempty"`
	CETYear                string        `dynamodbav:"cet_year"`
	MonthlyRate            string        `dynamodbav:"monthly_rate"`
	RequestedValue         string        `dynamodbav:"requested_value"`
	PendingRetryID         string        `dynamodbav:"pending_retry_id,omitempty"`
	BureauSequence         int64         `dynamodbav:"bureau_sequence"`
	Version                int64         `dynamodbav:"version"`
	CreatedAt              string        `dynamodbav:"created_at"`
	UpdatedAt              string        `dynamodbav:"updated_at"`
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		Token:                  c.Token,
		ClientID:               c.Client.ID,
		ClientCPF:              c.Client.CPF,
		ClientName:             c.Client.Name,
		ClientPhone:            c.Client.Phone,
		ClientEscolaridade:     int(c.Client.Escolaridade),
		ProductType:            int(c.ProductType),
		Kind:                   int(c.Kind),
		CreatedBy:              c.CreatedBy,
		CorbanID:               c.CorbanID,
		BenefitNumber:          c.BenefitNumber,
		Enrollment:             c.Enrollment,
		MarginType:             c.MarginType,
		EnvelopeToken:          c.EnvelopeToken,
		Status:                 string(c.Status),
		IsMainProposal:         c.IsMainProposal,
		RogadoID:               c.RogadoID,
		FormalizationURL:       c.FormalizationURL,
		RogadoFormalizationURL: c.RogadoFormalizationURL,
		LinkCreatedAt:          formatTimePtr(c.LinkCreatedAt),
		CETYear:                c.CETYear.String(),
		MonthlyRate:            c.MonthlyRate.String(),
		RequestedValue:         c.RequestedValue.String(),
		PendingRetryID:         c.PendingRetryID,
		BureauSequence:         c.BureauSequence,
		Version:                c.Version,
		CreatedAt:              formatTime(c.CreatedAt),
		UpdatedAt:              formatTime(c.UpdatedAt),
	}
	for _, w := range c.Witnesses {
		it.Witnesses = append(it.Witnesses, witnessItem{Name: w.Name, CPF: w.CPF, Phone: w.Phone})
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		Token: it.Token,
		Client: entities.Client{
			ID:           it.ClientID,
			CPF:          it.ClientCPF,
			Name:         it.ClientName,
			Phone:        it.ClientPhone,
			Escolaridade: entities.Escolaridade(it.ClientEscolaridade),
		},
		ProductType:            entities.ProductType(it.ProductType),
		Kind:                   entities.ContractKind(it.Kind),
		CreatedBy:              it.CreatedBy,
		CorbanID:               it.CorbanID,
		BenefitNumber:          it.BenefitNumber,
		Enrollment:             it.Enrollment,
		MarginType:             it.MarginType,
		EnvelopeToken:          it.EnvelopeToken,
		Status:                 entities.StatusName(it.Status),
		IsMainProposal:         it.IsMainProposal,
		RogadoID:               it.RogadoID,
		FormalizationURL:       it.FormalizationURL,
		RogadoFormalizationURL: it.RogadoFormalizationURL,
		LinkCreatedAt:          parseTimePtr(it.LinkCreatedAt),
		CETYear:                parseDecimal(it.CETYear),
		MonthlyRate:            parseDecimal(it.MonthlyRate),
		RequestedValue:         parseDecimal(it.RequestedValue),
		PendingRetryID:         it.PendingRetryID,
		BureauSequence:         it.BureauSequence,
		Version:                it.Version,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
	for _, w := range it.Witnesses {
		c.Witnesses = append(c.Witnesses, entities.Witness{Name: w.Name, CPF: w.CPF, Phone: w.Phone})
	}
	return c
}

type detailItem struct {
	ContractToken  string `dynamodbav:"contract_token"`
	Kind           string `dynamodbav:"kind"`
	ID             string `dynamodbav:"id"`
	Status         string `dynamodbav:"status"`
	Bank           string `dynamodbav:"bank,omitempty"`
	ContractNumber string `dynamodbav:"contract_number,omitempty"`
	Term           int    `dynamodbav:"term"`
	Rate           string `dynamodbav:"rate"`
	Installment    string `dynamodbav:"installment"`
	NewInstallment string `dynamodbav:"new_installment"`
	Balance        string `dynamodbav:"balance"`
	OperationValue string `dynamodbav:"operation_value"`
	ReleasedMargin string `dynamodbav:"released_margin"`
	Change         string `dynamodbav:"change"`
	ContractValue  string `dynamodbav:"contract_value"`
	IN100Returned  bool   `dynamodbav:"in100_returned"`
	MarginValue    string `dynamodbav:"margin_value"`
	LiquidValue    string `dynamodbav:"liquid_value"`
	HubDocumentKey string `dynamodbav:"hub_document_key,omitempty"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

func toDetailItem(d entities.ProductDetail) detailItem {
	return detailItem{
		ContractToken:  d.ContractToken,
		Kind:           string(d.Kind),
		ID:             d.ID,
		Status:         string(d.Status),
		Bank:           d.Bank,
		ContractNumber: d.ContractNumber,
		Term:           d.Term,
		Rate:           d.Rate.String(),
		Installment:    d.Installment.String(),
		NewInstallment: d.NewInstallment.String(),
		Balance:        d.Balance.String(),
		OperationValue: d.OperationValue.String(),
		ReleasedMargin: d.ReleasedMargin.String(),
		Change:         d.Change.String(),
		ContractValue:  d.ContractValue.String(),
		IN100Returned:  d.IN100Returned,
		MarginValue:    d.MarginValue.String(),
		LiquidValue:    d.LiquidValue.String(),
		HubDocumentKey: d.HubDocumentKey,
		UpdatedAt:      formatTime(d.UpdatedAt),
	}
}

func fromDetailItem(it detailItem) entities.ProductDetail {
	return entities.ProductDetail{
		ID:             it.ID,
		ContractToken:  it.ContractToken,
		Kind:           entities.DetailKind(it.Kind),
		Status:         entities.StatusName(it.Status),
		Bank:           it.Bank,
		ContractNumber: it.ContractNumber,
		Term:           it.Term,
		Rate:           parseDecimal(it.Rate),
		Installment:    parseDecimal(it.Installment),
		NewInstallment: parseDecimal(it.NewInstallment),
		Balance:        parseDecimal(it.Balance),
		OperationValue: parseDecimal(it.OperationValue),
		ReleasedMargin: parseDecimal(it.ReleasedMargin),
		Change:         parseDecimal(it.Change),
		ContractValue:  parseDecimal(it.ContractValue),
		IN100Returned:  it.IN100Returned,
		MarginValue:    parseDecimal(it.MarginValue),
		LiquidValue:    parseDecimal(it.LiquidValue),
		HubDocumentKey: it.HubDocumentKey,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

type historyItem struct {
	ContractToken   string `dynamodbav:"contract_token"`
	Seq             int64  `dynamodbav:"seq"`
	Name            string `dynamodbav:"nome"`
	CreatedBy       string `dynamodbav:"created_by"`
	Description     string `dynamodbav:"descricao_mesa,omitempty"`
	DataFaseInicial string `dynamodbav:"data_fase_inicial"`
	DataFaseFinal   string `dynamodbav:"data_fase_final,omitempty"`
}

func toHistoryItem(e entities.StatusHistoryEntry) historyItem {
	return historyItem{
		ContractToken:   e.ContractToken,
		Seq:             e.Seq,
		Name:            string(e.Name),
		CreatedBy:       e.CreatedBy,
		Description:     e.Description,
		DataFaseInicial: formatTime(e.DataFaseInicial),
		DataFaseFinal:   formatTimePtr(e.DataFaseFinal),
	}
}

func fromHistoryItem(it historyItem) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		ContractToken:   it.ContractToken,
		Seq:             it.Seq,
		Name:            entities.StatusName(it.Name),
		CreatedBy:       it.CreatedBy,
		Description:     it.Description,
		DataFaseInicial: parseTime(it.DataFaseInicial),
		DataFaseFinal:   parseTimePtr(it.DataFaseFinal),
	}
}

type retryAttemptItem struct {
	ID                 string `dynamodbav:"id"`
	ContractToken      string `dynamodbav:"contract_token"`
	Attempt            int    `dynamodbav:"attempt"`
	SolicitadaEm       string `dynamodbav:"solicitada_em"`
	ProximaTentativaEm string `dynamodbav:"proxima_tentativa_em"`
	RespondidaEm       string `dynamodbav:"respondida_em,omitempty"`
	Pending            string `dynamodbav:"pending,omitempty"`
	Sucesso            bool   `dynamodbav:"sucesso"`
	ReturnCode         string `dynamodbav:"codigo_retorno,omitempty"`
	Outcome            string `dynamodbav:"outcome,omitempty"`
	RetornoDataprev    string `dynamodbav:"retorno_dataprev,omitempty"`
}

// pendingMarker is the partition value of the sparse pending index. Answered rows drop
// the attribute and leave the index.
const pendingMarker = "1"

func toRetryAttemptItem(a entities.RetryAttempt) retryAttemptItem {
	it := retryAttemptItem{
		ID:                 a.ID,
		ContractToken:      a.ContractToken,
		Attempt:            a.Attempt,
		SolicitadaEm:       formatTime(a.SolicitadaEm),
		ProximaTentativaEm: formatTime(a.ProximaTentativaEm),
		RespondidaEm:       formatTimePtr(a.RespondidaEm),
		Sucesso:            a.Sucesso,
		ReturnCode:         a.ReturnCode,
		Outcome:            string(a.Outcome),
		RetornoDataprev:    string(a.RetornoDataprev),
	}
	if a.Pending() {
		it.Pending = pendingMarker
	}
	return it
}

func fromRetryAttemptItem(it retryAttemptItem) entities.RetryAttempt {
	a := entities.RetryAttempt{
		ID:                 it.ID,
		ContractToken:      it.ContractToken,
		Attempt:            it.Attempt,
		SolicitadaEm:       parseTime(it.SolicitadaEm),
		ProximaTentativaEm: parseTime(it.ProximaTentativaEm),
		RespondidaEm:       parseTimePtr(it.RespondidaEm),
		Sucesso:            it.Sucesso,
		ReturnCode:         it.ReturnCode,
		Outcome:            entities.RetryOutcome(it.Outcome),
	}
	if it.RetornoDataprev != "" {
		a.RetornoDataprev = []byte(it.RetornoDataprev)
	}
	return a
}

type bureauSnapshotItem struct {
	BenefitNumber string `dynamodbav:"benefit_number"`
	ResponseID    string `dynamodbav:"response_id"`
	Sequence      int64  `dynamodbav:"sequence"`
	Status        string `dynamodbav:"status"`
	ReturnCode    string `dynamodbav:"codigo_retorno,omitempty"`
	MarginValue   string `dynamodbav:"valor_margem"`
	LiquidValue   string `dynamodbav:"valor_liquido"`
	BenefitKind   string `dynamodbav:"especie,omitempty"`
	RawPayload    string `dynamodbav:"raw_payload,omitempty"`
	ReceivedAt    string `dynamodbav:"received_at"`
}

func toBureauSnapshotItem(r entities.BureauResult) bureauSnapshotItem {
	return bureauSnapshotItem{
		BenefitNumber: r.BenefitNumber,
		ResponseID:    r.ResponseID,
		Sequence:      r.Sequence,
		Status:        string(r.Status),
		ReturnCode:    r.ReturnCode,
		MarginValue:   r.MarginValue.String(),
		LiquidValue:   r.LiquidValue.String(),
		BenefitKind:   r.BenefitKind,
		RawPayload:    string(r.RawPayload),
		ReceivedAt:    formatTime(r.ReceivedAt),
	}
}

func fromBureauSnapshotItem(it bureauSnapshotItem) entities.BureauResult {
	r := entities.BureauResult{
		ResponseID:    it.ResponseID,
		Sequence:      it.Sequence,
		BenefitNumber: it.BenefitNumber,
		Status:        entities.BureauStatus(it.Status),
		ReturnCode:    it.ReturnCode,
		MarginValue:   parseDecimal(it.MarginValue),
		LiquidValue:   parseDecimal(it.LiquidValue),
		BenefitKind:   it.BenefitKind,
		ReceivedAt:    parseTime(it.ReceivedAt),
	}
	if it.RawPayload != "" {
		r.RawPayload = []byte(it.RawPayload)
	}
	return r
}

type appliedEventItem struct {
	Key           string `dynamodbav:"key"`
	ContractToken string `dynamodbav:"contract_token"`
	AppliedAt     string `dynamodbav:"applied_at"`
}

type clientContractsItem struct {
	ClientID      string   `dynamodbav:"client_id"`
	Tokens        []string `dynamodbav:"tokens,stringset"`
	ContractCount int      `dynamodbav:"contract_count"`
}

func newAppliedEventItem(key, token string, at time.Time) appliedEventItem {
	return appliedEventItem{Key: key, ContractToken: token, AppliedAt: formatTime(at)}
}
