package response

import (
	"time"

	"consig_origination/internal/domain/entities"
	"consig_origination/internal/usecase"
)

type ContractResponse struct {
	Token                  string             `json:"token"`
	Client                 entities.Client    `json:"client"`
	ProductType            int                `json:"product_type"`
	ProductName            string             `json:"product_name"`
	Kind                   int                `json:"kind"`
	CreatedBy              string             `json:"created_by"`
	CorbanID               string             `json:"corban_id,omitempty"`
	BenefitNumber          string             `json:"numero_beneficio,omitempty"`
	Enrollment             string             `json:"matricula,omitempty"`
	Status                 string             `json:"status"`
	Phase                  string             `json:"phase"`
	IsMainProposal         bool               `json:"is_main_proposal"`
	RogadoID               string             `json:"rogado_id,omitempty"`
	Witnesses              []entities.Witness `json:"testemunhas,omitempty"`
	FormalizationURL       string             `json:"formalization_url,omitempty"`
	RogadoFormalizationURL string             `json:"rogado_formalization_url,omitempty"`
	LinkCreatedAt          *time.Time         `json:"link_created_at,omitempty"`
	CETYear                string             `json:"cet_ano"`
	MonthlyRate            string             `json:"taxa_efetiva_mes"`
	RequestedValue         string             `json:"valor_solicitado"`
	PendingRetryID         string             `json:"pending_retry_id,omitempty"`
	Version                int64              `json:"version"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		Token:                  c.Token,
		Client:                 c.Client,
		ProductType:            int(c.ProductType),
		ProductName:            c.ProductType.String(),
		Kind:                   int(c.Kind),
		CreatedBy:              c.CreatedBy,
		CorbanID:               c.CorbanID,
		BenefitNumber:          c.BenefitNumber,
		Enrollment:             c.Enrollment,
		Status:                 string(c.Status),
		Phase:                  string(c.Phase()),
		IsMainProposal:         c.IsMainProposal,
		RogadoID:               c.RogadoID,
		Witnesses:              c.Witnesses,
		FormalizationURL:       c.FormalizationURL,
		RogadoFormalizationURL: c.RogadoFormalizationURL,
		LinkCreatedAt:          c.LinkCreatedAt,
		CETYear:                c.CETYear.String(),
		MonthlyRate:            c.MonthlyRate.String(),
		RequestedValue:         c.RequestedValue.String(),
		PendingRetryID:         c.PendingRetryID,
		Version:                c.Version,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}

func FromContracts(list []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromContract(c))
	}
	return out
}

type FormalizationLinkResponse struct {
	Token     string `json:"token"`
	Status    string `json:"status"`
	URL       string `json:"url"`
	RogadoURL string `json:"rogado_url,omitempty"`
}

func FromFormalizationLink(l usecase.FormalizationLink) FormalizationLinkResponse {
	return FormalizationLinkResponse{
		Token:     l.Contract.Token,
		Status:    string(l.Contract.Status),
		URL:       l.URL,
		RogadoURL: l.RogadoURL,
	}
}

type BatchResponse struct {
	Contracts      []ContractResponse `json:"contracts"`
	PortabilityIDs []string           `json:"portabilidade_ids"`
	RefinancingIDs []string           `json:"refinanciamento_ids"`
}

func FromBatch(r usecase.BatchResult) BatchResponse {
	res := BatchResponse{
		Contracts:      FromContracts(r.Contracts),
		PortabilityIDs: r.PortabilityIDs,
		RefinancingIDs: r.RefinancingIDs,
	}
	if res.PortabilityIDs == nil {
		res.PortabilityIDs = []string{}
	}
	if res.RefinancingIDs == nil {
		res.RefinancingIDs = []string{}
	}
	return res
}

type DetailResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Status         string    `json:"status"`
	Bank           string    `json:"banco,omitempty"`
	ContractNumber string    `json:"numero_contrato,omitempty"`
	Term           int       `json:"prazo,omitempty"`
	Rate           string    `json:"taxa"`
	Installment    string    `json:"parcela"`
	NewInstallment string    `json:"nova_parcela"`
	Balance        string    `json:"saldo_devedor"`
	OperationValue string    `json:"valor_operacao"`
	ReleasedMargin string    `json:"margem_liberada"`
	Change         string    `json:"troco"`
	ContractValue  string    `json:"vr_contrato"`
	IN100Returned  bool      `json:"in100_retornado"`
	MarginValue    string    `json:"valor_margem"`
	LiquidValue    string    `json:"valor_liquido"`
	HubDocumentKey string    `json:"hub_document_key,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromDetails(list []entities.ProductDetail) []DetailResponse {
	out := make([]DetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, DetailResponse{
			ID:             d.ID,
			Kind:           string(d.Kind),
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
			UpdatedAt:      d.UpdatedAt,
		})
	}
	return out
}
