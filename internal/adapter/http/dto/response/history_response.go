package response

import (
	"time"

	"consig_origination/internal/domain/entities"
)

type StatusHistoryResponse struct {
	Seq             int64      `json:"seq"`
	Name            string     `json:"nome"`
	Phase           string     `json:"phase"`
	CreatedBy       string     `json:"created_by"`
	Description     string     `json:"descricao_mesa,omitempty"`
	DataFaseInicial time.Time  `json:"data_fase_inicial"`
	DataFaseFinal   *time.Time `json:"data_fase_final,omitempty"`
}

func FromStatusHistory(list []entities.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, StatusHistoryResponse{
			Seq:             e.Seq,
			Name:            string(e.Name),
			Phase:           string(e.Name.Phase()),
			CreatedBy:       e.CreatedBy,
			Description:     e.Description,
			DataFaseInicial: e.DataFaseInicial,
			DataFaseFinal:   e.DataFaseFinal,
		})
	}
	return out
}

type RetryAttemptResponse struct {
	ID                 string     `json:"id"`
	Attempt            int        `json:"tentativa"`
	SolicitadaEm       time.Time  `json:"solicitada_em"`
	ProximaTentativaEm time.Time  `json:"proxima_tentativa_em"`
	RespondidaEm       *time.Time `json:"respondida_em,omitempty"`
	Pending            bool       `json:"pendente"`
	Sucesso            bool       `json:"sucesso"`
	ReturnCode         string     `json:"codigo_retorno,omitempty"`
	Outcome            string     `json:"resultado,omitempty"`
	RetornoDataprev    string     `json:"retorno_dataprev,omitempty"`
}

func FromRetryAttempt(a entities.RetryAttempt) RetryAttemptResponse {
	return RetryAttemptResponse{
		ID:                 a.ID,
		Attempt:            a.Attempt,
		SolicitadaEm:       a.SolicitadaEm,
		ProximaTentativaEm: a.ProximaTentativaEm,
		RespondidaEm:       a.RespondidaEm,
		Pending:            a.Pending(),
		Sucesso:            a.Sucesso,
		ReturnCode:         a.ReturnCode,
		Outcome:            string(a.Outcome),
		RetornoDataprev:    string(a.RetornoDataprev),
	}
}

type RetryAttemptPageResponse struct {
	Items   []RetryAttemptResponse `json:"items"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
	Total   int                    `json:"total"`
}

func FromRetryAttemptPage(list []entities.RetryAttempt, page, perPage, total int) RetryAttemptPageResponse {
	items := make([]RetryAttemptResponse, 0, len(list))
	for _, a := range list {
		items = append(items, FromRetryAttempt(a))
	}
	return RetryAttemptPageResponse{Items: items, Page: page, PerPage: perPage, Total: total}
}

type AttachmentResponse struct {
	ObjectKey   string    `json:"object_key"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
	URL         string    `json:"url,omitempty"`
}

func FromAttachment(a entities.Attachment) AttachmentResponse {
	return AttachmentResponse{
		ObjectKey:   a.ObjectKey,
		Kind:        string(a.Kind),
		FileName:    a.FileName,
		ContentType: a.ContentType,
		UploadedBy:  a.UploadedBy,
		UploadedAt:  a.UploadedAt,
		URL:         a.URL,
	}
}

func FromAttachments(list []entities.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAttachment(a))
	}
	return out
}
