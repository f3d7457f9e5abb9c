package entities

import "time"

type AttachmentKind string

const (
	AttachmentCCB             AttachmentKind = "ccb"
	AttachmentDocumentFront   AttachmentKind = "rg_frente"
	AttachmentDocumentBack    AttachmentKind = "rg_verso"
	AttachmentCNH             AttachmentKind = "cnh"
	AttachmentSelfie          AttachmentKind = "selfie"
	AttachmentProofOfAddress  AttachmentKind = "comprovante_endereco"
	AttachmentPayslip         AttachmentKind = "contracheque"
	AttachmentAdditional      AttachmentKind = "adicional"
	AttachmentTermsSignatures AttachmentKind = "termos_e_assinaturas"
	AttachmentRogadoDocument  AttachmentKind = "documento_rogado"
	AttachmentWitnessDocument AttachmentKind = "documento_testemunha"
)

var attachmentKinds = map[AttachmentKind]bool{
	AttachmentCCB: true, AttachmentDocumentFront: true, AttachmentDocumentBack: true,
	AttachmentCNH: true, AttachmentSelfie: true, AttachmentProofOfAddress: true,
	AttachmentPayslip: true, AttachmentAdditional: true, AttachmentTermsSignatures: true,
	AttachmentRogadoDocument: true, AttachmentWitnessDocument: true,
}

func (k AttachmentKind) Valid() bool {
	return attachmentKinds[k]
}

// Attachment is a contract document stored in the blob storage (AnexoContrato).
//
// Storage model (DynamoDB):
//   - PK: contract_token
//   - SK: object_key
type Attachment struct {
	ContractToken string         `json:"contract_token"`
	ObjectKey     string         `json:"object_key"`
	Kind          AttachmentKind `json:"kind"`
	FileName      string         `json:"file_name"`
	ContentType   string         `json:"content_type"`
	UploadedBy    string         `json:"uploaded_by"`
	UploadedAt    time.Time      `json:"uploaded_at"`
	URL           string         `json:"url,omitempty"`
}
