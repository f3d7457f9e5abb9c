package usecase

import (
	"consig_origination/internal/domain/failure"
)

// Validation: the request itself is wrong.
var (
	ErrInvalidToken         = failure.New(failure.ErrValidation, "INVALID_TOKEN", "token do contrato é obrigatório")
	ErrInvalidActor         = failure.New(failure.ErrValidation, "INVALID_ACTOR", "usuário responsável é obrigatório")
	ErrInvalidClient        = failure.New(failure.ErrValidation, "INVALID_CLIENT", "cliente é obrigatório")
	ErrInvalidProduct       = failure.New(failure.ErrValidation, "INVALID_PRODUCT", "tipo de produto inválido")
	ErrInvalidBenefit       = failure.New(failure.ErrValidation, "INVALID_BENEFIT", "número do benefício é obrigatório")
	ErrInvalidEnrollment    = failure.New(failure.ErrValidation, "INVALID_ENROLLMENT", "matrícula é obrigatória para produtos de cartão")
	ErrInvalidBatch         = failure.New(failure.ErrValidation, "INVALID_BATCH", "lote de propostas inválido")
	ErrInvalidRejection     = failure.New(failure.ErrValidation, "INVALID_REJECTION", "status de reprovação inválido")
	ErrInvalidBureauReturn  = failure.New(failure.ErrValidation, "INVALID_BUREAU_RETURN", "retorno do bureau inválido")
	ErrInvalidAttachment    = failure.New(failure.ErrValidation, "INVALID_ATTACHMENT", "anexo inválido")
	ErrMissingPhone         = failure.New(failure.ErrValidation, "MISSING_PHONE", "telefone do cliente não informado")
	ErrMissingWitness       = failure.New(failure.ErrValidation, "MISSING_WITNESS", "cliente analfabeto exige rogado e testemunhas")
	ErrParametersNotFound   = failure.New(failure.ErrValidation, "PARAMETERS_NOT_FOUND", "parâmetros de back office do produto não encontrados")
	ErrNegativeRefinChange  = failure.New(failure.ErrValidation, "NEGATIVE_CHANGE", "o troco do refinanciamento não pode ser negativo")
	ErrMinimumValue         = failure.New(failure.ErrValidation, "MINIMUM_VALUE", "valor abaixo do mínimo do produto")
	ErrFormalizationPending = failure.New(failure.ErrValidation, "FORMALIZATION_PENDING", "link de formalização ainda não gerado")
)

// Eligibility: the request is well formed but a business rule refuses it.
var (
	ErrProductInactive             = failure.New(failure.ErrEligibility, "PRODUCT_INACTIVE", "produto inativo")
	ErrContractLimitExceeded       = failure.New(failure.ErrEligibility, "CONTRACT_LIMIT_EXCEEDED", "limite de contratos ativos excedido")
	ErrDuplicateActiveContract     = failure.New(failure.ErrEligibility, "DUPLICATE_ACTIVE_CONTRACT", "cliente já possui contrato ativo para essa matrícula")
	ErrNegativeMarginMultiProposal = failure.New(failure.ErrEligibility, "NEGATIVE_MARGIN_MULTI_PROPOSAL", "Você só pode realizar um contrato com a margem negativa")
)

// Consistency: the state moved under the caller.
var (
	ErrIllegalTransition      = failure.New(failure.ErrConsistency, "ILLEGAL_TRANSITION", "transição de status não permitida")
	ErrStaleCallback          = failure.New(failure.ErrConsistency, "STALE_CALLBACK", "retorno do bureau mais antigo que o último aplicado")
	ErrConcurrentModification = failure.New(failure.ErrConsistency, "CONCURRENT_MODIFICATION", "contrato alterado por outra operação")
	ErrContractBusy           = failure.New(failure.ErrConsistency, "CONTRACT_BUSY", "contrato em processamento")
	ErrRetryAlreadyPending    = failure.New(failure.ErrConsistency, "RETRY_PENDING", "já existe uma tentativa pendente para o contrato")
	ErrEventAlreadyApplied    = failure.New(failure.ErrConsistency, "EVENT_ALREADY_APPLIED", "evento já aplicado em outra fase do contrato")
)

var (
	ErrContractNotFound     = failure.New(failure.ErrNotFound, "CONTRACT_NOT_FOUND", "contrato não encontrado")
	ErrRetryAttemptNotFound = failure.New(failure.ErrNotFound, "RETRY_ATTEMPT_NOT_FOUND", "tentativa não encontrada")
)
