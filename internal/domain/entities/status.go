package entities

// StatusName is the closed set of lifecycle statuses a contract (or a product detail)
// can be in. The values are the names used by the mesa and the partner integrations.
type StatusName string

const (
	StatusDigitacao                 StatusName = "DIGITACAO"
	StatusAguardaEnvioLink          StatusName = "AGUARDA_ENVIO_LINK"
	StatusAndamentoFormalizacao     StatusName = "ANDAMENTO_FORMALIZACAO"
	StatusAguardandoRetornoIN100    StatusName = "AGUARDANDO_RETORNO_IN100"
	StatusAguardandoIN100Recalculo  StatusName = "AGUARDANDO_IN100_RECALCULO"
	StatusRetornoIN100Recalculo     StatusName = "RETORNO_IN100_RECALCULO_RECEBIDO"
	StatusAguardaAverbacao          StatusName = "INT_AGUARDA_AVERBACAO"
	StatusPendenteRevisaoManual     StatusName = "PENDENTE_REVISAO_MANUAL"
	StatusFinalizado                StatusName = "INT_FINALIZADO"
	StatusCancelado                 StatusName = "CANCELADO"
	StatusReprovado                 StatusName = "REPROVADO"
	StatusReprovadaPoliticaInterna  StatusName = "REPROVADA_POLITICA_INTERNA"
	StatusReprovadoConsultaDataprev StatusName = "REPROVADO_CONSULTA_DATAPREV"
	StatusErroConsultaDataprev      StatusName = "ERRO_CONSULTA_DATAPREV"
	StatusReprovadaMesaFormalizacao StatusName = "REPROVADA_MESA_FORMALIZACAO"
	StatusReprovadaMesaCorban       StatusName = "REPROVADA_MESA_CORBAN"
	StatusReprovadaRevisaoMesa      StatusName = "REPROVADA_REVISAO_MESA_DE_FORMALIZACAO"
	StatusReprovadaMesaAverbacao    StatusName = "REPROVADA_MESA_DE_AVERBECAO"
	StatusReprovadaFinalizada       StatusName = "REPROVADA_FINALIZADA"
	StatusReprovadaPagamento        StatusName = "REPROVADA_PAGAMENTO_DEVOLVIDO"
	StatusSaldoReprovado            StatusName = "SALDO_REPROVADO"
	StatusRecusadaAverbacao         StatusName = "RECUSADA_AVERBACAO"
)

// Phase is the coarse contract phase (EnumContratoStatus in the mesa screens).
type Phase string

const (
	PhaseDigitacao              Phase = "DIGITACAO"
	PhaseAguardandoFormalizacao Phase = "AGUARDANDO_FORMALIZACAO"
	PhaseFormalizado            Phase = "FORMALIZADO"
	PhaseMesa                   Phase = "MESA"
	PhaseEmAverbacao            Phase = "EM_AVERBACAO"
	PhasePago                   Phase = "PAGO"
	PhaseCancelado              Phase = "CANCELADO"
	PhaseErro                   Phase = "ERRO"
)

var knownStatuses = map[StatusName]Phase{
	StatusDigitacao:                 PhaseDigitacao,
	StatusAguardaEnvioLink:          PhaseAguardandoFormalizacao,
	StatusAndamentoFormalizacao:     PhaseAguardandoFormalizacao,
	StatusAguardandoRetornoIN100:    PhaseFormalizado,
	StatusAguardandoIN100Recalculo:  PhaseFormalizado,
	StatusRetornoIN100Recalculo:     PhaseFormalizado,
	StatusPendenteRevisaoManual:     PhaseMesa,
	StatusAguardaAverbacao:          PhaseEmAverbacao,
	StatusFinalizado:                PhasePago,
	StatusCancelado:                 PhaseCancelado,
	StatusReprovado:                 PhaseCancelado,
	StatusReprovadaPoliticaInterna:  PhaseCancelado,
	StatusReprovadoConsultaDataprev: PhaseCancelado,
	StatusErroConsultaDataprev:      PhaseErro,
	StatusReprovadaMesaFormalizacao: PhaseCancelado,
	StatusReprovadaMesaCorban:       PhaseCancelado,
	StatusReprovadaRevisaoMesa:      PhaseCancelado,
	StatusReprovadaMesaAverbacao:    PhaseCancelado,
	StatusReprovadaFinalizada:       PhaseCancelado,
	StatusReprovadaPagamento:        PhaseCancelado,
	StatusSaldoReprovado:            PhaseCancelado,
	StatusRecusadaAverbacao:         PhaseCancelado,
}

func (s StatusName) Valid() bool {
	_, ok := knownStatuses[s]
	return ok
}

func (s StatusName) Phase() Phase {
	if p, ok := knownStatuses[s]; ok {
		return p
	}
	return PhaseErro
}

// IsRejected reports whether the status is one of the terminal rejection states.
// Contracts in these states do not count as active and do not block a new card contract.
func (s StatusName) IsRejected() bool {
	switch s {
	case StatusReprovado,
		StatusReprovadaPoliticaInterna,
		StatusReprovadoConsultaDataprev,
		StatusErroConsultaDataprev,
		StatusReprovadaMesaFormalizacao,
		StatusReprovadaMesaCorban,
		StatusReprovadaRevisaoMesa,
		StatusReprovadaMesaAverbacao,
		StatusReprovadaFinalizada,
		StatusReprovadaPagamento,
		StatusSaldoReprovado,
		StatusRecusadaAverbacao:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s StatusName) IsTerminal() bool {
	return s == StatusFinalizado || s == StatusCancelado || s.IsRejected()
}

// IsActive reports whether a contract in this status counts against the per-client limit.
func (s StatusName) IsActive() bool {
	return s != StatusCancelado && !s.IsRejected()
}
