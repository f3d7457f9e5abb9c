package usecase

import "consig_origination/internal/domain/entities"

// forwardTransitions lists the non rejection moves out of each status. Cancellation and
// the rejection statuses are reachable from every non terminal status.
var forwardTransitions = map[entities.StatusName][]entities.StatusName{
	entities.StatusDigitacao: {
		entities.StatusAguardaEnvioLink,
	},
	entities.StatusAguardaEnvioLink: {
		entities.StatusAndamentoFormalizacao,
	},
	entities.StatusAndamentoFormalizacao: {
		entities.StatusAguardaAverbacao,
		entities.StatusAguardandoRetornoIN100,
		entities.StatusAguardandoIN100Recalculo,
		entities.StatusPendenteRevisaoManual,
	},
	entities.StatusAguardandoRetornoIN100: {
		entities.StatusAguardaAverbacao,
		entities.StatusPendenteRevisaoManual,
	},
	entities.StatusPendenteRevisaoManual: {
		entities.StatusAguardandoRetornoIN100,
		entities.StatusAguardaAverbacao,
	},
	entities.StatusAguardandoIN100Recalculo: {
		entities.StatusRetornoIN100Recalculo,
	},
	entities.StatusRetornoIN100Recalculo: {
		entities.StatusAguardaAverbacao,
		entities.StatusAguardandoRetornoIN100,
		entities.StatusAguardandoIN100Recalculo,
		entities.StatusPendenteRevisaoManual,
	},
	entities.StatusAguardaAverbacao: {
		entities.StatusFinalizado,
		entities.StatusAguardandoIN100Recalculo,
	},
}

// CanTransition reports whether a contract in from may move to to.
func CanTransition(from, to entities.StatusName) bool {
	if from.IsTerminal() || !to.Valid() {
		return false
	}
	if to == entities.StatusCancelado || to.IsRejected() {
		return true
	}
	for _, s := range forwardTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// submittable lists the statuses SubmitExternalProposal starts from.
func submittable(s entities.StatusName) bool {
	switch s {
	case entities.StatusAndamentoFormalizacao, entities.StatusPendenteRevisaoManual, entities.StatusRetornoIN100Recalculo:
		return true
	}
	return false
}

// awaitingBureau lists the statuses a bureau callback resolves.
func awaitingBureau(s entities.StatusName) bool {
	return s == entities.StatusAguardandoRetornoIN100 || s == entities.StatusPendenteRevisaoManual
}
