package usecase

import (
	"testing"

	"consig_origination/internal/domain/entities"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to entities.StatusName
		want     bool
	}{
		{entities.StatusDigitacao, entities.StatusAguardaEnvioLink, true},
		{entities.StatusDigitacao, entities.StatusAguardaAverbacao, false},
		{entities.StatusAguardaEnvioLink, entities.StatusAndamentoFormalizacao, true},
		{entities.StatusAndamentoFormalizacao, entities.StatusAguardandoRetornoIN100, true},
		{entities.StatusAguardandoRetornoIN100, entities.StatusPendenteRevisaoManual, true},
		{entities.StatusPendenteRevisaoManual, entities.StatusAguardandoRetornoIN100, true},
		{entities.StatusAguardandoIN100Recalculo, entities.StatusRetornoIN100Recalculo, true},
		{entities.StatusAguardaAverbacao, entities.StatusFinalizado, true},
		{entities.StatusAguardaAverbacao, entities.StatusDigitacao, false},
		{entities.StatusDigitacao, entities.StatusCancelado, true},
		{entities.StatusAguardaAverbacao, entities.StatusRecusadaAverbacao, true},
		{entities.StatusFinalizado, entities.StatusCancelado, false},
		{entities.StatusCancelado, entities.StatusDigitacao, false},
		{entities.StatusReprovado, entities.StatusAguardaAverbacao, false},
		{entities.StatusDigitacao, "INEXISTENTE", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSubmittable(t *testing.T) {
	for _, s := range []entities.StatusName{entities.StatusAndamentoFormalizacao, entities.StatusPendenteRevisaoManual, entities.StatusRetornoIN100Recalculo} {
		if !submittable(s) {
			t.Fatalf("%s should be submittable", s)
		}
	}
	if submittable(entities.StatusDigitacao) || submittable(entities.StatusAguardaAverbacao) {
		t.Fatalf("unexpected submittable status")
	}
}
