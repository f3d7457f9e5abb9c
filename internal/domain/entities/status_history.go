package entities

import (
	"sort"
	"time"
)

// StatusHistoryEntry is one phase of a contract lifecycle (StatusContrato).
//
// Entries are append-only: the only field ever written after creation is
// DataFaseFinal, set when the next entry supersedes this one.
//
// Storage model (DynamoDB):
//   - PK: contract_token
//   - SK: seq
type StatusHistoryEntry struct {
	ContractToken   string     `json:"contract_token"`
	Seq             int64      `json:"seq"`
	Name            StatusName `json:"nome"`
	CreatedBy       string     `json:"created_by"`
	Description     string     `json:"descricao_mesa,omitempty"`
	DataFaseInicial time.Time  `json:"data_fase_inicial"`
	DataFaseFinal   *time.Time `json:"data_fase_final,omitempty"`
}

func (e StatusHistoryEntry) IsOpen() bool {
	return e.DataFaseFinal == nil
}

// ReplayedStatus is the state rebuilt from a status history.
type ReplayedStatus struct {
	Status    StatusName
	Phase     Phase
	Seq       int64
	EnteredAt time.Time
	Closed    []time.Time
}

// ReplayStatus rebuilds the current status from a history. Entries are ordered by Seq so
// the result does not depend on the order the store returned them in. It returns false
// for an empty history.
func ReplayStatus(history []StatusHistoryEntry) (ReplayedStatus, bool) {
	if len(history) == 0 {
		return ReplayedStatus{}, false
	}
	ordered := make([]StatusHistoryEntry, len(history))
	copy(ordered, history)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Seq < ordered[j].Seq })

	last := ordered[len(ordered)-1]
	out := ReplayedStatus{
		Status:    last.Name,
		Phase:     last.Name.Phase(),
		Seq:       last.Seq,
		EnteredAt: last.DataFaseInicial,
	}
	for _, e := range ordered[:len(ordered)-1] {
		if e.DataFaseFinal != nil {
			out.Closed = append(out.Closed, *e.DataFaseFinal)
		}
	}
	return out, true
}

// HistoryConsistent checks the status history invariants against the contract: the last
// entry carries the contract status and every earlier entry is closed.
func HistoryConsistent(c Contract, history []StatusHistoryEntry) bool {
	r, ok := ReplayStatus(history)
	if !ok || r.Status != c.Status {
		return false
	}
	return len(r.Closed) == len(history)-1
}
