package service

import (
	"github.com/AthyrsonSousa/kids-guardian/internal/model"

	"github.com/google/uuid"
)

// criancasPresentes derives, from one operational day's events, the children
// currently present: every check-in without a strictly later check-out for
// the same child. Equal timestamps count as still present here; the
// check-in/check-out operations themselves treat them as already closed.
func criancasPresentes(checkins, checkouts []model.Registro) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(checkins))
	ids := make([]uuid.UUID, 0, len(checkins))
	for _, in := range checkins {
		fechado := false
		for _, out := range checkouts {
			if out.CriancaID == in.CriancaID && out.DataHora.After(in.DataHora) {
				fechado = true
				break
			}
		}
		if !fechado && !seen[in.CriancaID] {
			seen[in.CriancaID] = true
			ids = append(ids, in.CriancaID)
		}
	}
	return ids
}
