package mapping

import (
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/models"
)

// ToDomainPOSMachine converts a model POSMachine to a domain POSMachine
func ToDomainPOSMachine(m models.POSMachine) domain.POSMachine {
	return domain.POSMachine{
		ID:            m.ID,
		PosName:       m.PosName,
		SerialNum:     m.SerialNum,
		Model:         m.Model,
		Batch:         m.Batch,
		SeriesCurrent: m.SeriesCurrent,
	}
}

// ToDomainPOSMachineSlice converts a slice of model machines to domain machines
func ToDomainPOSMachineSlice(ms []models.POSMachine) []domain.POSMachine {
	out := make([]domain.POSMachine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPOSMachine(m)
	}
	return out
}
