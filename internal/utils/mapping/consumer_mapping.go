package mapping

import (
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	"github.com/mecmec98/billingrestapi/internal/models"
)

// ToDomainConsumer converts a model Consumer to a domain Consumer
func ToDomainConsumer(m models.Consumer) domain.Consumer {
	return domain.Consumer{
		ID:            m.ID,
		Name:          m.Name,
		Address:       m.Address,
		RateType:      m.RateType,
		MeterCode:     m.MeterCode,
		MeterNumber:   m.MeterNumber,
		ClusterNumber: m.ClusterNumber,
		Senior:        m.Senior,
		SeniorStart:   m.SeniorStart,
		SeniorExpiry:  m.SeniorExpiry,
		Status:        m.Status,
		PrevReading:   m.PrevReading,
		CurReading:    m.CurReading,
	}
}
