package dto

import (
	"time"

	"github.com/mecmec98/billingrestapi/internal/core/domain"
)

// CreateConsumerRequest is the body of POST /consumers/.
type CreateConsumerRequest struct {
	Name          string     `json:"fullname" binding:"required"`
	Address       string     `json:"address" binding:"required"`
	RateType      string     `json:"ratetype" binding:"required"`
	MeterCode     string     `json:"metercode" binding:"required"`
	MeterNumber   string     `json:"meternumber" binding:"required"`
	ClusterNumber string     `json:"clusternumber" binding:"required"`
	Senior        bool       `json:"senior"`
	SeniorStart   *time.Time `json:"seniorstart"`
	SeniorExpiry  *time.Time `json:"seniorexpiry"`
	Status        *int16     `json:"status" binding:"required"`
	PrevReading   *int       `json:"prevreading" binding:"required"`
	CurReading    *int       `json:"curreading" binding:"required"`
}

// UpdateConsumerRequest is the body of PUT /consumers/:id. Same field set as
// create; the original system overwrites the whole row.
type UpdateConsumerRequest = CreateConsumerRequest

// ConsumerResponse is the wire shape of a consumer.
type ConsumerResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	RateType      string     `json:"ratetype"`
	MeterCode     string     `json:"metercode"`
	MeterNumber   string     `json:"meternumber"`
	ClusterNumber string     `json:"clusternumber"`
	Senior        bool       `json:"senior"`
	SeniorStart   *time.Time `json:"seniorstart"`
	SeniorExpiry  *time.Time `json:"seniorexpiry"`
	Status        int16      `json:"status"`
	PrevReading   int        `json:"prevreading"`
	CurReading    int        `json:"curreading"`
}

// ToConsumerResponse converts a domain.Consumer to its wire shape.
func ToConsumerResponse(c *domain.Consumer) ConsumerResponse {
	return ConsumerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		RateType:      c.RateType,
		MeterCode:     c.MeterCode,
		MeterNumber:   c.MeterNumber,
		ClusterNumber: c.ClusterNumber,
		Senior:        c.Senior,
		SeniorStart:   c.SeniorStart,
		SeniorExpiry:  c.SeniorExpiry,
		Status:        c.Status,
		PrevReading:   c.PrevReading,
		CurReading:    c.CurReading,
	}
}

// ToConsumerResponses converts a slice of domain consumers to wire shapes.
func ToConsumerResponses(consumers []domain.Consumer) []ConsumerResponse {
	out := make([]ConsumerResponse, len(consumers))
	for i := range consumers {
		out[i] = ToConsumerResponse(&consumers[i])
	}
	return out
}
