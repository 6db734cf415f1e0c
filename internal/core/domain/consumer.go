package domain

import "time"

// Consumer is a billed water-service account holder.
type Consumer struct {
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
