package models

import "time"

// Consumer is the row shape of the consumers table.
type Consumer struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Address       string     `db:"address"`
	RateType      string     `db:"ratetype"`
	MeterCode     string     `db:"metercode"`
	MeterNumber   string     `db:"meternumber"`
	ClusterNumber string     `db:"clusternumber"`
	Senior        bool       `db:"senior"`
	SeniorStart   *time.Time `db:"seniorstart"`
	SeniorExpiry  *time.Time `db:"seniorexpiry"`
	Status        int16      `db:"status"`
	PrevReading   int        `db:"prevreading"`
	CurReading    int        `db:"curreading"`
}
