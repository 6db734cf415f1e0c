package models

// POSMachine is the row shape of the pos_machine table.
type POSMachine struct {
	ID            int    `db:"id"`
	PosName       string `db:"pos_name"`
	SerialNum     string `db:"serial_num"`
	Model         string `db:"model"`
	Batch         string `db:"batch"`
	SeriesCurrent int    `db:"series_current"`
}
