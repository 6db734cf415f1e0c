package domain

// POSMachine is a point-of-sale terminal that issues official receipts.
// SeriesCurrent is the last OR number handed out for the machine; forwarding
// it is a storage-side operation so concurrent issuers never reuse a number.
type POSMachine struct {
	ID            int    `json:"id"`
	PosName       string `json:"pos_name"`
	SerialNum     string `json:"serial_num"`
	Model         string `json:"model"`
	Batch         string `json:"batch"`
	SeriesCurrent int    `json:"series_current"`
}

// ORSeries is a snapshot of a machine's OR number counter.
type ORSeries struct {
	SerialNum        string `json:"serial_num"`
	Batch            string `json:"batch"`
	SeriesCurrent    int    `json:"series_current"`
	FormattedCurrent string `json:"formatted_current"`
}
