package dto

import "github.com/mecmec98/billingrestapi/internal/core/domain"

// CreateMachineRequest is the body of POST /pos_machine/.
type CreateMachineRequest struct {
	PosName   string `json:"pos_name" binding:"required"`
	SerialNum string `json:"serial_num" binding:"required"`
	Model     string `json:"model" binding:"required"`
}

// UpdateMachineRequest is the body of PUT /pos_machine/:id.
type UpdateMachineRequest struct {
	PosName   string `json:"pos_name" binding:"required"`
	SerialNum string `json:"serial_num" binding:"required"`
	Model     string `json:"model" binding:"required"`
}

// MachineResponse is the wire shape of a POS machine.
type MachineResponse struct {
	ID            int    `json:"id"`
	PosName       string `json:"pos_name"`
	SerialNum     string `json:"serial_num"`
	Model         string `json:"model"`
	Batch         string `json:"batch,omitempty"`
	SeriesCurrent int    `json:"series_current"`
}

// PublicMachineResponse is the reduced shape served without authentication.
type PublicMachineResponse struct {
	ID        int    `json:"id"`
	PosName   string `json:"pos_name"`
	SerialNum string `json:"serial_num"`
	Model     string `json:"model"`
}

// ORSeriesResponse is the body of the series peek/forward endpoints.
type ORSeriesResponse struct {
	SerialNum        string `json:"serial_num"`
	Batch            string `json:"batch"`
	SeriesCurrent    int    `json:"series_current"`
	FormattedCurrent string `json:"formatted_current"`
}

// ToMachineResponse converts a domain.POSMachine to its wire shape.
func ToMachineResponse(m *domain.POSMachine) MachineResponse {
	return MachineResponse{
		ID:            m.ID,
		PosName:       m.PosName,
		SerialNum:     m.SerialNum,
		Model:         m.Model,
		Batch:         m.Batch,
		SeriesCurrent: m.SeriesCurrent,
	}
}

// ToMachineResponses converts a slice of domain machines to wire shapes.
func ToMachineResponses(machines []domain.POSMachine) []MachineResponse {
	out := make([]MachineResponse, len(machines))
	for i := range machines {
		out[i] = ToMachineResponse(&machines[i])
	}
	return out
}

// ToPublicMachineResponses converts machines to the unauthenticated shape.
func ToPublicMachineResponses(machines []domain.POSMachine) []PublicMachineResponse {
	out := make([]PublicMachineResponse, len(machines))
	for i, m := range machines {
		out[i] = PublicMachineResponse{ID: m.ID, PosName: m.PosName, SerialNum: m.SerialNum, Model: m.Model}
	}
	return out
}

// ToORSeriesResponse converts a domain.ORSeries to its wire shape.
func ToORSeriesResponse(s *domain.ORSeries) ORSeriesResponse {
	return ORSeriesResponse{
		SerialNum:        s.SerialNum,
		Batch:            s.Batch,
		SeriesCurrent:    s.SeriesCurrent,
		FormattedCurrent: s.FormattedCurrent,
	}
}
