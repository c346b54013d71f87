package http

import "github.com/luca-patrignani/range-equity/domain/equity"

// EquityRequest is the JSON body of POST /v1/equity. Cards use the short
// notation ("As", "Td") and may be given one per element or as a run.
type EquityRequest struct {
	Hero     []string   `json:"hero"`
	Board    []string   `json:"board"`
	Villain  []string   `json:"villain,omitempty"`
	Friends  [][]string `json:"friends,omitempty"`
	Excluded []string   `json:"excluded,omitempty"`
}

// EquityResponse is the JSON shape returned by POST /v1/equity.
type EquityResponse struct {
	Status    string         `json:"status"`
	Mode      equity.Mode    `json:"mode"`
	Totals    TotalsResp     `json:"totals"`
	Equity    EquityResp     `json:"equity"`
	Matrix    []CellResponse `json:"matrix"`
	RequestID string         `json:"request_id,omitempty"`
}

type TotalsResp struct {
	Possible int `json:"possible"`
	Winning  int `json:"winning"`
	Losing   int `json:"losing"`
	Ties     int `json:"ties"`
	Failed   int `json:"failed"`
}

type EquityResp struct {
	Win  float64 `json:"win_pct"`
	Lose float64 `json:"lose_pct"`
	Tie  float64 `json:"tie_pct"`
}

type CellResponse struct {
	Name    string       `json:"name"`
	Row     int          `json:"row"`
	Col     int          `json:"col"`
	State   equity.State `json:"state"`
	Total   int          `json:"total"`
	Blocked int          `json:"blocked"`
	Winning int          `json:"winning"`
	Losing  int          `json:"losing"`
	Ties    int          `json:"ties"`
	Failed  int          `json:"failed"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
