package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luca-patrignani/range-equity/domain/equity"
	"github.com/luca-patrignani/range-equity/domain/poker"
)

const (
	statusOK           = "ok"
	statusInsufficient = "insufficient_information"
)

var errBadRequest = errors.New("bad request")

type Handler struct {
	engine equity.Engine
	logger *slog.Logger
}

func NewHandler(engine equity.Engine, logger *slog.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/equity", h.Equity)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Equity computes the equity of the posted snapshot. An incomplete hero hand
// or board answers 422 with the matrix still filled with shape-only states.
func (h *Handler) Equity(c echo.Context) error {
	requestID, _ := c.Get("request_id").(string)

	var req EquityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}

	snapshot, err := toSnapshot(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	res, err := h.engine.Compute(snapshot)
	switch {
	case errors.Is(err, equity.ErrInsufficientInformation):
		resp := toResponse(res, requestID)
		resp.Status = statusInsufficient
		return c.JSON(http.StatusUnprocessableEntity, resp)
	case err != nil:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toResponse(res, requestID))
}

func toSnapshot(req EquityRequest) (equity.Snapshot, error) {
	var s equity.Snapshot
	var err error
	if s.Hero, err = parseField("hero", req.Hero, 2); err != nil {
		return s, err
	}
	if s.Board, err = parseField("board", req.Board, poker.BoardSize); err != nil {
		return s, err
	}
	if s.Villain, err = parseField("villain", req.Villain, 2); err != nil {
		return s, err
	}
	for i, f := range req.Friends {
		cards, err := parseField(fmt.Sprintf("friends[%d]", i), f, 2)
		if err != nil {
			return s, err
		}
		s.Friends = append(s.Friends, cards)
	}
	if s.Excluded, err = equity.ParseExclusions(req.Excluded...); err != nil {
		return s, fmt.Errorf("%w: excluded: %w", errBadRequest, err)
	}
	return s, nil
}

func parseField(name string, in []string, limit int) ([]poker.Card, error) {
	cards, err := poker.ParseCards(strings.Join(in, " "))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errBadRequest, name, err)
	}
	if len(cards) > limit {
		return nil, fmt.Errorf("%w: %s: at most %d cards, got %d", errBadRequest, name, limit, len(cards))
	}
	return cards, nil
}

func toResponse(r equity.Result, requestID string) EquityResponse {
	eq := r.Equity()
	resp := EquityResponse{
		Status: statusOK,
		Mode:   r.Mode,
		Totals: TotalsResp{
			Possible: r.Totals.Possible,
			Winning:  r.Totals.Winning,
			Losing:   r.Totals.Losing,
			Ties:     r.Totals.Ties,
			Failed:   r.Totals.Failed,
		},
		Equity:    EquityResp{Win: eq.Win, Lose: eq.Lose, Tie: eq.Tie},
		Matrix:    make([]CellResponse, 0, equity.MatrixSize*equity.MatrixSize),
		RequestID: requestID,
	}
	for _, row := range r.Matrix {
		for _, cr := range row {
			resp.Matrix = append(resp.Matrix, CellResponse{
				Name:    cr.Cell.Name(),
				Row:     cr.Cell.Row,
				Col:     cr.Cell.Col,
				State:   cr.State,
				Total:   cr.Counts.Total,
				Blocked: cr.Counts.Blocked,
				Winning: cr.Counts.Winning,
				Losing:  cr.Counts.Losing,
				Ties:    cr.Counts.Ties,
				Failed:  cr.Counts.Failed,
			})
		}
	}
	return resp
}
