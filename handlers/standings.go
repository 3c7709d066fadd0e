package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type standingRow struct {
	Conference string `bun:"conference" json:"conference"`
	ConfRank   int    `bun:"conf_rank" json:"confRank"`
	TeamID     int    `bun:"team_id" json:"teamID"`
	TeamName   string `bun:"team_name" json:"teamName"`
}

// Standings returns conference standings for a year, optionally filtered to
// one conference.
func (h *Handler) Standings(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	q := `
SELECT s.conference, s.conf_rank, s.team_id, t.team_name
FROM conference_standings_by_year s
INNER JOIN teams t ON t.team_id = s.team_id
WHERE s.season_year = ?`
	args := []interface{}{year}

	if conference := c.QueryParam("conference"); conference != "" {
		q += ` AND s.conference = ?`
		args = append(args, conference)
	}
	q += ` ORDER BY s.conference, s.conf_rank`

	var rows []standingRow
	if err := h.db.NewRaw(q, args...).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type recordRow struct {
	TeamID     int    `bun:"team_id" json:"teamID"`
	TeamName   string `bun:"team_name" json:"teamName"`
	Conference string `bun:"conference" json:"conference"`

	OverallWins   int `bun:"overall_wins" json:"overallWins"`
	OverallLosses int `bun:"overall_losses" json:"overallLosses"`
	OverallTies   int `bun:"overall_ties" json:"overallTies"`
	OverallGames  int `bun:"overall_games" json:"overallGames"`

	ConfWins   int `bun:"conf_wins" json:"confWins"`
	ConfLosses int `bun:"conf_losses" json:"confLosses"`
	ConfTies   int `bun:"conf_ties" json:"confTies"`
	ConfGames  int `bun:"conf_games" json:"confGames"`
}

// Records returns overall and in-conference win/loss records for a year.
func (h *Handler) Records(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []recordRow
	q := `
SELECT r.team_id, t.team_name, r.conference,
	r.overall_wins, r.overall_losses, r.overall_ties, r.overall_games,
	r.conf_wins, r.conf_losses, r.conf_ties, r.conf_games
FROM conference_team_records_by_year r
INNER JOIN teams t ON t.team_id = r.team_id
WHERE r.season_year = ?
ORDER BY r.conference, r.conf_wins DESC, r.overall_wins DESC, t.team_name`

	if err := h.db.NewRaw(q, year).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}
