package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type fieldRow struct {
	TeamID      int     `bun:"team_id" json:"teamID"`
	TeamName    string  `bun:"team_name" json:"teamName"`
	Conference  string  `bun:"conference" json:"conference"`
	ConfRank    int     `bun:"conf_rank" json:"confRank"`
	ConfCoeRank int     `bun:"conf_coe_rank" json:"confCoeRank"`
	BidType     string  `bun:"bid_type" json:"bidType"`
	Pot         int     `bun:"pot" json:"pot"`
	TotalPoints float64 `bun:"total_points" json:"totalPoints"`
	PPG         float64 `bun:"points_per_game" json:"pointsPerGame"`
}

// Field returns the qualified tournament field for a year in seeding order:
// byes first, then within each pot by rolling strength.
func (h *Handler) Field(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []fieldRow
	q := `
SELECT f.team_id, t.team_name, f.conference, f.conf_rank, f.conf_coe_rank, f.bid_type, f.pot,
	COALESCE(r.total_points, 0) AS total_points,
	COALESCE(r.points_per_game, 0) AS points_per_game
FROM playoff_field_by_year f
INNER JOIN teams t ON t.team_id = f.team_id
LEFT JOIN team_coefficient_rolling r
	ON r.team_id = f.team_id
	AND r.season_year = f.season_year
	AND r.formula_version = f.formula_version
WHERE f.season_year = ? AND f.formula_version = ? AND f.ruleset = ?
ORDER BY f.pot, total_points DESC, points_per_game DESC, t.team_name`

	err = h.db.NewRaw(q, year, h.versionParam(c), h.rulesetParam(c)).
		Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type bracketRow struct {
	Slot     int    `bun:"slot" json:"slot"`
	TeamID   int    `bun:"team_id" json:"teamID"`
	TeamName string `bun:"team_name" json:"teamName"`
	Pot      int    `bun:"pot" json:"pot"`
	DrawSeed int64  `bun:"draw_seed" json:"drawSeed"`
}

// Bracket returns the drawn bracket slots for a year in slot order.
func (h *Handler) Bracket(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []bracketRow
	q := `
SELECT b.slot, b.team_id, t.team_name, b.pot, b.draw_seed
FROM playoff_bracket_by_year b
INNER JOIN teams t ON t.team_id = b.team_id
WHERE b.season_year = ? AND b.formula_version = ? AND b.ruleset = ?
ORDER BY b.slot`

	err = h.db.NewRaw(q, year, h.versionParam(c), h.rulesetParam(c)).
		Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type playoffGameRow struct {
	Round    string `bun:"round" json:"round"`
	GameNo   int    `bun:"game_no" json:"gameNo"`
	HomeID   int    `bun:"home_team_id" json:"homeTeamID"`
	HomeName string `bun:"home_name" json:"homeName"`
	AwayID   int    `bun:"away_team_id" json:"awayTeamID"`
	AwayName string `bun:"away_name" json:"awayName"`
	HomeSlot int    `bun:"home_slot" json:"homeSlot"`
	AwaySlot int    `bun:"away_slot" json:"awaySlot"`
}

// PlayoffGames returns the constructed play-in games for a year.
func (h *Handler) PlayoffGames(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []playoffGameRow
	q := `
SELECT g.round, g.game_no, g.home_team_id, th.team_name AS home_name,
	g.away_team_id, ta.team_name AS away_name, g.home_slot, g.away_slot
FROM playoff_games_by_year g
INNER JOIN teams th ON th.team_id = g.home_team_id
INNER JOIN teams ta ON ta.team_id = g.away_team_id
WHERE g.season_year = ? AND g.formula_version = ? AND g.ruleset = ?
ORDER BY g.round, g.game_no`

	err = h.db.NewRaw(q, year, h.versionParam(c), h.rulesetParam(c)).
		Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}
