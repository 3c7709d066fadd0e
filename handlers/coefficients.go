package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type teamCoeRow struct {
	TeamID        int     `bun:"team_id" json:"teamID"`
	TeamName      string  `bun:"team_name" json:"teamName"`
	TotalPoints   float64 `bun:"total_points" json:"totalPoints"`
	GamesCounted  int     `bun:"games_counted" json:"gamesCounted"`
	PointsPerGame float64 `bun:"points_per_game" json:"pointsPerGame"`
}

// TeamCoefficients returns the per-season team coefficient rollups for a year.
func (h *Handler) TeamCoefficients(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []teamCoeRow
	q := `
SELECT y.team_id, t.team_name, y.total_points, y.games_counted, y.points_per_game
FROM team_coefficient_by_year y
INNER JOIN teams t ON t.team_id = y.team_id
WHERE y.season_year = ? AND y.formula_version = ?
ORDER BY y.total_points DESC, y.points_per_game DESC, t.team_name`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

// TeamCoefficientsRolling returns the trailing-window team coefficients for
// the window ending at the given year.
func (h *Handler) TeamCoefficientsRolling(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []teamCoeRow
	q := `
SELECT r.team_id, t.team_name, r.total_points, r.games_counted, r.points_per_game
FROM team_coefficient_rolling r
INNER JOIN teams t ON t.team_id = r.team_id
WHERE r.season_year = ? AND r.formula_version = ?
ORDER BY r.total_points DESC, r.points_per_game DESC, t.team_name`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type confCoeRow struct {
	Conference    string  `bun:"conference" json:"conference"`
	TotalPoints   float64 `bun:"total_points" json:"totalPoints"`
	GamesCounted  int     `bun:"games_counted" json:"gamesCounted"`
	PointsPerGame float64 `bun:"points_per_game" json:"pointsPerGame"`
}

// ConferenceCoefficients returns the per-season conference rollups for a year.
func (h *Handler) ConferenceCoefficients(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []confCoeRow
	q := `
SELECT conference, total_points, games_counted, points_per_game
FROM conference_coefficient_by_year
WHERE season_year = ? AND formula_version = ?
ORDER BY total_points DESC, points_per_game DESC, conference`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

// ConferenceCoefficientsRolling returns the trailing-window conference
// coefficients. Its ordering is the conference strength ranking the qualifier
// selection runs on.
func (h *Handler) ConferenceCoefficientsRolling(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []confCoeRow
	q := `
SELECT conference, total_points, games_counted, points_per_game
FROM conference_coefficient_rolling
WHERE season_year = ? AND formula_version = ?
ORDER BY total_points DESC, points_per_game DESC, conference`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type componentRow struct {
	Component    string  `bun:"component" json:"component"`
	Points       float64 `bun:"points" json:"points"`
	GamesCounted int     `bun:"games_counted" json:"gamesCounted"`
	Notes        string  `bun:"notes" json:"notes,omitempty"`
}

// ConferenceComponents returns the component breakdown behind one
// conference's season coefficient.
func (h *Handler) ConferenceComponents(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}
	conference := c.QueryParam("conference")
	if conference == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing conference param")
	}

	var rows []componentRow
	q := `
SELECT component, points, games_counted, notes
FROM conference_coe_components
WHERE season_year = ? AND conference = ? AND formula_version = ?
ORDER BY component`

	if err := h.db.NewRaw(q, year, conference, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}
