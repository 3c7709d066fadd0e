package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ratingRow struct {
	TeamID   int     `bun:"team_id" json:"teamID"`
	TeamName string  `bun:"team_name" json:"teamName"`
	Rating   float64 `bun:"rating" json:"rating"`
}

// Ratings returns the iterative season ratings for a year, strongest first.
func (h *Handler) Ratings(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []ratingRow
	q := `
SELECT r.team_id, t.team_name, r.rating
FROM team_ratings_by_season r
INNER JOIN teams t ON t.team_id = r.team_id
WHERE r.season_year = ? AND r.formula_version = ?
ORDER BY r.rating DESC, t.team_name`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}

type ratingRollingRow struct {
	TeamID      int     `bun:"team_id" json:"teamID"`
	TeamName    string  `bun:"team_name" json:"teamName"`
	Coefficient float64 `bun:"coefficient" json:"coefficient"`
	StartYear   int     `bun:"window_start_year" json:"windowStartYear"`
	EndYear     int     `bun:"window_end_year" json:"windowEndYear"`
}

// RatingsRolling returns the decayed trailing-window ratings for the window
// ending at the given year.
func (h *Handler) RatingsRolling(c echo.Context) error {
	year, err := yearParam(c)
	if err != nil {
		return err
	}

	var rows []ratingRollingRow
	q := `
SELECT r.team_id, t.team_name, r.coefficient, r.window_start_year, r.window_end_year
FROM team_rating_rolling r
INNER JOIN teams t ON t.team_id = r.team_id
WHERE r.season_year = ? AND r.formula_version = ?
ORDER BY r.coefficient DESC, t.team_name`

	if err := h.db.NewRaw(q, year, h.versionParam(c)).Scan(c.Request().Context(), &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rows)
}
