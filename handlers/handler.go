package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db     *bun.DB
	JWTKey []byte

	// Default formula key when the request doesn't name one.
	Version string
	Ruleset string
}

// New creates a Handler with the given database connection, JWT signing key
// and default formula version/ruleset.
func New(db *bun.DB, jwtKey []byte, version, ruleset string) *Handler {
	return &Handler{db: db, JWTKey: jwtKey, Version: version, Ruleset: ruleset}
}

// yearParam parses the required year query parameter.
func yearParam(c echo.Context) (int, error) {
	raw := c.QueryParam("year")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing year param")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "bad year param")
	}
	return year, nil
}

// versionParam returns the formula version from the request, falling back to
// the configured default.
func (h *Handler) versionParam(c echo.Context) string {
	if v := c.QueryParam("version"); v != "" {
		return v
	}
	return h.Version
}

// rulesetParam returns the ruleset from the request, falling back to the
// configured default.
func (h *Handler) rulesetParam(c echo.Context) string {
	if r := c.QueryParam("ruleset"); r != "" {
		return r
	}
	return h.Ruleset
}
