package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// Root handles GET / — a small banner so hitting the bare host answers
// something useful.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "BUMDes Desa Sale API",
		"version": apiVersion,
		"status":  "running",
	})
}
