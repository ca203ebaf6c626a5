package handlers

import (
	"errors"
	"strconv"
	"time"

	"eventhub/internal/models"

	"github.com/labstack/echo/v4"
)

// Keys middleware.RequireAuth sets on a signed-in request
const (
	ctxUserEmail = "user_email"
	ctxUserRole  = "user_role"
	ctxStaffID   = "staff_id"
)

// ErrUnauthorized means the request carries no session
var ErrUnauthorized = errors.New("unauthorized")

func getActor(c echo.Context) (string, error) {
	email, _ := c.Get(ctxUserEmail).(string)
	if email == "" {
		return "", ErrUnauthorized
	}
	return email, nil
}

func getRole(c echo.Context) string {
	role, _ := c.Get(ctxUserRole).(string)
	return role
}

func getStaffID(c echo.Context) string {
	id, _ := c.Get(ctxStaffID).(string)
	return id
}

// getDateParam parses a YYYY-MM-DD path parameter
func getDateParam(c echo.Context, name string) (time.Time, error) {
	return models.ParseDate(c.Param(name))
}

// queryInt reads an integer query parameter; absent or malformed values give fallback
func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}
