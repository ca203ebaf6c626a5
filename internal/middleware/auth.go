package middleware

import (
	"eventhub/internal/errors"
	"eventhub/internal/handlers"
	"eventhub/internal/models"
	"eventhub/internal/services"

	"github.com/labstack/echo/v4"
)

// Permission names a group of pages or actions that share the same allowed roles
type Permission string

const (
	PermissionHub         Permission = "hub"
	PermissionCreateEvent Permission = "create_event"
	PermissionStaff       Permission = "staff"
	PermissionLogs        Permission = "logs"
	PermissionHistory     Permission = "history"
	PermissionArchive     Permission = "archive"
	PermissionEdit        Permission = "edit"
)

var permissionRoles = map[Permission][]string{
	PermissionHub:         {models.RoleAdmin, models.RoleStaff, models.RoleManager, models.RoleLogistics},
	PermissionCreateEvent: {models.RoleAdmin, models.RoleManager},
	PermissionStaff:       {models.RoleAdmin},
	PermissionLogs:        {models.RoleAdmin, models.RoleLogistics, models.RoleManager},
	PermissionHistory:     {models.RoleAdmin},
	PermissionArchive:     {models.RoleAdmin, models.RoleStaff, models.RoleManager},
	PermissionEdit:        {models.RoleAdmin},
}

// RolesFor returns the roles allowed for a permission
func RolesFor(p Permission) []string {
	return permissionRoles[p]
}

// RequireAuth creates a middleware that requires a valid session token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("staff_id", claims.StaffID)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get("user_role").(string)
			if !ok {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User role not found in token"))
			}

			for _, role := range requiredRoles {
				if userRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequirePermission restricts a route to the roles of a permission group
func RequirePermission(p Permission) echo.MiddlewareFunc {
	return RequireRole(RolesFor(p)...)
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
