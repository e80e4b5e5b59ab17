package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"freight/internal/core/domain/model/kernel"
)

// Identity headers set by the API gateway after authentication. The engine
// trusts them; verification happens upstream.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"
	HeaderRole     = "X-Role"
)

const tenantContextKey = "tenantContext"

// TenantContextMiddleware builds a kernel.TenantContext from the gateway
// identity headers and stores it on the request. Requests without a complete,
// valid identity are rejected with 401.
func TenantContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tenantID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderTenantID))
			if err != nil {
				return unauthorized(ctx, "missing or invalid "+HeaderTenantID+" header")
			}

			userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
			if err != nil {
				return unauthorized(ctx, "missing or invalid "+HeaderUserID+" header")
			}

			role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderRole))
			if err != nil {
				return unauthorized(ctx, "missing or invalid "+HeaderRole+" header")
			}

			tenantCtx, err := kernel.NewTenantContext(tenantID, userID, role)
			if err != nil {
				return unauthorized(ctx, "invalid caller identity")
			}

			ctx.Set(tenantContextKey, tenantCtx)

			return next(ctx)
		}
	}
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

// tenantContext returns the caller identity stored by TenantContextMiddleware.
func tenantContext(ctx echo.Context) (kernel.TenantContext, bool) {
	tenantCtx, ok := ctx.Get(tenantContextKey).(kernel.TenantContext)
	return tenantCtx, ok
}
