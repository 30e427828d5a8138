package controller

import (
	"honeydew-api/core/constants"
	"honeydew-api/core/errors"
	"honeydew-api/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDFromContext extracts the authenticated user ID set by AuthMiddleware.
func UserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}
