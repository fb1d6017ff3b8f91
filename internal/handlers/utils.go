package handlers

import (
	"fmt"

	"walletwise/internal/models"

	"github.com/labstack/echo/v4"
)

// ActorContextKey is the context key the auth middleware stores the
// resolved actor under.
const ActorContextKey = "actor"

// ErrUnauthorized is returned when the actor context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getActorFromContext extracts the authenticated actor from context.
// Returns ErrUnauthorized if the actor is missing or has the wrong type.
func getActorFromContext(c echo.Context) (models.Actor, error) {
	actorValue := c.Get(ActorContextKey)
	if actorValue == nil {
		return models.Actor{}, ErrUnauthorized
	}

	actor, ok := actorValue.(models.Actor)
	if !ok {
		return models.Actor{}, ErrUnauthorized
	}

	return actor, nil
}
