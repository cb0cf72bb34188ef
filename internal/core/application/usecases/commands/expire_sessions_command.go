package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrExpireSessionsCommandIsNotConstructed = errors.New(
	"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
)

// ExpireSessionsCommand drops checkout sessions idle for longer than the TTL.
type ExpireSessionsCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireSessionsCommand() ExpireSessionsCommand {
	return ExpireSessionsCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}
