package commands

import (
	"errors"
	"strings"

	"hubops/internal/core/domain/model/sequence"
	"hubops/internal/pkg/guard"
)

var ErrAllocateSequenceCommandIsNotConstructed = errors.New(
	"AllocateSequenceCommand must be created via NewAllocateSequenceCommand constructor",
)

type AllocateSequenceCommand struct {
	kind     sequence.Kind
	scopeKey string

	guard guard.ConstructorGuard
}

func NewAllocateSequenceCommand(kind sequence.Kind, scopeKey string) (AllocateSequenceCommand, error) {
	if err := kind.Validate(); err != nil {
		return AllocateSequenceCommand{}, err
	}
	return AllocateSequenceCommand{
		kind:     kind,
		scopeKey: strings.TrimSpace(scopeKey),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AllocateSequenceCommand) Validate() error {
	return c.guard.Validate(ErrAllocateSequenceCommandIsNotConstructed)
}

func (c AllocateSequenceCommand) Kind() sequence.Kind {
	return c.kind
}

func (c AllocateSequenceCommand) ScopeKey() string {
	return c.scopeKey
}
