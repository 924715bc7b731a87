package access

import (
	"context"
	"log/slog"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/pkg/errs"

	"github.com/qmuntal/stateless"
)

type State string

const (
	StateChecking        State = "checking"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
	StateAdmin           State = "admin"
	StateCustomer        State = "customer"
)

func (s State) String() string {
	return string(s)
}

const (
	triggerIdentityChanged = "identityChanged"
	triggerSignedOut       = "signedOut"
)

type Resolver interface {
	ResolveRole(ctx context.Context, id *identity.Identity) identity.Role
}

// Gate decides which screen tree is mounted for one identity. It starts in
// checking and never returns there; admin and customer are substates of
// authenticated.
type Gate struct {
	machine  *stateless.StateMachine
	resolver Resolver
	nav      *Navigator
	logger   *slog.Logger
	identity *identity.Identity
}

func NewGate(resolver Resolver, logger *slog.Logger) *Gate {
	g := &Gate{
		machine:  stateless.NewStateMachine(StateChecking),
		resolver: resolver,
		nav:      NewNavigator(),
		logger:   logger,
	}
	g.configure()
	return g
}

func (g *Gate) configure() {
	g.machine.Configure(StateChecking).
		PermitDynamic(triggerIdentityChanged, g.resolve).
		Permit(triggerSignedOut, StateUnauthenticated)

	g.machine.Configure(StateUnauthenticated).
		OnEntry(g.mount(StateUnauthenticated)).
		PermitDynamic(triggerIdentityChanged, g.resolve, identityPresent).
		Ignore(triggerIdentityChanged, identityAbsent).
		Ignore(triggerSignedOut)

	g.machine.Configure(StateAuthenticated).
		Permit(triggerSignedOut, StateUnauthenticated).
		Permit(triggerIdentityChanged, StateUnauthenticated, identityAbsent).
		Ignore(triggerIdentityChanged, identityPresent)

	g.machine.Configure(StateAdmin).
		SubstateOf(StateAuthenticated).
		OnEntry(g.mount(StateAdmin))

	g.machine.Configure(StateCustomer).
		SubstateOf(StateAuthenticated).
		OnEntry(g.mount(StateCustomer))
}

// resolve picks the destination for an identity event.
func (g *Gate) resolve(ctx context.Context, args ...any) (stateless.State, error) {
	id := identityArg(args)
	if id.IsZero() {
		return StateUnauthenticated, nil
	}
	if g.resolver.ResolveRole(ctx, id).IsAdmin() {
		return StateAdmin, nil
	}
	return StateCustomer, nil
}

func (g *Gate) mount(state State) func(context.Context, ...any) error {
	return func(_ context.Context, args ...any) error {
		if state == StateUnauthenticated {
			g.identity = nil
		} else {
			g.identity = identityArg(args)
		}
		g.nav.Mount(Tree(state))
		return nil
	}
}

func identityArg(args []any) *identity.Identity {
	if len(args) == 0 {
		return nil
	}
	id, _ := args[0].(*identity.Identity)
	return id
}

func identityPresent(_ context.Context, args ...any) bool {
	return !identityArg(args).IsZero()
}

func identityAbsent(_ context.Context, args ...any) bool {
	return identityArg(args).IsZero()
}

// IdentityChanged feeds the gate the current identity, nil when signed out.
func (g *Gate) IdentityChanged(ctx context.Context, id *identity.Identity) error {
	if err := g.machine.FireCtx(ctx, triggerIdentityChanged, id); err != nil {
		return errs.Wrap(err, "identity changed")
	}
	g.logger.Debug("navigation gate settled", "state", g.State().String())
	return nil
}

// SignOut moves to unauthenticated synchronously; afterwards only auth
// screens are reachable and the back stack holds just the login screen.
func (g *Gate) SignOut(ctx context.Context) error {
	if err := g.machine.FireCtx(ctx, triggerSignedOut); err != nil {
		return errs.Wrap(err, "sign out")
	}
	return nil
}

func (g *Gate) State() State {
	return g.machine.MustState().(State)
}

func (g *Gate) IsAuthenticated() bool {
	ok, err := g.machine.IsInState(StateAuthenticated)
	return err == nil && ok
}

// Role is only meaningful while authenticated.
func (g *Gate) Role() (identity.Role, bool) {
	switch g.State() {
	case StateAdmin:
		return identity.RoleAdmin, true
	case StateCustomer:
		return identity.RoleCustomer, true
	default:
		return "", false
	}
}

func (g *Gate) Identity() *identity.Identity {
	return g.identity
}

func (g *Gate) Navigator() *Navigator {
	return g.nav
}

func (g *Gate) Allows(s Screen) bool {
	return g.nav.Allows(s)
}

type Snapshot struct {
	State   State
	Role    identity.Role
	Screens []Screen
	Stack   []Screen
}

func (g *Gate) Snapshot() Snapshot {
	role, _ := g.Role()
	return Snapshot{
		State:   g.State(),
		Role:    role,
		Screens: g.nav.Mounted(),
		Stack:   g.nav.Stack(),
	}
}
