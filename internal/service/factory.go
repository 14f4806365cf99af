package service

import (
	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/store"
)

// Services wires the service layer together once at startup.
type Services struct {
	auth      AuthService
	engine    ResolutionEngine
	workspace WorkspaceService
	admin     AdminService
}

type ServicesConfig struct {
	Stores         *store.Stores
	TxRunner       TxRunner
	Provider       identity.Provider
	Snapshots      SnapshotCache // nil disables caching
	SuperuserEmail string
}

func NewServices(cfg ServicesConfig) *Services {
	resolver := NewSessionResolver(cfg.SuperuserEmail)
	engine := NewResolutionEngine(
		cfg.Stores.Tenants(),
		cfg.Stores.Clinics(),
		cfg.Stores.Employees(),
		cfg.Stores.Sessions(),
		cfg.Provider,
		cfg.Snapshots,
	)
	gateway := NewMutationGateway(cfg.Stores.Tenants(), cfg.Snapshots)

	return &Services{
		auth:   NewAuthService(cfg.Provider, resolver, engine, cfg.Stores.Sessions()),
		engine: engine,
		workspace: NewWorkspaceService(
			gateway,
			cfg.TxRunner,
			cfg.Stores.Tenants(),
			cfg.Stores.Clinics(),
			cfg.Stores.Employees(),
			cfg.Stores.Systems(),
			cfg.Snapshots,
		),
		admin: NewAdminService(cfg.Stores.Tenants(), cfg.Provider, cfg.Snapshots),
	}
}

func (s *Services) Auth() AuthService            { return s.auth }
func (s *Services) Resolution() ResolutionEngine { return s.engine }
func (s *Services) Workspace() WorkspaceService  { return s.workspace }
func (s *Services) Admin() AdminService          { return s.admin }
