package ports

import "context"

// AdminChangedEvent records a grant or revoke of the admin role.
type AdminChangedEvent struct {
	Admin string `json:"admin"`
}

// ContractChangedEvent records a grant or revoke of a contract registration.
type ContractChangedEvent struct {
	Contract string `json:"contract"`
	Name     string `json:"name,omitempty"`
}

// EventPublisher emits access-control audit events.
type EventPublisher interface {
	PublishAdminAdded(ctx context.Context, caller string, event AdminChangedEvent) error
	PublishAdminRemoved(ctx context.Context, caller string, event AdminChangedEvent) error
	PublishContractAdded(ctx context.Context, caller string, event ContractChangedEvent) error
	PublishContractRemoved(ctx context.Context, caller string, event ContractChangedEvent) error
}
