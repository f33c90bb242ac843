package bootstrap

import (
	"context"
	"encoding/json"

	accesscontrol "chainreputation/contexts/reputation/access-control"
	balanceledger "chainreputation/contexts/reputation/balance-ledger"
	ledgerports "chainreputation/contexts/reputation/balance-ledger/ports"
	batchports "chainreputation/contexts/reputation/batch-engine/ports"
	standardscatalog "chainreputation/contexts/reputation/standards-catalog"
	tokenregistry "chainreputation/contexts/reputation/token-registry"
	registryports "chainreputation/contexts/reputation/token-registry/ports"
	"chainreputation/internal/platform/messaging"
	sharedevents "chainreputation/internal/shared/events"
)

// tokenAccessBridge lets the balance ledger authorize issuers against the
// token registry without importing it.
type tokenAccessBridge struct {
	registry tokenregistry.Module
}

func (b tokenAccessBridge) AuthorizeIssuer(ctx context.Context, tokenName string, issuer string) (ledgerports.IssuerGrant, error) {
	grant, err := b.registry.Service.AuthorizeIssuer(ctx, tokenName, issuer)
	if err != nil {
		return ledgerports.IssuerGrant{}, err
	}
	return ledgerports.IssuerGrant{
		Authorized: grant.Authorized,
		Active:     grant.Active,
	}, nil
}

// accessPolicyBridge exposes the access-control registry to the batch engine.
type accessPolicyBridge struct {
	access accesscontrol.Module
}

func (b accessPolicyBridge) ResolveTier(ctx context.Context, caller string) (batchports.CallerTier, error) {
	tier, err := b.access.Service.ResolveTier(ctx, caller)
	return batchports.CallerTier(tier), err
}

func (b accessPolicyBridge) RecordIssued(ctx context.Context, admin string, amount uint64) error {
	return b.access.Service.RecordIssued(ctx, admin, amount)
}

func (b accessPolicyBridge) RecordBurned(ctx context.Context, admin string, amount uint64) error {
	return b.access.Service.RecordBurned(ctx, admin, amount)
}

// standardsReaderBridge exposes the standards catalog to the batch engine.
type standardsReaderBridge struct {
	standards standardscatalog.Module
}

func (b standardsReaderBridge) GetStandard(ctx context.Context, name string) (batchports.StandardView, error) {
	standard, err := b.standards.Service.GetStandard(ctx, name)
	if err != nil {
		return batchports.StandardView{}, err
	}
	return batchports.StandardView{
		Name:      standard.Name,
		RepAmount: standard.RepAmount,
		Destroyed: standard.Destroyed,
	}, nil
}

// ledgerBridge fixes the issuing principal and token name for batch-driven
// balance moves.
type ledgerBridge struct {
	ledger balanceledger.Module
	issuer string
	token  string
}

func (b ledgerBridge) Issue(ctx context.Context, to string, amount uint64) error {
	_, err := b.ledger.Service.Issue(ctx, b.issuer, b.token, to, int64(amount))
	return err
}

func (b ledgerBridge) Burn(ctx context.Context, from string, amount uint64) (uint64, error) {
	return b.ledger.Service.Burn(ctx, b.issuer, b.token, from, int64(amount))
}

// kafkaSink publishes audit envelopes straight to the bus for modules that
// skip the outbox.
type kafkaSink struct {
	kafka *messaging.Kafka
	topic string
}

func (s kafkaSink) Publish(ctx context.Context, event sharedevents.Envelope) error {
	return s.kafka.Publish(ctx, s.topic, event)
}

// registryBusPublisher decodes pending registry outbox rows back into
// envelopes and hands them to the bus.
type registryBusPublisher struct {
	kafka *messaging.Kafka
	topic string
}

func (p registryBusPublisher) PublishPending(ctx context.Context, message registryports.OutboxMessage) error {
	var envelope sharedevents.Envelope
	if err := json.Unmarshal(message.Payload, &envelope); err != nil {
		return err
	}
	return p.kafka.Publish(ctx, p.topic, envelope)
}

type ledgerBusPublisher struct {
	kafka *messaging.Kafka
	topic string
}

func (p ledgerBusPublisher) PublishPending(ctx context.Context, message ledgerports.OutboxMessage) error {
	var envelope sharedevents.Envelope
	if err := json.Unmarshal(message.Payload, &envelope); err != nil {
		return err
	}
	return p.kafka.Publish(ctx, p.topic, envelope)
}
