package client

import (
	"context"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// SuggestionLimit caps the autocomplete list of the booking form.
const SuggestionLimit = 4

// ======================================================
// QUERIES
// ======================================================

type ListClients struct {
	repo frontdesk.Repository
}

func NewListClients(repo frontdesk.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute lists active clients, or every client when includeDeleted is set.
func (uc *ListClients) Execute(ctx context.Context, includeDeleted bool) ([]domain.Client, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if includeDeleted {
		return snap.Clients, nil
	}
	return domain.Active(snap.Clients), nil
}

type SuggestClients struct {
	repo frontdesk.Repository
}

func NewSuggestClients(repo frontdesk.Repository) *SuggestClients {
	return &SuggestClients{repo: repo}
}

func (uc *SuggestClients) Execute(ctx context.Context, query string) ([]domain.Client, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Suggest(snap.Clients, query, SuggestionLimit), nil
}

// ======================================================
// MUTATIONS
// ======================================================

// Update applies one client mutation and audits it.
type Update struct {
	repo  frontdesk.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewUpdate(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *Update {
	return &Update{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *Update) UpdatePhone(ctx context.Context, actor, id, phone string) (*domain.Client, error) {
	return uc.apply(ctx, actor, id, "client_phone_updated", func(list []domain.Client) ([]domain.Client, error) {
		return domain.UpdatePhone(list, id, phone)
	})
}

// Rename changes the registered name. Appointments keep their snapshot and
// will show a mismatch badge.
func (uc *Update) Rename(ctx context.Context, actor, id, name string) (*domain.Client, error) {
	return uc.apply(ctx, actor, id, "client_renamed", func(list []domain.Client) ([]domain.Client, error) {
		return domain.Rename(list, id, name)
	})
}

func (uc *Update) SoftDelete(ctx context.Context, actor, id string) (*domain.Client, error) {
	return uc.apply(ctx, actor, id, "client_deleted", func(list []domain.Client) ([]domain.Client, error) {
		return domain.SoftDelete(list, id, uc.now())
	})
}

func (uc *Update) apply(
	ctx context.Context,
	actor string,
	id string,
	action string,
	fn func([]domain.Client) ([]domain.Client, error),
) (*domain.Client, error) {

	var updated domain.Client
	_, err := uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, err := fn(snap.Clients)
		if err != nil {
			return snap, err
		}
		snap.Clients = list
		updated, _ = domain.FindByID(list, id)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   action,
		Entity:   "client",
		EntityID: id,
	})

	return &updated, nil
}
