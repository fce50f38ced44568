package room

import (
	"context"

	"github.com/google/uuid"
)

// Service resolves storefront room references. It satisfies the lookup
// interface the pricing handler depends on.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

// Lookup accepts either a room uuid or a slug and returns the room id.
// The storefront URLs carry slugs; admin tooling uses ids.
func (s *Service) Lookup(ctx context.Context, slugOrID string) (uuid.UUID, error) {
	if id, err := uuid.Parse(slugOrID); err == nil {
		r, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return uuid.Nil, err
		}
		return r.ID, nil
	}
	r, err := s.repo.GetBySlug(ctx, slugOrID)
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID, nil
}
