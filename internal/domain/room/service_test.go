package room

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	rooms []*Room
}

func (f *fakeRepo) List(_ context.Context) ([]*Room, error) { return f.rooms, nil }

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*Room, error) {
	for _, r := range f.rooms {
		if r.Slug == slug {
			return r, nil
		}
	}
	return nil, ErrRoomNotFound
}

func (f *fakeRepo) Create(_ context.Context, r *Room) error {
	f.rooms = append(f.rooms, r)
	return nil
}

func TestLookupBySlugAndID(t *testing.T) {
	id := uuid.New()
	svc := NewService(&fakeRepo{rooms: []*Room{
		{ID: id, Slug: "dubai-mall-residence", Name: "Dubai Mall Residence"},
	}})

	got, err := svc.Lookup(context.Background(), "dubai-mall-residence")
	if err != nil {
		t.Fatalf("slug lookup: %v", err)
	}
	if got != id {
		t.Fatalf("slug lookup id = %v", got)
	}

	got, err = svc.Lookup(context.Background(), id.String())
	if err != nil {
		t.Fatalf("id lookup: %v", err)
	}
	if got != id {
		t.Fatalf("id lookup id = %v", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.Lookup(context.Background(), "no-such-room"); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
	if _, err := svc.Lookup(context.Background(), uuid.NewString()); !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}
