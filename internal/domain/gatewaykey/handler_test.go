package gatewaykey

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type fakeRepo struct {
	keys []*Key
}

func (f *fakeRepo) ListActive(_ context.Context) ([]*Key, error) {
	var out []*Key
	for _, k := range f.keys {
		if k.Active {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(_ context.Context, key string) (*Key, error) {
	k := &Key{ID: uuid.New(), Key: key, Active: true, CreatedAt: time.Now()}
	f.keys = append(f.keys, k)
	return k, nil
}

func (f *fakeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for _, k := range f.keys {
		if k.ID == id {
			k.Active = false
		}
	}
	return nil
}

func TestKeyViewShape(t *testing.T) {
	repo := &fakeRepo{keys: []*Key{
		{ID: uuid.New(), Key: "rzp_live_abc123", Active: true},
		{ID: uuid.New(), Key: "rzp_live_old", Active: false},
	}}
	h := NewHandler(repo, zerolog.Nop())

	w := httptest.NewRecorder()
	h.KeyView(w, httptest.NewRequest(http.MethodGet, "/api/keyview", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var got struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(got.Data) != 1 {
		t.Fatalf("data length = %d, want 1 (inactive keys excluded)", len(got.Data))
	}
	// The checkout page reads data[0]._id and data[0].key.
	if got.Data[0]["key"] != "rzp_live_abc123" {
		t.Fatalf("key = %v", got.Data[0]["key"])
	}
	if _, ok := got.Data[0]["_id"]; !ok {
		t.Fatal("missing _id field")
	}
}

func TestKeyViewEmpty(t *testing.T) {
	h := NewHandler(&fakeRepo{}, zerolog.Nop())

	w := httptest.NewRecorder()
	h.KeyView(w, httptest.NewRequest(http.MethodGet, "/api/keyview", nil))

	body := strings.TrimSpace(w.Body.String())
	if body != `{"data":[]}` {
		t.Fatalf("body = %s", body)
	}
}

func TestCreateKeyValidation(t *testing.T) {
	h := NewHandler(&fakeRepo{}, zerolog.Nop())

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/admin/keys", strings.NewReader(`{}`)))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
}
