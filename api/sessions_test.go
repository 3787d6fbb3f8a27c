package api

import (
	"testing"
	"time"

	"kitchhub/core/form"
)

func TestSessionStoreEvictsIdle(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore(func() *form.Engine { return form.NewEngine(form.DefaultSchema()) }, time.Hour)
	store.now = func() time.Time { return now }

	stale, _ := store.Create()
	now = now.Add(30 * time.Minute)
	fresh, _ := store.Create()

	now = now.Add(45 * time.Minute)
	store.Create()

	if store.With(stale, func(*form.Engine) {}) {
		t.Error("stale instance should have been evicted")
	}
	if !store.With(fresh, func(*form.Engine) {}) {
		t.Error("fresh instance should survive")
	}
	if store.Len() != 2 {
		t.Errorf("len = %d, want 2", store.Len())
	}
}

func TestSessionStoreInstancesAreIndependent(t *testing.T) {
	store := NewSessionStore(func() *form.Engine { return form.NewEngine(form.DefaultSchema()) }, 0)
	a, _ := store.Create()
	b, _ := store.Create()

	store.With(a, func(f *form.Engine) { f.Blur("email", form.Text("bad")) })

	store.With(b, func(f *form.Engine) {
		if st := f.State(form.FieldEmail); st.Checked {
			t.Errorf("instance b should be untouched, got %+v", st)
		}
	})
}
