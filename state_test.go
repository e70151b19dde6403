package swiper_test

import (
	"testing"

	"github.com/go-theft-auto/swiper"
)

func TestMapStateStore(t *testing.T) {
	store := swiper.MapStateStore{}

	if got := swiper.GetState(store, "hero", swiper.ActiveState{Index: -1}); got.Index != -1 {
		t.Errorf("missing state = %+v, want default", got)
	}

	swiper.SetState(store, "hero", swiper.ActiveState{Index: 2, Total: 5})
	if got := swiper.GetState(store, "hero", swiper.ActiveState{}); got.Index != 2 || got.Total != 5 {
		t.Errorf("GetState = %+v, want {2 5}", got)
	}

	// Wrong type falls back to the default.
	if got := swiper.GetState(store, "hero", 7); got != 7 {
		t.Errorf("GetState with wrong type = %v, want 7", got)
	}

	swiper.DeleteState(store, "hero")
	if _, ok := store.Get("hero"); ok {
		t.Error("state still present after delete")
	}
}

func TestStateHelpersNilStore(t *testing.T) {
	swiper.SetState[int](nil, "x", 1)
	swiper.DeleteState(nil, "x")
	if got := swiper.GetState(nil, "x", 3); got != 3 {
		t.Errorf("GetState(nil) = %v, want 3", got)
	}
}
