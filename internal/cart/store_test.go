package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"strings"
	"testing"

	"shopfront/internal/domain"
	"shopfront/internal/kvstore"
)

func testStore(kv kvstore.Store) *Store {
	return New(kv, "", log.New(io.Discard, "", 0))
}

func TestAdd_MergesByName(t *testing.T) {
	ctx := context.Background()
	s := testStore(kvstore.NewMemory())

	for _, name := range []string{"Mug", "Mug", "Pen"} {
		price := "9.99"
		if name == "Pen" {
			price = "1.50"
		}
		if _, err := s.Add(ctx, name, price, "1"); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	want := []domain.LineItem{
		{Name: "Mug", Price: 9.99, Quantity: 2, ID: "1"},
		{Name: "Pen", Price: 1.50, Quantity: 1, ID: "1"},
	}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected items: %+v", got)
	}
	if s.Count() != 3 {
		t.Fatalf("expected count 3, got %d", s.Count())
	}
}

func TestAdd_RejectsInvalidItems(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	s := testStore(kv)

	cases := []struct {
		name  string
		price string
	}{
		{"", "9.99"},
		{"   ", "9.99"},
		{"Mug", ""},
		{"Mug", "not-a-number"},
		{"Mug", "NaN"},
		{"Mug", "+Inf"},
		{"Mug", "-1"},
	}
	for _, tc := range cases {
		if _, err := s.Add(ctx, tc.name, tc.price, ""); !errors.Is(err, domain.ErrInvalidItem) {
			t.Fatalf("Add(%q, %q): expected ErrInvalidItem, got %v", tc.name, tc.price, err)
		}
	}

	if len(s.Items()) != 0 {
		t.Fatalf("cart mutated by rejected adds: %+v", s.Items())
	}
	if _, err := kv.Get(ctx, StorageKey); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("rejected add persisted something: %v", err)
	}
}

func TestAdd_DefaultsID(t *testing.T) {
	ctx := context.Background()
	s := testStore(kvstore.NewMemory())

	item, err := s.Add(ctx, "Mug", "9.99", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.HasPrefix(item.ID, "product-") {
		t.Fatalf("expected timestamp-derived id, got %q", item.ID)
	}
}

func TestRemove_BoundsAndOrder(t *testing.T) {
	ctx := context.Background()
	s := testStore(kvstore.NewMemory())
	for _, name := range []string{"A", "B", "C"} {
		if _, err := s.Add(ctx, name, "1.00", "1"); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}

	s.Remove(ctx, 1)
	got := s.Items()
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Fatalf("unexpected items after remove: %+v", got)
	}

	for _, idx := range []int{-1, 2, 99} {
		s.Remove(ctx, idx)
	}
	if len(s.Items()) != 2 {
		t.Fatalf("out-of-range remove mutated cart: %+v", s.Items())
	}
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	s := testStore(kvstore.NewMemory())

	if got := s.Totals(); got != (domain.Totals{}) {
		t.Fatalf("expected zero totals for empty cart, got %+v", got)
	}

	for _, add := range []struct{ name, price string }{
		{"Mug", "9.99"}, {"Mug", "9.99"}, {"Pen", "1.50"},
	} {
		if _, err := s.Add(ctx, add.name, add.price, "1"); err != nil {
			t.Fatalf("Add(%s): %v", add.name, err)
		}
	}

	got := s.Totals()
	want := domain.Totals{Subtotal: 21.48, Tax: 3.22, Total: 24.70}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()

	first := testStore(kv)
	first.Load(ctx)
	if _, err := first.Add(ctx, "Mug", "9.99", "7"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := first.Add(ctx, "Pen", "1.50", ""); err != nil {
		t.Fatalf("Add: %v", err)
	}

	second := testStore(kv)
	second.Load(ctx)
	if !reflect.DeepEqual(first.Items(), second.Items()) {
		t.Fatalf("round trip mismatch: %+v vs %+v", first.Items(), second.Items())
	}
}

func TestLoad_MalformedDataMeansEmptyCart(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	if err := kv.Set(ctx, StorageKey, "{definitely not an array"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := testStore(kv)
	s.Load(ctx)
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Items())
	}
}

type failingKV struct{ err error }

func (f *failingKV) Get(context.Context, string) (string, error) { return "", f.err }
func (f *failingKV) Set(context.Context, string, string) error   { return f.err }

func TestLoad_StorageErrorMeansEmptyCart(t *testing.T) {
	s := testStore(&failingKV{err: errors.New("boom")})
	s.Load(context.Background())
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Items())
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	s := testStore(kv)
	if _, err := s.Add(ctx, "Mug", "9.99", "1"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	s.Clear(ctx)
	if len(s.Items()) != 0 || s.Count() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
	raw, err := kv.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected persisted empty list, got %q", raw)
	}
}
