package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/roster/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID    int
	Name  string
	Value string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if reg.Count() != 0 {
		t.Errorf("New registry should be empty, got count %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		err := reg.Register("item1", TestItem{ID: 1, Name: "test", Value: "value1"})
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", TestItem{ID: 2})

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", TestItem{ID: 3})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}

		got, _ := reg.Get("item1")
		if got.ID != 1 {
			t.Errorf("duplicate registration replaced the original item: %+v", got)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[TestItem]()
	item := TestItem{ID: 1, Name: "test", Value: "value1"}
	_ = reg.Register("item1", item)

	t.Run("get existing item", func(t *testing.T) {
		got, err := reg.Get("item1")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}

		if got != item {
			t.Errorf("Get() = %+v, want %+v", got, item)
		}
	})

	t.Run("get non-existing item", func(t *testing.T) {
		_, err := reg.Get("nonexistent")

		if !errors.IsErrorCode(err, errors.ErrNotFound) {
			t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
		}
	})
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	reg := New[TestItem]()

	names := []string{"charlie", "alpha", "bravo"}
	for i, name := range names {
		_ = reg.Register(name, TestItem{ID: i})
	}

	list := reg.List()
	if len(list) != len(names) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(names))
	}
	for i, name := range list {
		if name != names[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, names[i])
		}
	}

	items := reg.Items()
	for i, item := range items {
		if item.ID != i {
			t.Errorf("Items()[%d].ID = %d, want %d", i, item.ID, i)
		}
	}
}

func TestHas(t *testing.T) {
	reg := New[TestItem]()
	_ = reg.Register("item1", TestItem{ID: 1})

	tests := []struct {
		name     string
		itemName string
		want     bool
	}{
		{"existing item", "item1", true},
		{"non-existing item", "item2", false},
		{"empty name", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Has(tt.itemName); got != tt.want {
				t.Errorf("Has(%s) = %v, want %v", tt.itemName, got, tt.want)
			}
		})
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[TestItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", goroutineID, i)
				if err := reg.Register(name, TestItem{ID: goroutineID*1000 + i}); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()

	if got, want := reg.Count(), goroutines*itemsPerGoroutine; got != want {
		t.Errorf("Count() after concurrent writes = %d, want %d", got, want)
	}
	if got := len(reg.Items()); got != reg.Count() {
		t.Errorf("Items() length = %d, want %d", got, reg.Count())
	}
}

// Plugin interface for testing
type Plugin interface {
	Name() string
}

type testPlugin struct {
	name string
}

func (p *testPlugin) Name() string { return p.name }

func TestWithInterfaces(t *testing.T) {
	reg := New[Plugin]()

	_ = reg.Register("p1", &testPlugin{name: "plugin1"})
	_ = reg.Register("p2", &testPlugin{name: "plugin2"})

	got, err := reg.Get("p2")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name() != "plugin2" {
		t.Errorf("Get() returned wrong plugin: %s", got.Name())
	}
}
