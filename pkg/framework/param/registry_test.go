package param

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistryDeclare(t *testing.T) {
	reg := NewRegistry()

	drive, err := reg.Declare("Drive", 0.01, 1, 0.0001, 1)
	if err != nil {
		t.Fatalf("Declare failed: %v", err)
	}
	if _, err := reg.Declare("Distortion", 0.01, 25, 0.00001, 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	if reg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", reg.Count())
	}
	if reg.Get("Drive") != drive {
		t.Error("Get should return the declared parameter")
	}
	if reg.Get("Missing") != nil {
		t.Error("Get should return nil for unknown names")
	}

	all := reg.All()
	if len(all) != 2 || all[0].Name != "Drive" || all[1].Name != "Distortion" {
		t.Errorf("All() should keep declaration order, got %v", all)
	}
}

func TestRegistryConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		def      float64
		res      float64
		want     error
	}{
		{"Equal", 1, 1, 1, 0, ErrInvalidRange},
		{"Inverted", 2, 1, 1.5, 0, ErrInvalidRange},
		{"DefaultBelow", 0, 1, -1, 0, ErrInvalidRange},
		{"DefaultAbove", 0, 1, 2, 0, ErrInvalidRange},
		{"NegativeResolution", 0, 1, 0.5, -0.1, ErrInvalidRange},
		{"", 0, 1, 0.5, 0, ErrInvalidRange},
	}

	for _, test := range tests {
		reg := NewRegistry()
		_, err := reg.Declare(test.name, test.min, test.max, test.res, test.def)
		if !errors.Is(err, test.want) {
			t.Errorf("Declare(%q, %g, %g) error = %v, want %v", test.name, test.min, test.max, err, test.want)
		}
		if reg.Count() != 0 {
			t.Errorf("failed Declare(%q) should not register anything", test.name)
		}
	}

	t.Run("Duplicate", func(t *testing.T) {
		reg := NewRegistry()
		if _, err := reg.Declare("Mix", 0.01, 1, 0.0001, 1); err != nil {
			t.Fatalf("Declare failed: %v", err)
		}
		_, err := reg.Declare("Mix", 0, 2, 0, 1)
		if !errors.Is(err, ErrDuplicateParameter) {
			t.Errorf("duplicate Declare error = %v, want ErrDuplicateParameter", err)
		}
	})

	t.Run("AddIsAllOrNothing", func(t *testing.T) {
		reg := NewRegistry()
		ok := New("Volume").Range(0.01, 3).Default(1).Build()
		bad := New("Broken").Range(3, 1).Default(2).Build()
		if err := reg.Add(ok, bad); err == nil {
			t.Fatal("Add should fail on an invalid range")
		}
		if reg.Count() != 0 || reg.Get("Volume") != nil {
			t.Error("a failed Add should leave the registry untouched")
		}
	})
}

func TestRegistryValueAndSet(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Declare("Volume", 0.01, 3, 0.0001, 1); err != nil {
		t.Fatalf("Declare failed: %v", err)
	}

	tests := []struct {
		input    float64
		expected float64
	}{
		{2.5, 2.5},
		{10, 3},
		{0, 0.01},
	}
	for _, test := range tests {
		if err := reg.Set("Volume", test.input); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := reg.Value("Volume")
		if err != nil {
			t.Fatalf("Value failed: %v", err)
		}
		if got != test.expected {
			t.Errorf("Set(%g) then Value() = %g, want %g", test.input, got, test.expected)
		}
	}

	if err := reg.Set("Nope", 1); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Set on unknown name error = %v", err)
	}
	if _, err := reg.Value("Nope"); !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("Value on unknown name error = %v", err)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Declare("Drive", 0.01, 1, 0.0001, 1)
	reg.Declare("Mix", 0.01, 1, 0.0001, 1)
	reg.Set("Mix", 0.3)

	snap := reg.SnapshotAll()
	if len(snap) != 2 || snap["Drive"] != 1 || snap["Mix"] != 0.3 {
		t.Errorf("SnapshotAll() = %v", snap)
	}

	values := make([]float64, 4)
	if n := reg.ValuesInto(values); n != 2 {
		t.Fatalf("ValuesInto wrote %d values, want 2", n)
	}
	if values[0] != 1 || values[1] != 0.3 {
		t.Errorf("ValuesInto = %v", values[:2])
	}

	short := make([]float64, 1)
	if n := reg.ValuesInto(short); n != 1 || short[0] != 1 {
		t.Errorf("ValuesInto with short dst = %d %v", n, short)
	}

	allocs := testing.AllocsPerRun(1000, func() {
		reg.ValuesInto(values)
	})
	if allocs != 0 {
		t.Errorf("ValuesInto allocated %.1f times per run", allocs)
	}

	reg.ResetAll()
	if v, _ := reg.Value("Mix"); v != 1 {
		t.Errorf("ResetAll should restore defaults, Mix = %g", v)
	}
}

func TestRegistryConcurrentReadsDuringSet(t *testing.T) {
	reg := NewRegistry()
	reg.Declare("Drive", 0.01, 1, 0.0001, 1)
	reg.Declare("Distortion", 0.01, 25, 0.00001, 1)

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 5000; i++ {
			reg.Set("Drive", float64(i%3)-0.5)
			reg.Set("Distortion", float64(i%60))
		}
		close(done)
	}()

	values := make([]float64, 2)
	for {
		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
		reg.ValuesInto(values)
		if values[0] < 0.01 || values[0] > 1 || values[1] < 0.01 || values[1] > 25 {
			t.Fatalf("read out-of-range values %v", values)
		}
	}
}
