package content

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

const (
	testWeapon Type = "weapon"
	testArmor  Type = "armor"
)

type weapon struct {
	ID     string
	Damage int
}

func (w *weapon) ContentID() string { return w.ID }
func (w *weapon) ContentType() Type { return testWeapon }

type armor struct {
	ID    string
	Value int
}

func (a *armor) ContentID() string { return a.ID }
func (a *armor) ContentType() Type { return testArmor }

var (
	weaponKind = NewKind(testWeapon, func() *weapon { return &weapon{} })
	armorKind  = NewKind(testArmor, func() *armor { return &armor{} })
)

func ids(seq func(func(Object) bool)) []string {
	var out []string
	for obj := range seq {
		out = append(out, obj.ContentID())
	}
	return out
}

func TestAddGetByID_RoundTrip(t *testing.T) {
	c := NewCollection()
	inserted := []Object{
		&weapon{ID: "rifle_01", Damage: 10},
		&weapon{ID: "pistol_01", Damage: 4},
		&armor{ID: "rifle_01", Value: 3}, // same id, different type
		&armor{ID: "vest", Value: 5},
	}
	for _, obj := range inserted {
		if err := c.Add(obj.ContentType(), obj); err != nil {
			t.Fatalf("Add(%s/%s) error: %v", obj.ContentType(), obj.ContentID(), err)
		}
	}

	for _, want := range inserted {
		got, err := c.GetByID(want.ContentType(), want.ContentID())
		if err != nil {
			t.Fatalf("GetByID(%s, %s) error: %v", want.ContentType(), want.ContentID(), err)
		}
		if got != want {
			t.Errorf("GetByID(%s, %s) = %p, want %p", want.ContentType(), want.ContentID(), got, want)
		}
	}
}

func TestAdd_DuplicateRetainsFirst(t *testing.T) {
	c := NewCollection()
	first := &weapon{ID: "rifle_01", Damage: 10}
	second := &weapon{ID: "rifle_01", Damage: 99}

	if err := c.Add(testWeapon, first); err != nil {
		t.Fatalf("first Add error: %v", err)
	}
	err := c.Add(testWeapon, second)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("second Add error = %v, want ErrDuplicateID", err)
	}
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("error %T is not *DuplicateIDError", err)
	}
	if dup.Type != testWeapon || dup.ID != "rifle_01" {
		t.Errorf("DuplicateIDError = %+v, want weapon/rifle_01", dup)
	}

	got, err := Get(c, weaponKind, "rifle_01")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != first || got.Damage != 10 {
		t.Errorf("Get returned %+v, want the first object", got)
	}
	if n := c.Len(testWeapon); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
}

func TestAdd_MissingID(t *testing.T) {
	c := NewCollection()
	err := c.Add(testWeapon, &weapon{})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("Add error = %v, want ErrMissingID", err)
	}
	if len(c.Types()) != 0 {
		t.Errorf("Types = %v, want none after rejected add", c.Types())
	}
}

func TestGetByID_NotRegisteredVsNotFound(t *testing.T) {
	c := NewCollection()
	if err := c.Add(testWeapon, &weapon{ID: "rifle_01"}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	_, err := c.GetByID(testArmor, "vest")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("unpopulated type error = %v, want ErrNotRegistered", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("unpopulated type error must not match ErrNotFound")
	}

	_, err = c.GetByID(testWeapon, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id error = %v, want ErrNotFound", err)
	}
	var le *LookupError
	if !errors.As(err, &le) || le.ID != "missing" || le.Type != testWeapon {
		t.Errorf("LookupError = %+v, want weapon/missing", le)
	}
}

func TestFirst(t *testing.T) {
	c := NewCollection()
	if _, ok := c.First(testWeapon); ok {
		t.Fatal("First on empty collection returned ok")
	}
	for i := 0; i < 3; i++ {
		if err := c.Add(testWeapon, &weapon{ID: fmt.Sprintf("w%d", i)}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	got, ok := c.First(testWeapon)
	if !ok || got.ContentID() != "w0" {
		t.Errorf("First = %v, %v; want w0, true", got, ok)
	}

	typed, ok := FirstOf(c, weaponKind)
	if !ok || typed.ID != "w0" {
		t.Errorf("FirstOf = %+v, %v; want w0, true", typed, ok)
	}
	if _, ok := FirstOf(c, armorKind); ok {
		t.Error("FirstOf on unpopulated kind returned ok")
	}
}

func TestAll_OrderAndRestartable(t *testing.T) {
	c := NewCollection()
	want := []string{"delta", "alpha", "charlie", "bravo"}
	for _, id := range want {
		if err := c.Add(testWeapon, &weapon{ID: id}); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	// A rejected duplicate must not change membership.
	if err := c.Add(testWeapon, &weapon{ID: "alpha"}); err == nil {
		t.Fatal("expected duplicate error")
	}

	seq := c.All(testWeapon)
	first := ids(seq)
	second := ids(seq)
	if !slices.Equal(first, want) {
		t.Errorf("All = %v, want %v", first, want)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second iteration = %v, want %v", second, first)
	}
	if len(first) != c.Len(testWeapon) {
		t.Errorf("All length %d != Len %d", len(first), c.Len(testWeapon))
	}

	var typed []int
	for w := range AllOf(c, weaponKind) {
		typed = append(typed, len(w.ID))
	}
	if len(typed) != len(want) {
		t.Errorf("AllOf yielded %d objects, want %d", len(typed), len(want))
	}

	if got := ids(c.All(testArmor)); len(got) != 0 {
		t.Errorf("All on unpopulated type = %v, want empty", got)
	}
}

func TestAll_EarlyBreak(t *testing.T) {
	c := NewCollection()
	for _, id := range []string{"a", "b", "c"} {
		_ = c.Add(testWeapon, &weapon{ID: id})
	}
	var seen []string
	for obj := range c.All(testWeapon) {
		seen = append(seen, obj.ContentID())
		if len(seen) == 2 {
			break
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("seen = %v, want [a b]", seen)
	}
}

func TestTypes_PopulationOrder(t *testing.T) {
	c := NewCollection()
	_ = c.Add(testArmor, &armor{ID: "vest"})
	_ = c.Add(testWeapon, &weapon{ID: "rifle"})
	_ = c.Add(testArmor, &armor{ID: "helmet"})

	got := c.Types()
	want := []Type{testArmor, testWeapon}
	if !slices.Equal(got, want) {
		t.Errorf("Types = %v, want %v", got, want)
	}
}

func TestGet_TypeMismatchPanics(t *testing.T) {
	c := NewCollection()
	// An armor stored under the weapon token is a wiring bug.
	if err := c.Add(testWeapon, &armor{ID: "vest"}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on type mismatch")
		}
	}()
	_, _ = Get(c, weaponKind, "vest")
}

func TestGet_LookupErrorsPassThrough(t *testing.T) {
	c := NewCollection()
	got, err := Get(c, weaponKind, "rifle")
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Get error = %v, want ErrNotRegistered", err)
	}
	if got != nil {
		t.Errorf("Get returned %v on error, want nil", got)
	}
}

func TestNewKind_PanicsOnEmptyType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty type")
		}
	}()
	NewKind(Type(""), func() *weapon { return &weapon{} })
}

func TestIsNil(t *testing.T) {
	var nilWeapon *weapon
	tests := []struct {
		name string
		obj  Object
		want bool
	}{
		{"nil interface", nil, true},
		{"nil pointer", nilWeapon, true},
		{"value", &weapon{ID: "w"}, false},
	}
	for _, tt := range tests {
		if got := IsNil(tt.obj); got != tt.want {
			t.Errorf("IsNil(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
