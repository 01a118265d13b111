package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/spf13/afero"
)

const weaponType content.Type = "weapon"

type weapon struct {
	ID     string `yaml:"id" json:"id" toml:"id"`
	Damage int    `yaml:"damage" json:"damage" toml:"damage"`
}

func (w *weapon) ContentID() string         { return w.ID }
func (w *weapon) ContentType() content.Type { return weaponType }

var weaponKind = content.NewKind(weaponType, func() *weapon { return &weapon{} })

// rifleLoader declares its contract one embedding level down.
type rifleLoader struct {
	Decoder[*weapon]
}

// sniperLoader declares it two levels down.
type sniperLoader struct {
	rifleLoader
}

// countingLoader is a decorator; its content type is only reachable via Unwrap.
type countingLoader struct {
	inner Loader
	calls int
}

func (c *countingLoader) LoadObject(ctx LoadContext) (content.Object, error) {
	c.calls++
	return c.inner.LoadObject(ctx)
}

func (c *countingLoader) Unwrap() any { return c.inner }

// notALoader implements nothing.
type notALoader struct{}

// declaresOnly claims a type but cannot load.
type declaresOnly struct{}

func (declaresOnly) Produces() content.Type { return weaponType }

// staticTyped is a hand-written typed loader lifted with Erase.
type staticTyped struct{}

func (staticTyped) Load(ctx LoadContext) (*weapon, error) {
	return &weapon{ID: ctx.DataName, Damage: 1}, nil
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "content/Weapons/rifle.yaml", []byte("id: rifle_01\ndamage: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := NewRegistry(resource.NewFileProvider(fsys, "content"))

	r.MustRegister("Decoder", "1.0.0", func(res resource.Provider) any {
		d := NewDecoder(weaponKind, res)
		return &d
	})
	r.MustRegister("RifleLoader", "1.2.0", func(res resource.Provider) any {
		return &rifleLoader{NewDecoder(weaponKind, res)}
	})
	r.MustRegister("SniperLoader", "2.0.0", func(res resource.Provider) any {
		return &sniperLoader{rifleLoader{NewDecoder(weaponKind, res)}}
	})
	r.MustRegister("CountingLoader", "1.0.0", func(res resource.Provider) any {
		return &countingLoader{inner: &countingLoader{inner: &rifleLoader{NewDecoder(weaponKind, res)}}}
	})
	r.MustRegister("StaticLoader", "0.1.0", func(resource.Provider) any {
		return Erase(weaponKind, staticTyped{})
	})
	r.MustRegister("Unrelated", "1.0.0", func(resource.Provider) any { return notALoader{} })
	r.MustRegister("DeclaresOnly", "1.0.0", func(resource.Provider) any { return declaresOnly{} })
	return r
}

func TestContentTypeOf_AnyDepth(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{"Decoder", "RifleLoader", "SniperLoader", "CountingLoader", "StaticLoader"} {
		t.Run(id, func(t *testing.T) {
			got, err := r.ContentTypeOf(id)
			if err != nil {
				t.Fatalf("ContentTypeOf(%s) error: %v", id, err)
			}
			if got != weaponType {
				t.Errorf("ContentTypeOf(%s) = %q, want %q", id, got, weaponType)
			}
		})
	}
}

func TestContentTypeOf_Unsupported(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.ContentTypeOf("Unrelated")
	if !errors.Is(err, ErrUnsupportedLoaderContract) {
		t.Fatalf("ContentTypeOf(Unrelated) error = %v, want ErrUnsupportedLoaderContract", err)
	}
	var uce *UnsupportedContractError
	if !errors.As(err, &uce) || uce.Identifier != "Unrelated" {
		t.Errorf("error = %#v, want identifier Unrelated", err)
	}

	// Memoized answer is stable.
	_, again := r.ContentTypeOf("Unrelated")
	if !errors.Is(again, ErrUnsupportedLoaderContract) {
		t.Errorf("second ContentTypeOf error = %v", again)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{"Unknown.Loader", "", "RifleLoader@^2", "RifleLoader@not a constraint"} {
		_, err := r.Resolve(id)
		if !errors.Is(err, ErrLoaderNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrLoaderNotFound", id, err)
		}
		_, err = r.ContentTypeOf(id)
		if !errors.Is(err, ErrLoaderNotFound) {
			t.Errorf("ContentTypeOf(%q) error = %v, want ErrLoaderNotFound", id, err)
		}
	}

	_, err := r.Resolve("RifleLoader@^2")
	if !strings.Contains(err.Error(), "1.2.0") {
		t.Errorf("constraint error %q should name the registered version", err)
	}
}

func TestResolve_VersionConstraint(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{"RifleLoader@^1.0", "RifleLoader@>=1.2.0", "SniperLoader@2.x", "RifleLoader@~1.2"} {
		if _, err := r.Resolve(id); err != nil {
			t.Errorf("Resolve(%q) error: %v", id, err)
		}
	}
}

func TestResolve_Unsupported(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{"Unrelated", "DeclaresOnly"} {
		_, err := r.Resolve(id)
		if !errors.Is(err, ErrUnsupportedLoaderContract) {
			t.Errorf("Resolve(%s) error = %v, want ErrUnsupportedLoaderContract", id, err)
		}
	}
}

func TestResolve_FreshInstances(t *testing.T) {
	r := newTestRegistry(t)
	a, err := r.Resolve("CountingLoader")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	b, err := r.Resolve("CountingLoader")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if a == b {
		t.Error("Resolve returned the same instance twice")
	}

	ctx := LoadContext{RootPath: "Weapons", DataName: "rifle"}
	if _, err := a.LoadObject(ctx); err != nil {
		t.Fatalf("LoadObject error: %v", err)
	}
	if got := b.(*countingLoader).calls; got != 0 {
		t.Errorf("second instance saw %d calls, want 0", got)
	}
}

func TestResolve_LoadsThroughEveryShape(t *testing.T) {
	r := newTestRegistry(t)
	ctx := LoadContext{RootPath: "Weapons", DataName: "rifle"}
	for _, id := range []string{"Decoder", "RifleLoader", "SniperLoader", "CountingLoader"} {
		t.Run(id, func(t *testing.T) {
			l, err := r.Resolve(id)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			obj, err := l.LoadObject(ctx)
			if err != nil {
				t.Fatalf("LoadObject error: %v", err)
			}
			w, ok := obj.(*weapon)
			if !ok {
				t.Fatalf("LoadObject returned %T, want *weapon", obj)
			}
			if w.ID != "rifle_01" || w.Damage != 10 {
				t.Errorf("loaded %+v, want rifle_01/10", w)
			}
		})
	}

	l, err := r.Resolve("StaticLoader")
	if err != nil {
		t.Fatalf("Resolve(StaticLoader) error: %v", err)
	}
	obj, err := l.LoadObject(ctx)
	if err != nil || obj.ContentID() != "rifle" {
		t.Errorf("StaticLoader LoadObject = %v, %v", obj, err)
	}
}

func TestRegister_Validation(t *testing.T) {
	r := NewRegistry(nil)
	factory := func(resource.Provider) any { return notALoader{} }

	if err := r.Register("A", "1.0.0", factory); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	tests := []struct {
		name, version string
		factory       Factory
	}{
		{"A", "1.0.0", factory},      // duplicate
		{"", "1.0.0", factory},       // empty name
		{"B@1", "1.0.0", factory},    // reserved separator
		{"C", "not-semver", factory}, // bad version
		{"D", "1.0.0", nil},          // nil factory
	}
	for _, tt := range tests {
		if err := r.Register(tt.name, tt.version, tt.factory); err == nil {
			t.Errorf("Register(%q, %q) succeeded, want error", tt.name, tt.version)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRegister duplicate did not panic")
		}
	}()
	r.MustRegister("A", "1.0.0", factory)
}

func TestNamesAndLookup(t *testing.T) {
	r := newTestRegistry(t)
	names := r.Names()
	if len(names) != 7 || names[0] != "CountingLoader" {
		t.Errorf("Names = %v", names)
	}
	reg, ok := r.Lookup("RifleLoader")
	if !ok || reg.Version.String() != "1.2.0" {
		t.Errorf("Lookup(RifleLoader) = %+v, %v", reg, ok)
	}
	if _, ok := r.Lookup("RifleLoader@^1"); ok {
		t.Error("Lookup takes a bare name, not an identifier")
	}
}

func TestParseIdentifier(t *testing.T) {
	name, c, err := ParseIdentifier("RifleLoader")
	if err != nil || name != "RifleLoader" || c != nil {
		t.Errorf("ParseIdentifier(RifleLoader) = %q, %v, %v", name, c, err)
	}
	name, c, err = ParseIdentifier("RifleLoader@^1.2")
	if err != nil || name != "RifleLoader" || c == nil {
		t.Errorf("ParseIdentifier(RifleLoader@^1.2) = %q, %v, %v", name, c, err)
	}
	if _, _, err := ParseIdentifier("@1.0"); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestBlank(t *testing.T) {
	r := newTestRegistry(t)
	for _, id := range []string{"SniperLoader", "CountingLoader", "StaticLoader"} {
		obj, err := r.Blank(id)
		if err != nil {
			t.Fatalf("Blank(%s) error: %v", id, err)
		}
		if _, ok := obj.(*weapon); !ok {
			t.Errorf("Blank(%s) = %T, want *weapon", id, obj)
		}
	}
	if _, err := r.Blank("DeclaresOnly"); !errors.Is(err, ErrUnsupportedLoaderContract) {
		t.Errorf("Blank(DeclaresOnly) error = %v", err)
	}
	if _, err := r.Blank("Nope"); !errors.Is(err, ErrLoaderNotFound) {
		t.Errorf("Blank(Nope) error = %v", err)
	}
}
