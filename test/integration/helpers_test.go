//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/contentx/internal/catalog"
	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/resource"
)

// testEnv holds paths to an isolated content tree.
type testEnv struct {
	HomeDir     string // HOME, so no user config leaks in
	ContentRoot string // content root the manifests live under
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:     t.TempDir(),
		ContentRoot: filepath.Join(t.TempDir(), "content"),
	}
	t.Setenv("HOME", env.HomeDir)

	if err := os.MkdirAll(env.ContentRoot, 0755); err != nil {
		t.Fatalf("creating content root: %v", err)
	}
	return env
}

// setupContent writes a small weapons and armor tree into contentRoot, in
// all three data formats.
func setupContent(t *testing.T, contentRoot string) {
	t.Helper()

	writeManifest(t, contentRoot, "Weapons", `id: weapons
path: Weapons
data:
  - key: rifle
    loader: RifleLoader
  - key: sniper
    loader: SniperRifleLoader@^1.0
  - key: pistol
    loader: PistolLoader
`)
	writeFile(t, filepath.Join(contentRoot, "Weapons", "rifle.yaml"), `id: rifle_01
damage: 10
clip_capacity: 30
fire_rate: 9.5
`)
	writeFile(t, filepath.Join(contentRoot, "Weapons", "sniper.json"), `{"id": "sniper_01", "damage": 85, "clip_capacity": 5, "fire_rate": 0.8}
`)
	writeFile(t, filepath.Join(contentRoot, "Weapons", "pistol.toml"), `id = "pistol_01"
damage = 6
`)

	writeManifest(t, contentRoot, "Armor", `id: armor
path: Armor
data:
  - key: vest
    loader: ArmorLoader
`)
	writeFile(t, filepath.Join(contentRoot, "Armor", "vest.yaml"), `id: vest_01
protection: 40
weight: 3.5
`)
}

// newRegistry returns the catalog registry reading from contentRoot on disk.
func newRegistry(contentRoot string) *loader.Registry {
	return catalog.NewRegistry(resource.NewOSProvider(contentRoot))
}

// writeManifest creates a manifest.yaml at contentRoot/<folder>/manifest.yaml.
func writeManifest(t *testing.T, contentRoot, folder, content string) {
	t.Helper()
	writeFile(t, filepath.Join(contentRoot, folder, "manifest.yaml"), content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
