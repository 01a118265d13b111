package cli

import (
	"fmt"

	"github.com/agentx-labs/contentx/internal/config"
	"github.com/agentx-labs/contentx/internal/loader"
	"github.com/agentx-labs/contentx/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check manifests without loading content",
	Long: `Scan every manifest under the content root and report manifests that fail to
parse or validate, entries naming unknown loaders, and entries whose data file
is missing. Unlike load, validate keeps going after a bad manifest. It exits
non-zero when anything is reported.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	src := contentSource()
	scan, err := manifest.Scan(src.Fs(), src.Root(), config.Get(config.KeyManifestName))
	if err != nil {
		return err
	}
	loaders := newLoaders(src)

	var (
		lines    []string
		problems int
	)
	report := func(format string, a ...any) {
		lines = append(lines, fmt.Sprintf(format, a...))
		problems++
	}

	for _, p := range scan.Problems {
		report("%v", p)
		// Error() already names the first issue.
		for _, issue := range p.Issues[min(1, len(p.Issues)):] {
			lines = append(lines, fmt.Sprintf("  %s %s", issue.Path, issue.Message))
		}
	}

	entries := 0
	for _, m := range scan.Manifests {
		for _, e := range m.Descriptor.Data {
			entries++
			if _, err := loaders.ContentTypeOf(e.Loader); err != nil {
				report("%s: entry %q: %v", m.File, e.Key, err)
				continue
			}
			name := loader.LoadContext{RootPath: m.Descriptor.Path, DataName: e.Key}.ResourceName()
			if !src.Exists(name) {
				report("%s: entry %q: no data file for %s", m.File, e.Key, name)
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checked %d manifest(s), %d entries.\n", len(scan.Manifests)+len(scan.Problems), entries)
	if problems == 0 {
		fmt.Fprintln(out, "No problems found.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return fmt.Errorf("%d problem(s) found", problems)
}
