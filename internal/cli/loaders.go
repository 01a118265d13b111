package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var loadersJSON bool

var loadersCmd = &cobra.Command{
	Use:   "loaders",
	Short: "List registered loaders",
	Long: `List every loader a manifest entry can name, with its version and the content
type it produces. Entries may pin a version range as Name@constraint, for
example RifleLoader@^1.2.`,
	Args: cobra.NoArgs,
	RunE: runLoaders,
}

func init() {
	loadersCmd.Flags().BoolVar(&loadersJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(loadersCmd)
}

type loaderEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

func runLoaders(cmd *cobra.Command, args []string) error {
	reg := newLoaders(contentSource())

	var entries []loaderEntry
	for _, name := range reg.Names() {
		r, _ := reg.Lookup(name)
		typ, err := reg.ContentTypeOf(name)
		if err != nil {
			return err
		}
		entries = append(entries, loaderEntry{Name: name, Version: r.Version.String(), Type: typ.String()})
	}

	if loadersJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tTYPE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Version, e.Type)
	}
	return w.Flush()
}
