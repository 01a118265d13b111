package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/spf13/cobra"
)

var (
	listTypeFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered content",
	Long:  `Load the content root and list every registered object by type and id, in load order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Only list objects of this content type")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one registered object for display.
type listEntry struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func runList(cmd *cobra.Command, args []string) error {
	result, err := loadContent()
	if err != nil {
		return err
	}
	c := result.Collection

	types := c.Types()
	if listTypeFilter != "" {
		types = []content.Type{content.Type(listTypeFilter)}
	}

	entries := []listEntry{}
	for _, typ := range types {
		for obj := range c.All(typ) {
			entries = append(entries, listEntry{Type: typ.String(), ID: obj.ContentID()})
		}
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(entries) == 0 {
		if listTypeFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No content matching --type=%s\n", listTypeFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No content loaded.")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tID")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Type, e.ID)
	}
	return w.Flush()
}
