package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/contentx/internal/content"
	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/spf13/cobra"
)

var getFormat string

var getCmd = &cobra.Command{
	Use:   "get <type> <id>",
	Short: "Print one registered object",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getFormat, "format", "yaml", "Output format (yaml, json, toml)")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	format, err := resource.ParseFormat(getFormat)
	if err != nil {
		return err
	}
	codec, err := resource.CodecFor(format)
	if err != nil {
		return err
	}

	result, err := loadContent()
	if err != nil {
		return err
	}

	obj, err := result.Collection.GetByID(content.Type(args[0]), args[1])
	if err != nil {
		return err
	}
	text, err := codec.Marshal(obj)
	if err != nil {
		return fmt.Errorf("encoding %s %q: %w", args[0], args[1], err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	if err == nil && !strings.HasSuffix(text, "\n") {
		_, err = fmt.Fprintln(cmd.OutOrStdout())
	}
	return err
}
