package cli

import (
	"fmt"

	"github.com/agentx-labs/contentx/internal/config"
	"github.com/agentx-labs/contentx/internal/resource"
	"github.com/agentx-labs/contentx/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	createPath   string
	createLoader string
	createFormat string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold content folders and entries",
}

var createFolderCmd = &cobra.Command{
	Use:   "folder <id>",
	Short: "Create a content folder with an empty manifest",
	Example: `  contentx create folder weapons --path Weapons
  contentx create folder armor --path Items/Armor --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateFolder,
}

var createEntryCmd = &cobra.Command{
	Use:   "entry <manifest-id> <key>",
	Short: "Add an entry and its data file to a manifest",
	Long: `Add an entry to the manifest with the given id and write a data file holding an
empty object of the content type the loader produces. The object's id is set
to the entry key.`,
	Example: `  contentx create entry weapons rifle --loader RifleLoader
  contentx create entry weapons pistol --loader PistolLoader@^1 --format toml`,
	Args: cobra.ExactArgs(2),
	RunE: runCreateEntry,
}

func init() {
	createFolderCmd.Flags().StringVar(&createPath, "path", "", "Folder path relative to the content root (default: the id)")
	createFolderCmd.Flags().StringVar(&createFormat, "format", "yaml", "Manifest format (yaml, json)")
	createEntryCmd.Flags().StringVar(&createLoader, "loader", "", "Loader identifier (required)")
	createEntryCmd.Flags().StringVar(&createFormat, "format", "yaml", "Data file format (yaml, json, toml)")
	_ = createEntryCmd.MarkFlagRequired("loader")

	createCmd.AddCommand(createFolderCmd)
	createCmd.AddCommand(createEntryCmd)
	rootCmd.AddCommand(createCmd)
}

func newScaffolder() (*scaffold.Scaffolder, error) {
	if useBuiltin {
		return nil, fmt.Errorf("the built-in content is read-only")
	}
	src := resource.NewFileProvider(osFs, config.Get(config.KeyContentRoot))
	return scaffold.New(src.Fs(), src.Root(), config.Get(config.KeyManifestName), newLoaders(src)), nil
}

func runCreateFolder(cmd *cobra.Command, args []string) error {
	format, err := resource.ParseFormat(createFormat)
	if err != nil {
		return err
	}
	s, err := newScaffolder()
	if err != nil {
		return err
	}
	path := createPath
	if path == "" {
		path = args[0]
	}

	result, err := s.CreateFolder(args[0], path, format)
	if err != nil {
		return fmt.Errorf("creating folder %q: %w", args[0], err)
	}
	printScaffoldResult(cmd, result)
	return nil
}

func runCreateEntry(cmd *cobra.Command, args []string) error {
	format, err := resource.ParseFormat(createFormat)
	if err != nil {
		return err
	}
	s, err := newScaffolder()
	if err != nil {
		return err
	}

	result, err := s.AddEntry(args[0], args[1], createLoader, format)
	if err != nil {
		return fmt.Errorf("adding entry %q to %q: %w", args[1], args[0], err)
	}
	printScaffoldResult(cmd, result)
	return nil
}

func printScaffoldResult(cmd *cobra.Command, result *scaffold.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote in %s:\n", result.Dir)
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", w)
	}
}
