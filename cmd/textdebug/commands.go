package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	textdebug "github.com/glyphlab/go-textdebug"
	"github.com/glyphlab/go-textdebug/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in overlay presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range preset.Names() {
			opt, err := preset.Get(name)
			if err != nil {
				return err
			}
			cmd.Printf("%-10s %s\n", name, renderSummary(opt))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <preset|file>",
	Short: "Render a preset's overlay colors as swatches",
	Long: `show resolves its argument first as a built-in preset name, then as a
preset file path (.toml, .yaml, .yml), and prints one swatch per set
attribute.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := resolve(args[0])
		if err != nil {
			return err
		}
		if !opt.NeedsDraw() {
			cmd.Println("no visible overlay colors")
			return nil
		}
		for _, a := range swatches(opt) {
			cmd.Println(a)
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate preset files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []string
		for _, path := range args {
			opt, err := preset.Load(path)
			if err != nil {
				log.Error().Err(err).Str("file", path).Msg("invalid preset")
				failed = append(failed, path)
				continue
			}
			cmd.Printf("%s: ok (%s)\n", path, renderSummary(opt))
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d invalid preset file(s): %s", len(failed), strings.Join(failed, ", "))
		}
		return nil
	},
}

// resolve treats arg as a built-in name first, then as a file path.
func resolve(arg string) (*textdebug.DebugOption, error) {
	if opt, err := preset.Get(arg); err == nil {
		return opt, nil
	}
	return preset.Load(arg)
}
