package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/inline"
	"github.com/youngoor/youngoor/internal/ui"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/query"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/util"
)

// addResolveFlags registers the resolve flags on cmd. Unset flags fall back to the config.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("quality", "q", "", "Resolution tier, e.g. 1080p (default from "+key.ResolveQuality+")")
	cmd.Flags().StringP("format", "f", "", "Container: flv, mp4 or dash (default from "+key.ResolveFormat+")")
	cmd.Flags().StringP("episodes", "e", "", "Episode selector (default from "+key.ResolveEpisodes+")")
	cmd.Flags().BoolP("json", "j", false, "Write a single JSON document")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file")
	cmd.Flags().Bool("no-progress", false, "Do not show the progress spinner")

	lo.Must0(cmd.RegisterFlagCompletionFunc("quality", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(source.Tiers(), func(t source.Tier, _ int) string {
			return t.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(source.Containers(), func(c source.Container, _ int) string {
			return c.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(cmd.RegisterFlagCompletionFunc("episodes", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "first", "last"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	addResolveFlags(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Resolve a page URL into stream URLs",
	Long: `Resolve every episode behind a page URL into direct stream URLs.

Episode selectors:
  all - every episode
  first - first episode
  last - last episode
  [number] - episode by index (starting from 1)
  [from]-[to] - episodes by index range, inclusive
  @[substring]@ - episodes whose title contains the substring

Tiers from 720p60 upwards need a credential set with "auth login".`,
	Example: `  youngoor resolve https://www.bilibili.com/video/BV1xx411c7mD
  youngoor resolve https://www.bilibili.com/bangumi/media/md28229233 -e 1-3 -q 720p -f mp4 -j`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		runResolve(cmd, args[0])
	},
}

// flagOrConfig returns the flag value when it was set, the config value otherwise.
func flagOrConfig(cmd *cobra.Command, flag, configKey string) string {
	if cmd.Flags().Changed(flag) {
		return lo.Must(cmd.Flags().GetString(flag))
	}
	return viper.GetString(configKey)
}

func runResolve(cmd *cobra.Command, rawURL string) {
	quality, err := source.ParseQuality(
		flagOrConfig(cmd, "quality", key.ResolveQuality),
		flagOrConfig(cmd, "format", key.ResolveFormat),
	)
	handleErr(err)

	filter, err := inline.ParseEpisodesFilter(flagOrConfig(cmd, "episodes", key.ResolveEpisodes))
	handleErr(err)

	var (
		writer io.Writer = os.Stdout
		width  int
	)

	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)
		defer util.Ignore(file.Close)
		writer = file
	} else if w, _, err := util.TerminalSize(); err == nil {
		width = w
	}

	progress := mo.None[inline.Progress]()
	if viper.GetBool(key.CliProgress) && !lo.Must(cmd.Flags().GetBool("no-progress")) && ui.Interactive(os.Stderr) {
		progress = mo.Some[inline.Progress](ui.NewSpinner(os.Stderr))
	}

	options := &inline.Options{
		Out:            writer,
		Sources:        loadSources(),
		URL:            rawURL,
		Quality:        quality,
		Json:           lo.Must(cmd.Flags().GetBool("json")),
		Width:          width,
		EpisodesFilter: mo.Some(filter),
		Progress:       progress,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = inline.Run(ctx, options)
	if err == nil {
		if err := query.Remember(rawURL, 1); err != nil {
			log.Warn(err)
		}
	}
	handleErr(err)
}

func init() {
	resolveCmd.AddCommand(resolveSchemaCmd)
}

var resolveSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the resolve --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(outputSchema()))
	},
}

func outputSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "media", "output", "quality":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	enum := func(values []string) *jsonschema.Schema {
		return &jsonschema.Schema{
			Type: "string",
			Enum: lo.Map(values, func(v string, _ int) any { return v }),
		}
	}

	reflector.Mapper = func(t reflect.Type) *jsonschema.Schema {
		switch t {
		case reflect.TypeOf(source.Tier(0)):
			return enum(lo.Map(source.Tiers(), func(t source.Tier, _ int) string { return t.String() }))
		case reflect.TypeOf(source.Container(0)):
			return enum(lo.Map(source.Containers(), func(c source.Container, _ int) string { return c.String() }))
		}
		return nil
	}

	return reflector.Reflect(&inline.Output{})
}
