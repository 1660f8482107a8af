package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/youngoor/youngoor/color"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/filesystem"
	"github.com/youngoor/youngoor/icon"
	"github.com/youngoor/youngoor/network"
	"github.com/youngoor/youngoor/provider"
	"github.com/youngoor/youngoor/provider/custom"
	"github.com/youngoor/youngoor/style"
	"github.com/youngoor/youngoor/util"
	"github.com/youngoor/youngoor/where"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and Lua sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress headers in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Only list Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Only list built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sources in dispatch order",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		line := func(p *provider.Provider) {
			if printHeader {
				cmd.Printf("%s %s\n", p.Name, style.Italic(style.Faint(p.ID)))
				return
			}
			cmd.Println(p.Name)
		}

		printBuiltin := func() {
			h("Builtin:")
			lo.ForEach(provider.Builtins(), func(p *provider.Provider, _ int) { line(p) })
		}

		printCustom := func() {
			h("Custom:")
			lo.ForEach(provider.Customs(), func(p *provider.Provider, _ int) { line(p) })
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func completionCustomSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	sources, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
		name := item.Name()
		if !strings.HasSuffix(name, provider.CustomProviderExtension) {
			return "", false
		}

		return util.FileStem(filepath.Base(name)), true
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Name of the Lua source to remove")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", completionCustomSources))
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+provider.CustomProviderExtension)
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)
}

var sourcesInstallCmd = &cobra.Command{
	Use:     "install <url>",
	Short:   "Download a Lua source into the sources directory",
	Args:    cobra.ExactArgs(1),
	Example: "  youngoor sources install https://example.com/sources/my_site.lua",
	Run: func(cmd *cobra.Command, args []string) {
		path, updated, err := provider.Install(context.Background(), network.Client, args[0])
		handleErr(err)

		if !updated {
			fmt.Printf("%s %s is up to date\n", icon.Get(icon.Mark), style.Fg(color.Yellow)(util.FileStem(path)))
			return
		}

		if _, err := custom.LoadSource(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s installed %s but it does not load: %s\n", icon.Get(icon.Fail), path, err)
			return
		}
		fmt.Printf("%s installed %s\n", icon.Get(icon.Success), path)
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesCheckCmd)
	sourcesCheckCmd.SetOut(os.Stdout)
}

var sourcesCheckCmd = &cobra.Command{
	Use:   "check <file> [url]",
	Short: "Load a Lua source file and report what it serves",
	Long: `Load a Lua source file in the embedded Lua 5.1 VM, check that it defines the required functions
and list its tiers. When a page URL is given, report whether the source accepts it.`,
	Args:    cobra.RangeArgs(1, 2),
	Example: "  youngoor sources check ./my_site.lua https://my.site/watch/1",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)

		cmd.Printf("%s %s %s\n", icon.Get(icon.Lua), style.Bold(src.Name()), style.Faint(src.ID()))
		for _, d := range src.Dimension() {
			cmd.Printf("  %s %s\n", style.Fg(color.Yellow)(d.Tier.String()), style.Faint(d.Label))
		}

		if len(args) < 2 {
			return
		}

		u, err := url.Parse(args[1])
		handleErr(err)

		if src.Valid(u) {
			cmd.Printf("%s accepts %s\n", icon.Get(icon.Success), u)
		} else {
			cmd.Printf("%s rejects %s\n", icon.Get(icon.Fail), u)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "Name of the new source")
	sourcesGenCmd.Flags().StringP("url", "u", "", "Base URL of the platform")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua source",
	Long:  `Generate a Lua source with the functions every source defines.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name        string
			URL         string
			Author      string
			App         string
			ValidFn     string
			EpisodesFn  string
			StreamFn    string
			DimensionFn string
		}{
			Name:        lo.Must(cmd.Flags().GetString("name")),
			URL:         lo.Must(cmd.Flags().GetString("url")),
			Author:      author,
			App:         constant.Youngoor,
			ValidFn:     constant.ValidFn,
			EpisodesFn:  constant.EpisodesFn,
			StreamFn:    constant.StreamFn,
			DimensionFn: constant.DimensionFn,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+provider.CustomProviderExtension)
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))

		cmd.Println(target)
	},
}
