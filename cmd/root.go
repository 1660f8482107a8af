// Package cmd implements the command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/auth"
	"github.com/youngoor/youngoor/color"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/icon"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/provider"
	"github.com/youngoor/youngoor/query"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/style"
	"github.com/youngoor/youngoor/util"
	"github.com/youngoor/youngoor/version"
	"github.com/youngoor/youngoor/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	addResolveFlags(rootCmd)

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("remember", "H", true, "Remember resolved URLs for shell completion")
	lo.Must0(viper.BindPFlag(key.HistoryRememberURLs, rootCmd.PersistentFlags().Lookup("remember")))

	rootCmd.PersistentFlags().Bool("lua", true, "Load Lua sources from the sources directory")
	lo.Must0(viper.BindPFlag(key.SourcesCustom, rootCmd.PersistentFlags().Lookup("lua")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(os.Stderr)
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Youngoor + " [url]",
	Short: "Resolve video pages into direct stream URLs",
	Long: constant.Banner + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Resolve video pages into direct stream URLs"),
	Example: "  " + constant.Youngoor + " https://www.bilibili.com/video/BV1xx411c7mD -q 720p -f mp4",
	Args:    cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		runResolve(cmd, args[0])
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadSources builds the registry of every enabled source with its stored credential.
func loadSources() *provider.Registry {
	return provider.Load(provider.All(), auth.Lookup)
}

func errUnknownSource(name string) error {
	msg := fmt.Sprintf("unknown source %s", style.Fg(color.Red)(name))
	if closest, ok := provider.Closest(name).Get(); ok {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest))
	}
	return errors.New(msg)
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		if source.Retryable(err) {
			printAuthHint(err)
		}
		os.Exit(1)
	}
}
