package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/youngoor/youngoor/auth"
	"github.com/youngoor/youngoor/color"
	"github.com/youngoor/youngoor/icon"
	"github.com/youngoor/youngoor/log"
	"github.com/youngoor/youngoor/open"
	"github.com/youngoor/youngoor/provider"
	"github.com/youngoor/youngoor/provider/bilibili"
	"github.com/youngoor/youngoor/source"
	"github.com/youngoor/youngoor/style"
)

func completionSources(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.ID
	}), cobra.ShellCompDirectiveNoFileComp
}

// lookupSource finds an enabled source by name or ID.
func lookupSource(name string) source.Source {
	src, ok := loadSources().Lookup(name).Get()
	if !ok {
		handleErr(errUnknownSource(name))
	}
	return src
}

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the credentials sources send to their platforms",
	Long: `Manage the credentials sources send to their platforms.
Credentials are kept in the system keyring, one per source.

For Bilibili the credential is the value of the SESSDATA cookie of a signed-in
browser session. A full cookie header such as "SESSDATA=...; bili_jct=..." is also accepted.`,
}

func init() {
	authCmd.AddCommand(authLoginCmd)

	authLoginCmd.Flags().StringP("source", "s", bilibili.ID, "Source to store the credential for")
	authLoginCmd.Flags().StringP("token", "t", "", "Credential to store; prompted for when omitted")
	authLoginCmd.Flags().BoolP("open", "O", false, "Open the platform sign-in page in the browser first")
	lo.Must0(authLoginCmd.RegisterFlagCompletionFunc("source", completionSources))
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a credential in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		src := lookupSource(lo.Must(cmd.Flags().GetString("source")))

		if lo.Must(cmd.Flags().GetBool("open")) && src.ID() == bilibili.ID {
			if err := open.Start(bilibili.LoginURL); err != nil {
				log.Warn(err)
				fmt.Fprintf(os.Stderr, "%s open %s to sign in\n", icon.Get(icon.Link), bilibili.LoginURL)
			}
		}

		token := lo.Must(cmd.Flags().GetString("token"))
		if token == "" {
			prompt := survey.Password{
				Message: fmt.Sprintf("%s credential:", src.Name()),
				Help:    "For Bilibili, copy the SESSDATA cookie of bilibili.com from your browser",
			}
			handleErr(survey.AskOne(&prompt, &token, survey.WithValidator(survey.Required)))
		}

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("empty credential"))
		}

		handleErr(auth.SetToken(src.ID(), token))
		fmt.Printf(
			"%s stored credential for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(src.Name()),
		)
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)

	authLogoutCmd.Flags().StringP("source", "s", bilibili.ID, "Source to forget the credential of")
	authLogoutCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	lo.Must0(authLogoutCmd.RegisterFlagCompletionFunc("source", completionSources))
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a credential from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		src := lookupSource(lo.Must(cmd.Flags().GetString("source")))

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Forget the %s credential?", src.Name()),
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		handleErr(auth.DeleteToken(src.ID()))
		fmt.Printf(
			"%s removed credential for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(src.Name()),
		)
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)

	authStatusCmd.Flags().StringP("source", "s", "", "Only show this source")
	lo.Must0(authStatusCmd.RegisterFlagCompletionFunc("source", completionSources))
	authStatusCmd.SetOut(os.Stdout)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which sources hold a credential",
	Run: func(cmd *cobra.Command, args []string) {
		sources := loadSources().Sources()
		if name := lo.Must(cmd.Flags().GetString("source")); name != "" {
			sources = []source.Source{lookupSource(name)}
		}

		for _, src := range sources {
			if src.Token().IsPresent() {
				cmd.Printf("%s %s %s\n", icon.Get(icon.Unlock), style.Bold(src.Name()), style.Fg(style.SuccessColor)("signed in"))
			} else {
				cmd.Printf("%s %s %s\n", icon.Get(icon.Lock), style.Bold(src.Name()), style.Faint("anonymous"))
			}
		}
	},
}
