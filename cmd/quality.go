package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/youngoor/youngoor/color"
	"github.com/youngoor/youngoor/icon"
	"github.com/youngoor/youngoor/provider/bilibili"
	"github.com/youngoor/youngoor/style"
)

func init() {
	rootCmd.AddCommand(qualityCmd)

	qualityCmd.Flags().StringP("source", "s", bilibili.ID, "Source to list the tiers of")
	lo.Must0(qualityCmd.RegisterFlagCompletionFunc("source", completionSources))
	qualityCmd.SetOut(os.Stdout)
}

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "List the resolution tiers a source can serve",
	Run: func(cmd *cobra.Command, args []string) {
		src := lookupSource(lo.Must(cmd.Flags().GetString("source")))
		signedIn := src.Token().IsPresent()

		cmd.Println(style.New().Bold(true).Foreground(color.HiBlue).Render(src.Name() + ":"))
		for _, d := range src.Dimension() {
			mark := " "
			if d.Auth {
				mark = icon.Get(icon.Lock)
				if signedIn {
					mark = icon.Get(icon.Unlock)
				}
			}

			line := fmt.Sprintf("%s %s %s %s",
				mark,
				style.Fg(color.Yellow)(fmt.Sprintf("%-8s", d.Tier)),
				style.Faint(fmt.Sprintf("%4d", d.Code)),
				d.Label,
			)
			if d.Auth && !signedIn {
				line += " " + style.Tag(color.Black, style.WarningColor)("sign-in")
			}
			cmd.Println(line)
		}
	},
}
