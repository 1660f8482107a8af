package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/icon"
	"github.com/youngoor/youngoor/style"
)

// printAuthHint tells the user how to store a credential after a failure that needs one.
func printAuthHint(err error) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Sign-in required", icon.Get(icon.Lock)))
	body := style.New().Foreground(style.Text).Render("The requested quality or resource is only served to signed-in accounts.")
	suggestion := fmt.Sprintf(
		"\n\nStore a credential, then run the same command again:\n  %s\n\nOr pick a lower tier, see:\n  %s",
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.Youngoor+" auth login"),
		style.New().Foreground(style.AccentColor).Bold(true).Render(constant.Youngoor+" quality"),
	)

	_, _ = fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			style.Faint(err.Error()),
			suggestion,
		),
	))
}
