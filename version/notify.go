package version

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/viper"
	"github.com/youngoor/youngoor/color"
	"github.com/youngoor/youngoor/constant"
	"github.com/youngoor/youngoor/key"
	"github.com/youngoor/youngoor/style"
)

// Newer returns the latest version if it is ahead of the running one.
func Newer(ctx context.Context) (string, bool) {
	latest, err := Latest(ctx)
	if err != nil {
		return "", false
	}

	comp, err := Compare(latest, constant.Version)
	if err != nil || comp <= 0 {
		return "", false
	}
	return latest, true
}

// Notify writes a notice to out when a newer release exists.
func Notify(out io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	latest, ok := Newer(ctx)
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(out, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/youngoor/youngoor/releases/tag/v"+latest),
	)
}
