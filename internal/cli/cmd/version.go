package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/smartkeys/internal/cli/styles"
	"github.com/bnema/smartkeys/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		theme := styles.NewTheme()
		row := func(name, value string) string {
			return theme.Subtle.Render(fmt.Sprintf("%-8s", name)) + theme.Normal.Render(value)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render("smartkeys")+" "+theme.AccentBadge(orDefault(buildInfo.Version, "dev")))
		fmt.Fprintln(out, row("commit", orDefault(buildInfo.Commit, "unknown")))
		fmt.Fprintln(out, row("built", orDefault(buildInfo.BuildDate, "unknown")))
		fmt.Fprintln(out, row("go", orDefault(buildInfo.GoVersion, "unknown")))
		fmt.Fprintln(out, row("repo", build.RepoURL()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
