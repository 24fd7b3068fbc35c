package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/smartkeys/internal/cli/model"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/document"
	"github.com/bnema/smartkeys/internal/logging"
)

var (
	playgroundMarkup      string
	playgroundLegacyCaret bool
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Try smart keys interactively",
	Long: `Open a terminal playground with a plain field and a rich region.

Tab switches between them. Edits to the configuration file are applied
while the playground runs.`,
	RunE: runPlayground,
}

func init() {
	playgroundCmd.Flags().StringVar(&playgroundMarkup, "markup", "", "initial markup of the rich region")
	playgroundCmd.Flags().BoolVar(&playgroundLegacyCaret, "legacy-caret", false, "start with the legacy caret policy")
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "playground")

	policy := app.CaretPolicy()
	if playgroundLegacyCaret {
		policy = entity.CaretLegacy
	}

	doc := document.New()
	uc, err := app.InstallSmartKeys(doc, policy)
	if err != nil {
		return err
	}
	defer uc.Uninstall()

	if err := app.WatchConfig(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
	}

	m, err := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		Document:     doc,
		SmartKeys:    uc,
		RegionMarkup: playgroundMarkup,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	return nil
}
