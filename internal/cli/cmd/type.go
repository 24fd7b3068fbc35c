package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/document"
	"github.com/bnema/smartkeys/internal/infrastructure/textinput"
)

const (
	surfaceField  = "field"
	surfaceRegion = "region"
)

var (
	typeSurface     string
	typeInitial     string
	typeHTML        bool
	typeLegacyCaret bool
)

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into a surface and print the result",
	Long: `Type text one character at a time into a plain field or a rich region
with smart keys installed, then print what the surface holds.

Text comes from the arguments, or from stdin when there are none.

Examples:
  smartkeys type "It's \"done\" -- finally..."
  echo "'quoted'" | smartkeys type --surface region --html
  smartkeys type --surface region --initial "<b>Wait.</b>" .`,
	RunE: runType,
}

func init() {
	typeCmd.Flags().StringVar(&typeSurface, "surface", surfaceField, "surface to type into: field or region")
	typeCmd.Flags().StringVar(&typeInitial, "initial", "", "initial content (markup for a region)")
	typeCmd.Flags().BoolVar(&typeHTML, "html", false, "print the region markup instead of its text")
	typeCmd.Flags().BoolVar(&typeLegacyCaret, "legacy-caret", false, "use the legacy caret policy for fields")
	rootCmd.AddCommand(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	policy := app.CaretPolicy()
	if typeLegacyCaret {
		policy = entity.CaretLegacy
	}

	out, err := typeInto(text, policy)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func typeInto(text string, policy entity.CaretPolicy) (string, error) {
	app := GetApp()
	ctx := app.Ctx()

	doc := document.New()
	uc, err := app.InstallSmartKeys(doc, policy)
	if err != nil {
		return "", err
	}
	defer uc.Uninstall()

	var (
		surface port.EventTarget
		result  func() string
	)
	switch typeSurface {
	case surfaceField:
		field := textinput.NewTextarea(typeInitial)
		surface = field
		result = field.Value
	case surfaceRegion:
		region, err := textinput.NewRegion(typeInitial)
		if err != nil {
			return "", err
		}
		surface = region
		result = region.Text
		if typeHTML {
			result = region.InnerHTML
		}
	default:
		return "", fmt.Errorf("unknown surface %q (want %s or %s)", typeSurface, surfaceField, surfaceRegion)
	}

	doc.Add(surface)
	doc.Focus(surface)

	if err := doc.Type(ctx, text); err != nil {
		return "", fmt.Errorf("type into %s: %w", typeSurface, err)
	}
	return result(), nil
}
