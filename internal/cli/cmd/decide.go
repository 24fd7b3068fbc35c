package cmd

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/bnema/smartkeys/internal/cli/styles"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/textunit"
)

var (
	decideText     string
	decideLookback string
	decideCaret    int
	decideCtrl     bool
	decideShift    bool
)

var decideCmd = &cobra.Command{
	Use:   "decide <char>",
	Short: "Show what a keypress would be replaced with",
	Long: `Run the substitution rules for one keypress and print the decision.

<char> is a single character, or a character code such as 31 (the unit
separator sent by Ctrl+_).

Examples:
  smartkeys decide "'" --lookback "("
  smartkeys decide . --text "Wait.."
  smartkeys decide - --text "a-b" --caret 2 --ctrl
  smartkeys decide 31 --ctrl`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	decideCmd.Flags().StringVar(&decideText, "text", "", "text of the surface before the keypress")
	decideCmd.Flags().StringVar(&decideLookback, "lookback", "", "character before the caret (shortcut for --text)")
	decideCmd.Flags().IntVar(&decideCaret, "caret", -1, "caret offset in characters (default: end of text)")
	decideCmd.Flags().BoolVar(&decideCtrl, "ctrl", false, "ctrl held")
	decideCmd.Flags().BoolVar(&decideShift, "shift", false, "shift held")
	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	char, err := parseChar(args[0])
	if err != nil {
		return err
	}

	mods := entity.ModNone
	if decideCtrl {
		mods |= entity.ModCtrl
	}
	if decideShift {
		mods |= entity.ModShift
	}

	text := decideText
	if text == "" {
		text = decideLookback
	}
	caret := decideCaret
	if caret < 0 || caret > textunit.Count(text) {
		caret = textunit.Count(text)
	}

	press := entity.NewKeyPress(char, mods)
	typing := entity.TypingContext{Text: text, Caret: caret}
	sub, ok := entity.Decide(press, typing)

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.RenderDecision(styles.DecisionView{
		Press:        press,
		Typing:       typing,
		Substitution: sub,
		Fired:        ok,
	}))
	return nil
}

// parseChar accepts one character or a decimal character code.
func parseChar(arg string) (rune, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	}
	if code, err := strconv.ParseUint(arg, 10, 32); err == nil && utf8.ValidRune(rune(code)) {
		return rune(code), nil
	}
	return 0, fmt.Errorf("expected one character or a character code, got %q", arg)
}
