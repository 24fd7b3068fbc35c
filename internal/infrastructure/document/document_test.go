package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/smartkeys/internal/application/port"
	"github.com/bnema/smartkeys/internal/application/usecase"
	"github.com/bnema/smartkeys/internal/domain/entity"
	"github.com/bnema/smartkeys/internal/infrastructure/textinput"
)

func installSmartKeys(t *testing.T, doc *Document, policy entity.CaretPolicy) *usecase.SmartKeysUseCase {
	t.Helper()
	uc := usecase.NewSmartKeysUseCase(doc, policy)
	require.NoError(t, uc.Install(context.Background(), doc))
	t.Cleanup(uc.Uninstall)
	return uc
}

func TestDocument_TypeIntoField(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	field := textinput.NewInput("")
	doc.Focus(field)

	require.NoError(t, doc.Type(ctx, `He said "hi" -- it's done...`))
	assert.Equal(t, "He said “hi” — it’s done…", field.Value())

	caret, err := field.CaretOffset()
	require.NoError(t, err)
	assert.Equal(t, 25, caret)
}

func TestDocument_TypeOpeningQuotesAfterBrackets(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	field := textinput.NewTextarea("")
	doc.Focus(field)

	require.NoError(t, doc.Type(ctx, "('a')\n\"b\""))
	assert.Equal(t, "(‘a’)\n“b”", field.Value())
}

func TestDocument_CaretPolicyMidText(t *testing.T) {
	tests := []struct {
		policy entity.CaretPolicy
		want   string
	}{
		{policy: entity.CaretAfterReplacement, want: "a—xb"},
		{policy: entity.CaretLegacy, want: "a—bx"},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			ctx := context.Background()
			doc := New()
			installSmartKeys(t, doc, tt.policy)

			field := textinput.NewInput("ab")
			field.SetSelectionRange(1, 1)
			doc.Focus(field)

			require.NoError(t, doc.Type(ctx, "--x"))
			assert.Equal(t, tt.want, field.Value())
		})
	}
}

func TestDocument_RegionNestedTarget(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	region, err := textinput.NewRegion("<b>Wait.</b>")
	require.NoError(t, err)
	doc.Focus(region)

	bold, ok := region.Descendant("b")
	require.True(t, ok)

	res, err := doc.Dispatch(ctx, bold, entity.NewKeyPress('.', entity.ModNone))
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: true}, res)

	res, err = doc.Dispatch(ctx, bold, entity.NewKeyPress('.', entity.ModNone))
	require.NoError(t, err)
	assert.Equal(t, Result{Prevented: true}, res)

	assert.Equal(t, "Wait…", region.Text())
	assert.Equal(t, "<b>Wait…</b>", region.InnerHTML())
}

func TestDocument_RegionTyping(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	region, err := textinput.NewRegion("")
	require.NoError(t, err)
	doc.Focus(region)

	require.NoError(t, doc.Type(ctx, `"Hello," she said.`))
	assert.Equal(t, "“Hello,” she said.", region.Text())
}

func TestDocument_RegionWithoutRangeIsNotSuppressed(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	region, err := textinput.NewRegion("Hello")
	require.NoError(t, err)
	doc.Focus(region)
	region.RemoveAllRanges()

	_, err = doc.Dispatch(ctx, region, entity.NewKeyPress('\'', entity.ModNone))
	assert.ErrorIs(t, err, entity.ErrNoSelectionRange)
	assert.Equal(t, "Hello", region.Text())
}

func TestDocument_IgnoresStaticTargets(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	button := textinput.NewStatic("button")
	doc.Focus(button)
	assert.Nil(t, doc.FocusedSurface())

	res, err := doc.Press(ctx, entity.NewKeyPress('\'', entity.ModNone))
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestDocument_NonMatchingKeyInsertsNormally(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	field := textinput.NewInput("x")
	doc.Focus(field)

	res, err := doc.Press(ctx, entity.NewKeyPress('a', entity.ModShift))
	require.NoError(t, err)
	assert.Equal(t, Result{Inserted: true}, res)
	assert.Equal(t, "xa", field.Value())
}

func TestDocument_CtrlKeys(t *testing.T) {
	ctx := context.Background()
	doc := New()
	installSmartKeys(t, doc, entity.CaretAfterReplacement)

	field := textinput.NewInput("a")
	doc.Focus(field)

	res, err := doc.Press(ctx, entity.NewKeyPress(entity.CharCodeUnitSeparator, entity.ModCtrl))
	require.NoError(t, err)
	assert.True(t, res.Prevented)

	_, err = doc.Press(ctx, entity.NewKeyPress('\'', entity.ModCtrl))
	require.NoError(t, err)
	_, err = doc.Press(ctx, entity.NewKeyPress('\'', entity.ModCtrl|entity.ModShift))
	require.NoError(t, err)

	assert.Equal(t, `a-'"`, field.Value())
}

func TestDocument_ControlCharsAreNotInserted(t *testing.T) {
	ctx := context.Background()
	doc := New()

	field := textinput.NewTextarea("a")
	doc.Focus(field)

	res, err := doc.Press(ctx, entity.NewKeyPress(entity.CharCodeUnitSeparator, entity.ModCtrl))
	require.NoError(t, err)
	assert.False(t, res.Inserted)

	res, err = doc.Press(ctx, entity.NewKeyPress('\r', entity.ModNone))
	require.NoError(t, err)
	assert.True(t, res.Inserted)
	assert.Equal(t, "a\n", field.Value())
}

func TestDocument_InstallUninstall(t *testing.T) {
	ctx := context.Background()
	doc := New()
	uc := usecase.NewSmartKeysUseCase(doc, entity.CaretAfterReplacement)

	field := textinput.NewInput("")
	doc.Focus(field)

	require.NoError(t, uc.Install(ctx, doc))
	assert.ErrorIs(t, uc.Install(ctx, doc), usecase.ErrAlreadyInstalled)
	assert.Equal(t, 1, doc.ListenerCount())

	require.NoError(t, doc.Type(ctx, "it's"))
	assert.Equal(t, "it’s", field.Value())

	uc.Uninstall()
	assert.Equal(t, 0, doc.ListenerCount())

	require.NoError(t, doc.Type(ctx, " '"))
	assert.Equal(t, "it’s '", field.Value())

	require.NoError(t, uc.Install(ctx, doc))
	require.NoError(t, doc.Type(ctx, "'"))
	assert.Equal(t, "it’s '’", field.Value())
	uc.Uninstall()
}

func TestDocument_ListenersRunInOrder(t *testing.T) {
	ctx := context.Background()
	doc := New()
	field := textinput.NewInput("")
	doc.Focus(field)

	var calls []string
	first := doc.AddKeypressListener(func(_ context.Context, ev port.KeyEvent) {
		calls = append(calls, "first:"+ev.Press().Text())
	})
	doc.AddKeypressListener(func(_ context.Context, ev port.KeyEvent) {
		calls = append(calls, "second:"+ev.Press().Text())
		ev.PreventDefault()
	})

	res, err := doc.Press(ctx, entity.NewKeyPress('k', entity.ModNone))
	require.NoError(t, err)
	assert.True(t, res.Prevented)
	assert.Equal(t, "", field.Value())
	assert.Equal(t, []string{"first:k", "second:k"}, calls)

	doc.RemoveKeypressListener(first)
	doc.RemoveKeypressListener(first)
	calls = nil
	_, err = doc.Press(ctx, entity.NewKeyPress('j', entity.ModNone))
	require.NoError(t, err)
	assert.Equal(t, []string{"second:j"}, calls)
}

func TestDocument_NoActiveElement(t *testing.T) {
	doc := New()
	assert.ErrorIs(t, doc.Type(context.Background(), "a"), ErrNoActiveElement)

	field := textinput.NewInput("")
	doc.Focus(field)
	assert.Same(t, field, doc.ActiveElement())

	doc.Blur()
	assert.Nil(t, doc.ActiveElement())
	assert.Nil(t, doc.FocusedSurface())
}

func TestDocument_FlatAndTreeSurfacesAgree(t *testing.T) {
	sequences := []string{
		"Hello'",
		`("quoted")`,
		"Wait...",
		"words--",
		"a---b",
		"don't 'quote' me...",
		"[\"x\"] {'y'} <'z'>",
		"«'a'» and ⟨\"b\"⟩",
		"é'",
	}

	for _, seq := range sequences {
		t.Run(seq, func(t *testing.T) {
			ctx := context.Background()

			flatDoc := New()
			installSmartKeys(t, flatDoc, entity.CaretAfterReplacement)
			field := textinput.NewTextarea("")
			flatDoc.Add(field)
			flatDoc.Focus(field)
			require.NoError(t, flatDoc.Type(ctx, seq))

			treeDoc := New()
			installSmartKeys(t, treeDoc, entity.CaretAfterReplacement)
			region, err := textinput.NewRegion("")
			require.NoError(t, err)
			treeDoc.Add(region)
			treeDoc.Focus(region)
			require.NoError(t, treeDoc.Type(ctx, seq))

			assert.Equal(t, field.Value(), region.Text())

			flatCaret, err := field.CaretOffset()
			require.NoError(t, err)
			treeCaret, err := region.CaretOffset()
			require.NoError(t, err)
			assert.Equal(t, flatCaret, treeCaret)
		})
	}
}

func TestDocument_Add(t *testing.T) {
	doc := New()
	field := textinput.NewInput("")
	button := textinput.NewStatic("button")

	doc.Add(field)
	doc.Add(button)

	elements := doc.Elements()
	require.Len(t, elements, 2)
	assert.Same(t, field, elements[0])
	assert.Same(t, button, elements[1])
}
