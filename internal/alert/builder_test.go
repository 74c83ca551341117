// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenth151/AsciiArtBoardReader/internal/bundle"
	"github.com/tenth151/AsciiArtBoardReader/internal/res"
)

func TestDeleteConfirmationEndToEnd(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).
		Title("Delete?").
		Positive("Yes").
		Negative("No").
		RequestCode(7).
		Params(bundle.Bundle{"id": 42}).
		Show()
	require.NoError(t, err)
	require.True(t, host.screen.Active())
	assert.Contains(t, ansi.Strip(host.screen.View("")), "Delete?")

	host.screen.Update(enterKey)

	require.Len(t, host.calls, 1)
	assert.Equal(t, call{kind: "succeeded", requestCode: 7, resultCode: ResultPositive, params: bundle.Bundle{"id": 42}}, host.calls[0])
	assert.False(t, host.screen.Active())
}

func TestBuilderNegativeButton(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).Title("Delete?").PositiveRes(res.Yes).NegativeRes(res.No).Show()
	require.NoError(t, err)

	host.screen.Update(tabKey)
	host.screen.Update(enterKey)
	require.Len(t, host.calls, 1)
	assert.Equal(t, ResultNegative, host.calls[0].resultCode)
	assert.Equal(t, NoRequestCode, host.calls[0].requestCode)
}

func TestBuilderArgsLayout(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	args := ForScreen(host).
		Message("Body").
		Items("a", "b").
		Cancelable(false).
		RequestCode(5).
		Args()

	assert.False(t, args.Has(KeyTitle))
	assert.False(t, args.Has(KeyPositiveLabel))
	assert.False(t, args.Has(KeyParams))
	assert.Equal(t, "Body", args.GetString(KeyMessage))
	assert.Equal(t, []string{"a", "b"}, args.GetStrings(KeyItems))
	assert.False(t, args.GetBool(KeyCancelable, true))
	assert.Equal(t, 5, args.GetInt(KeyRequestCode, 0))
}

func TestBuilderDefaults(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).Message("hi").Show()
	require.NoError(t, err)

	c, ok := host.screen.Dialogs().Find(DefaultTag)
	require.True(t, ok)
	assert.True(t, c.Cancelable())
	assert.Equal(t, NoRequestCode, c.RequestCode())
	_, hasTarget := c.Target()
	assert.False(t, hasTarget)
}

func TestBuilderResolvesResources(t *testing.T) {
	catalog := res.New(map[res.ID]string{"confirm_delete": "Delete this board?"})
	host := &screenHost{screen: NewScreen(catalog)}
	b := ForScreen(host).TitleRes("confirm_delete").PositiveRes(res.Delete).NegativeRes(res.Cancel)
	require.NoError(t, b.Err())

	args := b.Args()
	assert.Equal(t, "Delete this board?", args.GetString(KeyTitle))
	assert.Equal(t, "Delete", args.GetString(KeyPositiveLabel))
	assert.Equal(t, "Cancel", args.GetString(KeyNegativeLabel))
}

func TestBuilderUnknownResourceFailsShow(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).TitleRes("missing").Positive("OK").Show()
	require.ErrorIs(t, err, res.ErrUnknownID)
	assert.Equal(t, 0, host.screen.Dialogs().Len())
}

func TestBuilderRejectsDialogThatCannotClose(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).Message("hi").Cancelable(false).Show()
	require.ErrorIs(t, err, ErrNoActions)
	assert.Equal(t, 0, host.screen.Dialogs().Len())

	_, err = ForScreen(host).Message("hi").Show()
	require.NoError(t, err)
	assert.Equal(t, 1, host.screen.Dialogs().Len())
}

func TestBuilderScreenWithoutCatalog(t *testing.T) {
	host := &screenHost{screen: NewScreen(nil)}
	_, err := ForScreen(host).MessageRes(res.OK).Show()
	require.ErrorIs(t, err, ErrNoContext)
}

func TestBuilderFromDetachedPane(t *testing.T) {
	host := &paneHost{pane: NewPane("boards")}

	_, err := ForPane(host).TitleRes(res.Delete).Show()
	require.ErrorIs(t, err, ErrNoContext)

	_, err = ForPane(host).Title("plain text").Show()
	require.ErrorIs(t, err, ErrNoContext)
}

func TestBuilderFromPaneRoutesToPane(t *testing.T) {
	screen := NewScreen(res.Builtin())
	screenListener := &screenHost{screen: screen}
	host := &paneHost{pane: NewPane("boards")}
	host.pane.AttachTo(screen)

	_, err := ForPane(host).
		Title("Pick a board").
		Items("retro", "news", "art").
		RequestCode(11).
		Tag("pick").
		Show()
	require.NoError(t, err)
	assert.Equal(t, 0, screen.Dialogs().Len())
	require.Equal(t, 1, host.pane.Dialogs().Len())

	c, ok := host.pane.Dialogs().Find("pick")
	require.True(t, ok)
	target, ok := c.Target()
	require.True(t, ok)
	assert.Equal(t, "boards", target.Owner)
	assert.Equal(t, 11, c.Args().GetInt(KeyRequestCode, 0))

	screen.Update(downKey)
	screen.Update(enterKey)
	require.Len(t, host.calls, 1)
	assert.Equal(t, call{kind: "succeeded", requestCode: 11, resultCode: 1}, host.calls[0])
	assert.Empty(t, screenListener.calls)
}

func TestBuilderItemsHideButtons(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	_, err := ForScreen(host).Items("one", "two").Positive("Yes").Negative("No").Show()
	require.NoError(t, err)

	view := ansi.Strip(host.screen.View(""))
	assert.Contains(t, view, "1) one")
	assert.NotContains(t, view, "Yes")

	host.screen.Update(enterKey)
	require.Len(t, host.calls, 1)
	assert.Equal(t, 0, host.calls[0].resultCode)
}

func TestBuilderParamsCopied(t *testing.T) {
	host := &screenHost{screen: NewScreen(res.Builtin())}
	params := bundle.Bundle{"id": 1}
	b := ForScreen(host).Params(params)
	params["id"] = 2
	assert.Equal(t, bundle.Bundle{"id": 1}, b.Args().GetBundle(KeyParams))
}
