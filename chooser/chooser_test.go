package chooser

import (
	"errors"
	"sync"
	"testing"

	"github.com/chopshop166/commandrobot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooser_Empty(t *testing.T) {
	c := New()
	assert.Nil(t, c.Selected())
	assert.Empty(t, c.Options())
	assert.Equal(t, "", c.Default())
	assert.Equal(t, "", c.SelectedName())
}

func TestChooser_DefaultAndSelection(t *testing.T) {
	left := testutil.NewCommand("left")
	right := testutil.NewCommand("right")

	c := New()
	c.AddOption("Left", left)
	assert.False(t, c.SetDefaultOption("Right", right))
	assert.Equal(t, right, c.Selected())

	require.NoError(t, c.Select("Left"))
	assert.Equal(t, left, c.Selected())
	assert.Equal(t, "Left", c.SelectedName())

	require.NoError(t, c.Select(""))
	assert.Equal(t, right, c.Selected(), "clearing falls back to the default")
}

func TestChooser_LastDefaultWins(t *testing.T) {
	c := New()
	assert.False(t, c.SetDefaultOption("A", testutil.NewCommand("a")))
	assert.False(t, c.SetDefaultOption("A", testutil.NewCommand("a2")), "same name is not a replacement")
	assert.True(t, c.SetDefaultOption("B", testutil.NewCommand("b")))

	assert.Equal(t, "B", c.Default())
	assert.Equal(t, []string{"A", "B"}, c.Options())
}

func TestChooser_SelectUnknown(t *testing.T) {
	c := New()
	err := c.Select("Nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOption))
}

func TestChooser_ReplaceKeepsOrder(t *testing.T) {
	c := New()
	first := testutil.NewCommand("first")
	c.AddOption("One", testutil.NewCommand("old"))
	c.AddOption("Two", testutil.NewCommand("two"))
	c.AddOption("One", first)

	assert.Equal(t, []string{"One", "Two"}, c.Options())
	cmd, ok := c.Lookup("One")
	require.True(t, ok)
	assert.Equal(t, first, cmd)
}

func TestChooser_ConcurrentSelect(t *testing.T) {
	c := New()
	c.AddOption("A", testutil.NewCommand("a"))
	c.AddOption("B", testutil.NewCommand("b"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			name := "A"
			if i%2 == 0 {
				name = "B"
			}
			_ = c.Select(name)
		}(i)
		go func() {
			defer wg.Done()
			_ = c.Selected()
		}()
	}
	wg.Wait()

	assert.Contains(t, []string{"A", "B"}, c.SelectedName())
}
