package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoOutput(t *testing.T) {
	var out bytes.Buffer
	demoCmd.SetOut(&out)
	require.NoError(t, demoCmd.RunE(demoCmd, nil))

	want := "Room: Bob\n" +
		"  Shelf: Classic\n" +
		"    - A Tale of Two Cities by Charles Dickens [Classic]\n" +
		"  Shelf: Dystopian\n" +
		"    - Brave New World by Aldous Huxley [Dystopian]\n" +
		"  Shelf: Programming\n" +
		"    - Clean Code by Robert C. Martin [Programming]\n" +
		"    - The Pragmatic Programmer by Andrew Hunt [Programming]\n" +
		"  Shelf: Sci-Fi\n" +
		"    - Do Androids Dream of Electric Sheep? by Philip K. Dick [Sci-Fi]\n" +
		"    - I, Robot by Isaac Asimov [Sci-Fi]\n" +
		"  Shelf: Mystery\n" +
		"    - The Name of the Rose by Umberto Eco [Mystery]\n"
	assert.Equal(t, want, out.String())
}
