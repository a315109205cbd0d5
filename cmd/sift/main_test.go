package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/sift"
	"github.com/jward/sift/internal/store"
)

func TestValidateFormat(t *testing.T) {
	require.NoError(t, validateFormat("json"))
	require.NoError(t, validateFormat("text"))
	assert.Error(t, validateFormat("yaml"))
	assert.Error(t, validateFormat(""))
}

func TestRecordSymbolConversionRoundTrip(t *testing.T) {
	sym := &store.Symbol{
		Name: "Walk", Path: "src/walk.go", Kind: "method",
		RefCount: 7, CallerCount: 2, CalleeCount: 3,
		Dead: false, InCycle: true, Entry: false,
	}
	r := recordFromSymbol(sym)
	assert.Equal(t, sift.Record{
		Name: "Walk", Path: "src/walk.go", Kind: "method",
		Refs: 7, Callers: 2, Callees: 3, InCycle: true,
	}, r)

	back := symbolFromRecord(r)
	sym.ID = 0
	assert.Equal(t, sym, back)
}

func TestSymbolFlags(t *testing.T) {
	assert.Equal(t, "-", symbolFlags(CLISymbol{}))
	assert.Equal(t, "d", symbolFlags(CLISymbol{Dead: true}))
	assert.Equal(t, "dce", symbolFlags(CLISymbol{Dead: true, Cycle: true, Entry: true}))
}
