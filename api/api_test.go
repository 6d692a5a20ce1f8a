package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var streamed []Result
	OnResult = func(r Result) {
		streamed = append(streamed, r)
	}
	defer func() { OnResult = nil }()

	rst, err := Generate("192.168.1.0/26", "10.188.65.0/26", true)
	require.NoError(t, err)

	require.Len(t, rst, 62)
	assert.Equal(t, Result{DMZ: "192.168.1.1", Internal: "10.188.65.1"}, rst[0])
	assert.Equal(t, Result{DMZ: "192.168.1.62", Internal: "10.188.65.62"}, rst[61])
	assert.Equal(t, rst, streamed)
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate("192.168.1.0/26", "10.0.0.0/24", true)
	require.Error(t, err)

	_, err = Generate("not-an-ip/26", "10.0.0.0/26", false)
	require.Error(t, err)
}
