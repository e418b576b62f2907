package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("v1.2.0", " 2026-10-01 ", "")

	assert.Equal(t, "v1.2.0", info.Version())
	assert.Equal(t, "2026-10-01", info.Date())
	assert.Equal(t, "N/A", info.Commit())
}

func TestBuildInfo_String(t *testing.T) {
	info := NewBuildInfo("", "", "abc123")

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
