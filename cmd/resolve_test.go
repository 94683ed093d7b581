package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBones(t *testing.T) {
	assert.Equal(t, []string{"Hips", "Spine", "Hand_R"}, splitBones("Hips, Spine,,Hand_R "))
	assert.Empty(t, splitBones(""))
}
