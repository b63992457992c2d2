package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/treeview/pkg/observe"
)

func TestLoadSpecFromFile(t *testing.T) {
	spec, err := loadSpec(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "workspace", spec.Label)
	require.Len(t, spec.Children, 2)
	assert.Equal(t, "src", spec.Children[0].Label)
	assert.True(t, spec.Children[1].Branch, "empty branch stays expandable")
}

func TestLoadSpecDefaultsToSample(t *testing.T) {
	spec, err := loadSpec("")
	require.NoError(t, err)
	assert.NotEmpty(t, spec.Label)
	assert.NotEmpty(t, spec.Children)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := loadSpec(filepath.Join("testdata", "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSpecRejectsUnlabeledRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("children: [{label: x}]\n"), 0o644))

	_, err := loadSpec(path)
	assert.Error(t, err)
}

func TestBuildNodeLeafAndBranch(t *testing.T) {
	sched := observe.NewScheduler(nil)
	var nodes []churnTarget
	root := buildNode(sched, sampleSpec(), &nodes)

	assert.False(t, root.Leaf())
	assert.Equal(t, sampleSpec().Label, root.Label().Get())
	assert.Len(t, nodes, countSpecs(sampleSpec()), "every spec becomes a node")

	children, err := root.Children()
	require.NoError(t, err)
	assert.Len(t, children, len(sampleSpec().Children))
}

func TestBuildNodeForcedBranch(t *testing.T) {
	sched := observe.NewScheduler(nil)
	var nodes []churnTarget
	node := buildNode(sched, nodeSpec{Label: "empty", Branch: true}, &nodes)

	assert.False(t, node.Leaf())
	children, err := node.Children()
	require.NoError(t, err)
	assert.Empty(t, children)
}

func countSpecs(spec nodeSpec) int {
	n := 1
	for _, child := range spec.Children {
		n += countSpecs(child)
	}
	return n
}
