// Command treedemo browses a YAML-defined tree in the terminal, with
// optional background churn that mutates the model while it is displayed to
// demonstrate asynchronous, coalesced change delivery.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/treeview/pkg/errors"
	"github.com/go-drift/treeview/pkg/observe"
	"github.com/go-drift/treeview/pkg/termview"
	"github.com/go-drift/treeview/pkg/tree"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var file string
	var churn time.Duration
	cmd := &cobra.Command{
		Use:   "treedemo",
		Short: "Browse a YAML-defined tree with live model updates",
		Long: `treedemo loads a tree definition from a YAML file and displays it as an
expandable terminal tree. Children are materialized only when a node is
expanded. With --churn, background goroutines rename nodes and add or
remove children while the tree is on screen; the view follows along.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(file, churn)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML tree definition (built-in sample if empty)")
	cmd.Flags().DurationVar(&churn, "churn", 0, "mutate the model at this interval (0 disables)")
	return cmd
}

// nodeSpec is the YAML shape of one node. A node with no children is a leaf
// unless branch is set, which keeps it expandable.
type nodeSpec struct {
	Label    string     `yaml:"label"`
	Branch   bool       `yaml:"branch,omitempty"`
	Children []nodeSpec `yaml:"children,omitempty"`
}

func run(file string, churn time.Duration) error {
	spec, err := loadSpec(file)
	if err != nil {
		return err
	}

	sched := observe.NewScheduler(nil)
	var nodes []churnTarget
	root := buildNode(sched, spec, &nodes)

	m := termview.New(sched, root, termview.WithTitle(spec.Label))

	done := make(chan struct{})
	if churn > 0 {
		go churnModel(done, churn, sched, nodes)
	}
	err = m.Run()
	close(done)
	return err
}

func loadSpec(file string) (nodeSpec, error) {
	if file == "" {
		return sampleSpec(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nodeSpec{}, fmt.Errorf("reading tree definition: %w", err)
	}
	var spec nodeSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nodeSpec{}, fmt.Errorf("parsing %s: %w", file, err)
	}
	if spec.Label == "" {
		return nodeSpec{}, fmt.Errorf("%s: root node has no label", file)
	}
	return spec, nil
}

// churnTarget pairs a node with its original label so renames don't pile up.
type churnTarget struct {
	node *tree.Static
	base string
}

// buildNode converts a spec into tree nodes, collecting every node so the
// churn loop can pick mutation targets.
func buildNode(sched *observe.Scheduler, spec nodeSpec, nodes *[]churnTarget) *tree.Static {
	var node *tree.Static
	if len(spec.Children) == 0 && !spec.Branch {
		node = tree.NewLeaf(sched, spec.Label)
	} else {
		children := make([]tree.Node, 0, len(spec.Children))
		for _, child := range spec.Children {
			children = append(children, buildNode(sched, child, nodes))
		}
		node = tree.NewBranch(sched, spec.Label, children...)
	}
	*nodes = append(*nodes, churnTarget{node: node, base: spec.Label})
	return node
}

// churnModel mutates the model from outside the event loop until done
// closes. Renames dominate; every few ticks a branch gains or loses a child.
func churnModel(done <-chan struct{}, interval time.Duration, sched *observe.Scheduler, nodes []churnTarget) {
	defer errors.Recover("main.churnModel")
	if len(nodes) == 0 {
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			tick++
			target := nodes[rng.Intn(len(nodes))]
			target.node.Label().Set(fmt.Sprintf("%s (%d)", target.base, tick))

			if tick%5 == 0 {
				churnChildren(sched, pickBranch(rng, nodes), tick)
			}
		}
	}
}

func pickBranch(rng *rand.Rand, nodes []churnTarget) *tree.Static {
	for tries := 0; tries < len(nodes); tries++ {
		if n := nodes[rng.Intn(len(nodes))].node; !n.Leaf() {
			return n
		}
	}
	return nil
}

func churnChildren(sched *observe.Scheduler, branch *tree.Static, tick int) {
	if branch == nil {
		return
	}
	children, err := branch.Children()
	if err != nil {
		return
	}
	if len(children) > 4 {
		children = children[:len(children)-1]
	} else {
		children = append(children, tree.NewLeaf(sched, fmt.Sprintf("spawned %d", tick)))
	}
	// SetChildren only fails on leaves and pickBranch never returns one.
	_ = branch.SetChildren(children...)
}

func sampleSpec() nodeSpec {
	return nodeSpec{
		Label: "deployment",
		Children: []nodeSpec{
			{Label: "frontends", Children: []nodeSpec{
				{Label: "web"},
				{Label: "mobile-api"},
			}},
			{Label: "services", Children: []nodeSpec{
				{Label: "orders", Children: []nodeSpec{
					{Label: "orders-primary"},
					{Label: "orders-replica"},
				}},
				{Label: "billing"},
				{Label: "notifications", Branch: true},
			}},
			{Label: "storage", Children: []nodeSpec{
				{Label: "postgres"},
				{Label: "object-store"},
			}},
		},
	}
}
