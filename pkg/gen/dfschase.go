package gen

import (
	"fmt"

	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

// Options configures one DFS chase generation session.
type Options struct {
	// Depth of the binary function call tree; must be at least 1. Depth 1
	// produces a single leaf function.
	Depth int

	// BranchProbability is the taken probability stamped on every
	// conditional branch; must be in [0,1].
	BranchProbability float64

	// InjectWorkload points each generated call block's body at the shared
	// arithmetic workload. When false the workload body is still emitted in
	// the artifact but left unreferenced.
	InjectWorkload bool

	// Allocator continues an existing id sequence. Leave nil to give the
	// session its own isolated allocator; never share one allocator between
	// concurrently running sessions.
	Allocator *IDAllocator
}

// DFSChase generates a depth-first instruction pointer chase benchmark: a
// binary call tree where every internal function conditionally calls one of
// its two children and every leaf immediately returns.
type DFSChase struct {
	opts    Options
	factory *Factory

	// children maps an internal function to its [left, right] callees;
	// parents records map insertion order so emission stays deterministic.
	children map[cfg.ID][2]cfg.ID
	parents  []cfg.ID
	leaves   []cfg.ID
	root     cfg.ID

	workload *cfg.CodeBlockBody
}

// NewDFSChase validates the configuration and prepares a session. Contract
// violations fail here, before any entity is allocated, so a failed
// construction leaves no partial graph behind.
func NewDFSChase(opts Options) (*DFSChase, error) {
	if opts.Depth < 1 {
		return nil, fmt.Errorf("%w: depth must be >= 1, got %d", cfg.ErrInvalidArgument, opts.Depth)
	}
	if opts.BranchProbability < 0 || opts.BranchProbability > 1 {
		return nil, fmt.Errorf("%w: branch probability %v outside [0,1]", cfg.ErrInvalidArgument, opts.BranchProbability)
	}

	g := &DFSChase{
		opts:     opts,
		factory:  NewFactory(opts.Allocator),
		children: make(map[cfg.ID][2]cfg.ID),
	}
	g.workload = g.factory.AddCodeBlockBody(workloadBody)
	return g, nil
}

// Generate runs the single synchronous generation pass and returns the
// assembled artifact.
func (g *DFSChase) Generate() (*cfg.CFG, error) {
	g.buildTree()
	if err := g.buildFunctions(); err != nil {
		return nil, err
	}
	return g.factory.Assemble(g.root), nil
}

// Root returns the id of the tree's root function; it is only meaningful
// after Generate.
func (g *DFSChase) Root() cfg.ID {
	return g.root
}

// Leaves returns the ids of the functions that never received children.
func (g *DFSChase) Leaves() []cfg.ID {
	return g.leaves
}

// Children returns the [left, right] callees recorded for an internal
// function.
func (g *DFSChase) Children(id cfg.ID) ([2]cfg.ID, bool) {
	kids, ok := g.children[id]
	return kids, ok
}

// buildTree allocates the function ids level by level. The frontier starts
// as the root alone and each iteration replaces it with the children minted
// this level, parents in order, left before right. Whatever remains in the
// frontier after depth-1 iterations never received children and is the leaf
// set; with depth 1 that is the root itself.
func (g *DFSChase) buildTree() {
	g.root = g.factory.alloc.Next()
	frontier := []cfg.ID{g.root}
	for i := 0; i < g.opts.Depth-1; i++ {
		next := make([]cfg.ID, 0, 2*len(frontier))
		for _, parent := range frontier {
			kids := [2]cfg.ID{g.factory.alloc.Next(), g.factory.alloc.Next()}
			g.children[parent] = kids
			g.parents = append(g.parents, parent)
			next = append(next, kids[0], kids[1])
		}
		frontier = next
	}
	g.leaves = frontier
}

func (g *DFSChase) buildFunctions() error {
	if _, err := g.factory.AddFunctionWithID(g.root); err != nil {
		return err
	}
	for _, parent := range g.parents {
		kids := g.children[parent]
		for _, kid := range kids {
			if _, err := g.factory.AddFunctionWithID(kid); err != nil {
				return err
			}
		}
		blocks, err := g.conditionalCallBlocks(kids[:], g.opts.BranchProbability)
		if err != nil {
			return err
		}
		fn, _ := g.factory.Function(parent)
		fn.Instructions = append(fn.Instructions, blocks...)
	}
	for _, leaf := range g.leaves {
		fn, ok := g.factory.Function(leaf)
		if !ok {
			return fmt.Errorf("%w: leaf function %d was never created", cfg.ErrInvalidArgument, leaf)
		}
		fn.Instructions = append(fn.Instructions, *g.leafReturnBlock())
	}
	return nil
}

// conditionalCallBlocks synthesizes the five-block pattern for an internal
// function: a conditional branch first, the fallthrough call path directly
// after it (adjacency encodes "not taken"), and the taken call path last,
// reachable only through the branch target.
func (g *DFSChase) conditionalCallBlocks(targets []cfg.ID, probability float64) ([]cfg.CodeBlock, error) {
	// Tree expansion always hands us two children, but this path is reused
	// for non-tree topologies and must check its own arity.
	if len(targets) != 2 {
		return nil, fmt.Errorf("%w: call targets must have length 2, got %d", cfg.ErrInvalidArgument, len(targets))
	}

	takenBlock := g.addBlockWithBranch(cfg.DirectCallBranch(targets[0]))
	takenRet := g.addBlockWithBranch(cfg.ReturnBranch())

	ftBlock := g.addBlockWithBranch(cfg.DirectCallBranch(targets[1]))
	ftRet := g.addBlockWithBranch(cfg.ReturnBranch())

	condBlock := g.addBlockWithBranch(cfg.ConditionalBranch(takenBlock.ID, probability))

	if g.opts.InjectWorkload {
		takenBlock.BodyID = g.workload.ID
		ftBlock.BodyID = g.workload.ID
	}

	return []cfg.CodeBlock{*condBlock, *ftBlock, *ftRet, *takenBlock, *takenRet}, nil
}

func (g *DFSChase) leafReturnBlock() *cfg.CodeBlock {
	return g.addBlockWithBranch(cfg.ReturnBranch())
}

func (g *DFSChase) addBlockWithBranch(branch *cfg.Branch) *cfg.CodeBlock {
	block := g.factory.AddCodeBlock()
	block.Terminator = branch
	return block
}
