package gen

import (
	"fmt"

	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

// Factory creates and registers the three entity kinds (code block bodies,
// code blocks, functions) for one generation session. All entities draw
// their ids from the factory's allocator, so ids are unique across kinds.
// Like the allocator, a Factory is single-threaded state scoped to one
// session.
type Factory struct {
	alloc     *IDAllocator
	bodies    registry[cfg.CodeBlockBody]
	blocks    registry[cfg.CodeBlock]
	functions registry[cfg.Function]
}

// NewFactory returns a factory backed by the given allocator. A nil
// allocator gets a fresh one, which is the right choice for any session that
// does not need to continue an existing id sequence.
func NewFactory(alloc *IDAllocator) *Factory {
	if alloc == nil {
		alloc = NewIDAllocator()
	}
	return &Factory{
		alloc:     alloc,
		bodies:    newRegistry[cfg.CodeBlockBody](),
		blocks:    newRegistry[cfg.CodeBlock](),
		functions: newRegistry[cfg.Function](),
	}
}

// AddCodeBlockBody allocates an id and registers a body holding the given
// instruction text.
func (f *Factory) AddCodeBlockBody(code string) *cfg.CodeBlockBody {
	body := &cfg.CodeBlockBody{ID: f.alloc.Next(), Instructions: code}
	f.bodies.add(body.ID, body)
	return body
}

// AddCodeBlock allocates an id and registers an empty code block. The caller
// fills in the terminator (or body reference) afterward.
func (f *Factory) AddCodeBlock() *cfg.CodeBlock {
	block := &cfg.CodeBlock{ID: f.alloc.Next()}
	f.blocks.add(block.ID, block)
	return block
}

// FunctionName derives the canonical name for a function id. Downstream
// tooling matches ids to names through this format.
func (f *Factory) FunctionName(id cfg.ID) string {
	return fmt.Sprintf("function_%d", id)
}

// AddFunctionWithID registers a new function under an id the caller already
// allocated, synthesizing its signature body. Registering the same id twice
// is a programming error and fails with ErrDuplicateEntity.
func (f *Factory) AddFunctionWithID(id cfg.ID) (*cfg.Function, error) {
	if f.functions.has(id) {
		return nil, fmt.Errorf("%w: there already exists a function with id %d", cfg.ErrDuplicateEntity, id)
	}
	sigBody := f.AddCodeBlockBody("void " + f.FunctionName(id))
	fn := &cfg.Function{
		ID:        id,
		Signature: cfg.Signature{BodyID: sigBody.ID},
	}
	f.functions.add(fn.ID, fn)
	return fn, nil
}

// PrefetchOptions selects the target of a code prefetch block. Exactly one
// of FunctionTarget and CodeBlockTarget must be set (zero means unset), and
// Degree must be at least 1.
type PrefetchOptions struct {
	FunctionTarget  cfg.ID
	CodeBlockTarget cfg.ID
	Degree          int
}

// AddCodePrefetchBlock creates a code block whose body is a prefetch
// descriptor. The block's terminator is left unset: a prefetch is a
// non-terminating instruction slot, not a control transfer.
func (f *Factory) AddCodePrefetchBlock(opts PrefetchOptions) (*cfg.CodeBlock, error) {
	if opts.FunctionTarget != 0 && opts.CodeBlockTarget != 0 {
		return nil, fmt.Errorf("%w: cannot specify both a function and a code block prefetch target", cfg.ErrInvalidArgument)
	}
	if opts.FunctionTarget == 0 && opts.CodeBlockTarget == 0 {
		return nil, fmt.Errorf("%w: must specify one of function or code block prefetch target", cfg.ErrInvalidArgument)
	}
	if opts.Degree <= 0 {
		return nil, fmt.Errorf("%w: prefetch degree must be > 0, got %d", cfg.ErrInvalidArgument, opts.Degree)
	}

	prefetch := &cfg.CodePrefetch{Degree: opts.Degree}
	if opts.FunctionTarget != 0 {
		prefetch.TargetKind = cfg.PrefetchFunction
		prefetch.TargetID = opts.FunctionTarget
	} else {
		prefetch.TargetKind = cfg.PrefetchCodeBlock
		prefetch.TargetID = opts.CodeBlockTarget
	}

	body := f.AddCodeBlockBody("")
	body.CodePrefetch = prefetch

	block := f.AddCodeBlock()
	block.BodyID = body.ID
	return block, nil
}

// Body returns a registered code block body by id.
func (f *Factory) Body(id cfg.ID) (*cfg.CodeBlockBody, bool) {
	return f.bodies.get(id)
}

// Function returns a registered function by id.
func (f *Factory) Function(id cfg.ID) (*cfg.Function, bool) {
	return f.functions.get(id)
}

// Assemble flattens the function and body registries, in creation order,
// into the final artifact, stamping the entry point. The result holds copies
// of the registered entities; the factory can be discarded afterward.
func (f *Factory) Assemble(entry cfg.ID) *cfg.CFG {
	out := &cfg.CFG{
		Functions:       make([]cfg.Function, 0, f.functions.len()),
		CodeBlockBodies: make([]cfg.CodeBlockBody, 0, f.bodies.len()),
		EntryPoint:      entry,
	}
	for _, fn := range f.functions.items {
		out.Functions = append(out.Functions, *fn)
	}
	for _, body := range f.bodies.items {
		out.CodeBlockBodies = append(out.CodeBlockBodies, *body)
	}
	return out
}
