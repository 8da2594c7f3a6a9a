// Package cfg defines the data structures for synthetic Control Flow Graph
// (CFG) artifacts: functions, code blocks, code block bodies, and terminator
// branches, plus validation of assembled graphs.
package cfg

// ID is a globally unique entity identifier. IDs are positive and drawn from
// a single allocator per generation session, so a function, a code block, and
// a code block body never share an id.
type ID int64

// BranchKind represents the kind of a terminator branch.
type BranchKind string

const (
	BranchReturn            BranchKind = "return"             // Return to the caller
	BranchDirectCall        BranchKind = "direct_call"        // Unconditional call to a function
	BranchConditionalDirect BranchKind = "conditional_direct" // Conditional jump to a code block
	BranchCodePrefetch      BranchKind = "code_prefetch"      // Software code prefetch
)

// PrefetchTargetKind represents what a code prefetch instruction targets.
type PrefetchTargetKind string

const (
	PrefetchFunction  PrefetchTargetKind = "function"   // Prefetch a function's code
	PrefetchCodeBlock PrefetchTargetKind = "code_block" // Prefetch a single code block
)

// CodePrefetch describes a software prefetch of a function or code block's
// backing storage. It occupies a CodeBlockBody in place of instruction text.
type CodePrefetch struct {
	TargetKind PrefetchTargetKind `json:"type" msgpack:"type"`
	TargetID   ID                 `json:"target_id" msgpack:"target_id"`
	Degree     int                `json:"degree" msgpack:"degree"`
}

// CodeBlockBody holds the payload of a code block: either raw instruction
// text (a signature string or an arithmetic workload) or a code prefetch
// descriptor. The two are mutually exclusive.
type CodeBlockBody struct {
	ID           ID            `json:"id" msgpack:"id"`
	Instructions string        `json:"instructions,omitempty" msgpack:"instructions,omitempty"`
	CodePrefetch *CodePrefetch `json:"code_prefetch,omitempty" msgpack:"code_prefetch,omitempty"`
}

// Branch is the control transfer terminating a code block. Targets and
// TakenProbability are parallel sequences whose arity depends on Kind; use
// the constructors and Validate to keep them consistent.
type Branch struct {
	Kind             BranchKind `json:"type" msgpack:"type"`
	Targets          []ID       `json:"targets,omitempty" msgpack:"targets,omitempty"`
	TakenProbability []float64  `json:"taken_probability,omitempty" msgpack:"taken_probability,omitempty"`
}

// CodeBlock is the unit of control flow. A zero BodyID means the block has
// no payload; a nil Terminator means the block is a non-terminating
// instruction slot (a prefetch).
type CodeBlock struct {
	ID         ID      `json:"id" msgpack:"id"`
	BodyID     ID      `json:"code_block_body_id,omitempty" msgpack:"code_block_body_id,omitempty"`
	Terminator *Branch `json:"terminator_branch,omitempty" msgpack:"terminator_branch,omitempty"`
}

// Signature references the code block body holding a function's declaration
// text.
type Signature struct {
	BodyID ID `json:"code_block_body_id" msgpack:"code_block_body_id"`
}

// Function is a named sequence of code blocks. The physical order of
// Instructions is load-bearing: the block after a conditional branch is its
// fallthrough path.
type Function struct {
	ID           ID          `json:"id" msgpack:"id"`
	Signature    Signature   `json:"signature" msgpack:"signature"`
	Instructions []CodeBlock `json:"instructions,omitempty" msgpack:"instructions,omitempty"`
}

// CFG is the complete synthesized artifact. Functions and CodeBlockBodies
// are listed in creation order; that order is the serialization order.
type CFG struct {
	Functions       []Function      `json:"functions" msgpack:"functions"`
	CodeBlockBodies []CodeBlockBody `json:"code_block_bodies" msgpack:"code_block_bodies"`
	EntryPoint      ID              `json:"entry_point_function" msgpack:"entry_point_function"`
}

// FunctionByID returns the function with the given id, if present.
func (c *CFG) FunctionByID(id ID) (*Function, bool) {
	for i := range c.Functions {
		if c.Functions[i].ID == id {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

// NumBlocks returns the total number of code blocks across all functions.
func (c *CFG) NumBlocks() int {
	n := 0
	for i := range c.Functions {
		n += len(c.Functions[i].Instructions)
	}
	return n
}

// IsLeaf reports whether the function has the shape of a leaf: a single
// return block with no targets.
func (f *Function) IsLeaf() bool {
	if len(f.Instructions) != 1 {
		return false
	}
	t := f.Instructions[0].Terminator
	return t != nil && t.Kind == BranchReturn && len(t.Targets) == 0
}
