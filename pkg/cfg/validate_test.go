package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchValidate(t *testing.T) {
	tests := []struct {
		name    string
		branch  *Branch
		wantErr bool
	}{
		{"return", ReturnBranch(), false},
		{"direct call", DirectCallBranch(3), false},
		{"conditional", ConditionalBranch(3, 0.5), false},
		{"conditional p=0", ConditionalBranch(3, 0), false},
		{"conditional p=1", ConditionalBranch(3, 1), false},
		{"return with target", &Branch{Kind: BranchReturn, Targets: []ID{1}}, true},
		{"direct call no target", &Branch{Kind: BranchDirectCall}, true},
		{"direct call two targets", &Branch{Kind: BranchDirectCall, Targets: []ID{1, 2}, TakenProbability: []float64{1, 1}}, true},
		{"conditional missing probability", &Branch{Kind: BranchConditionalDirect, Targets: []ID{1}}, true},
		{"conditional p out of range", ConditionalBranch(3, 1.5), true},
		{"conditional negative p", ConditionalBranch(3, -0.5), true},
		{"unknown kind", &Branch{Kind: "jump"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.branch.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// minimalCFG builds a single leaf function artifact that passes validation.
func minimalCFG() *CFG {
	return &CFG{
		Functions: []Function{{
			ID:        2,
			Signature: Signature{BodyID: 1},
			Instructions: []CodeBlock{
				{ID: 3, Terminator: ReturnBranch()},
			},
		}},
		CodeBlockBodies: []CodeBlockBody{
			{ID: 1, Instructions: "void function_2"},
		},
		EntryPoint: 2,
	}
}

func TestCFGValidate_Minimal(t *testing.T) {
	require.NoError(t, minimalCFG().Validate())
}

func TestCFGValidate_MissingEntryPoint(t *testing.T) {
	c := minimalCFG()
	c.EntryPoint = 99

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_DuplicateIDAcrossKinds(t *testing.T) {
	c := minimalCFG()
	c.Functions[0].ID = 1 // collides with the signature body
	c.EntryPoint = 1

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEntity)
}

func TestCFGValidate_SignatureMustResolve(t *testing.T) {
	c := minimalCFG()
	c.Functions[0].Signature.BodyID = 42

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_ConditionalNeedsFallthrough(t *testing.T) {
	c := minimalCFG()
	fn := &c.Functions[0]
	// A conditional as the last block has no physical successor to fall
	// through to.
	fn.Instructions = []CodeBlock{
		{ID: 3, Terminator: ConditionalBranch(3, 0.5)},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_ConditionalTargetInsideFunction(t *testing.T) {
	c := minimalCFG()
	fn := &c.Functions[0]
	fn.Instructions = []CodeBlock{
		{ID: 3, Terminator: ConditionalBranch(77, 0.5)},
		{ID: 4, Terminator: ReturnBranch()},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_DirectCallTargetMustExist(t *testing.T) {
	c := minimalCFG()
	fn := &c.Functions[0]
	fn.Instructions = []CodeBlock{
		{ID: 3, Terminator: DirectCallBranch(77)},
	}

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_BodyTextAndPrefetchExclusive(t *testing.T) {
	c := minimalCFG()
	c.CodeBlockBodies = append(c.CodeBlockBodies, CodeBlockBody{
		ID:           4,
		Instructions: "int x = 1;",
		CodePrefetch: &CodePrefetch{TargetKind: PrefetchFunction, TargetID: 2, Degree: 1},
	})

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCFGValidate_BlockNeedsTerminatorOrBody(t *testing.T) {
	c := minimalCFG()
	fn := &c.Functions[0]
	fn.Instructions = append(fn.Instructions, CodeBlock{ID: 4})

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFunctionIsLeaf(t *testing.T) {
	leaf := Function{Instructions: []CodeBlock{{ID: 1, Terminator: ReturnBranch()}}}
	assert.True(t, leaf.IsLeaf())

	empty := Function{}
	assert.False(t, empty.IsLeaf())

	internal := Function{Instructions: []CodeBlock{
		{ID: 1, Terminator: ConditionalBranch(3, 0.5)},
		{ID: 2, Terminator: ReturnBranch()},
	}}
	assert.False(t, internal.IsLeaf())
}
