package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l3aro/go-cfg-bench/pkg/cfg"
)

func TestIDAllocator_StartsAtOneAndIncreases(t *testing.T) {
	alloc := NewIDAllocator()

	assert.Equal(t, cfg.ID(1), alloc.Next())
	assert.Equal(t, cfg.ID(2), alloc.Next())
	assert.Equal(t, cfg.ID(3), alloc.Next())
}

func TestIDAllocator_InstancesAreIsolated(t *testing.T) {
	a := NewIDAllocator()
	b := NewIDAllocator()

	a.Next()
	a.Next()

	assert.Equal(t, cfg.ID(1), b.Next(), "allocators must not share state")
}

func TestFactory_AddCodeBlockBody(t *testing.T) {
	f := NewFactory(nil)

	first := f.AddCodeBlockBody("int x = 1;")
	second := f.AddCodeBlockBody("int y = 2;")

	assert.Equal(t, cfg.ID(1), first.ID)
	assert.Equal(t, cfg.ID(2), second.ID)
	assert.Equal(t, "int x = 1;", first.Instructions)

	got, ok := f.Body(first.ID)
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestFactory_AddCodeBlockIsEmpty(t *testing.T) {
	f := NewFactory(nil)

	block := f.AddCodeBlock()

	assert.Equal(t, cfg.ID(1), block.ID)
	assert.Nil(t, block.Terminator)
	assert.Zero(t, block.BodyID)
}

func TestFactory_FunctionName(t *testing.T) {
	f := NewFactory(nil)

	assert.Equal(t, "function_1", f.FunctionName(1))
	assert.Equal(t, "function_42", f.FunctionName(42))
}

func TestFactory_AddFunctionWithID(t *testing.T) {
	f := NewFactory(nil)

	fn, err := f.AddFunctionWithID(7)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID(7), fn.ID)
	assert.Empty(t, fn.Instructions)

	sig, ok := f.Body(fn.Signature.BodyID)
	require.True(t, ok, "signature must reference a registered body")
	assert.Equal(t, "void function_7", sig.Instructions)
}

func TestFactory_AddFunctionWithID_Duplicate(t *testing.T) {
	f := NewFactory(nil)

	_, err := f.AddFunctionWithID(7)
	require.NoError(t, err)

	_, err = f.AddFunctionWithID(7)
	require.Error(t, err)
	assert.ErrorIs(t, err, cfg.ErrDuplicateEntity)
}

func TestFactory_AddCodePrefetchBlock(t *testing.T) {
	tests := []struct {
		name    string
		opts    PrefetchOptions
		wantErr bool
	}{
		{"function target", PrefetchOptions{FunctionTarget: 42, Degree: 2}, false},
		{"code block target", PrefetchOptions{CodeBlockTarget: 9, Degree: 1}, false},
		{"both targets", PrefetchOptions{FunctionTarget: 42, CodeBlockTarget: 9, Degree: 1}, true},
		{"neither target", PrefetchOptions{Degree: 1}, true},
		{"zero degree", PrefetchOptions{FunctionTarget: 42}, true},
		{"negative degree", PrefetchOptions{FunctionTarget: 42, Degree: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFactory(nil)
			block, err := f.AddCodePrefetchBlock(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, cfg.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, block.Terminator, "prefetch is not a control flow terminator")

			body, ok := f.Body(block.BodyID)
			require.True(t, ok)
			require.NotNil(t, body.CodePrefetch)
			assert.Equal(t, tt.opts.Degree, body.CodePrefetch.Degree)
		})
	}
}

func TestFactory_PrefetchBlockEchoesInputs(t *testing.T) {
	f := NewFactory(nil)

	block, err := f.AddCodePrefetchBlock(PrefetchOptions{FunctionTarget: 42, Degree: 2})
	require.NoError(t, err)

	body, ok := f.Body(block.BodyID)
	require.True(t, ok)
	assert.Equal(t, cfg.PrefetchFunction, body.CodePrefetch.TargetKind)
	assert.Equal(t, cfg.ID(42), body.CodePrefetch.TargetID)
	assert.Equal(t, 2, body.CodePrefetch.Degree)
	assert.Empty(t, body.Instructions, "prefetch body carries no instruction text")
}

func TestFactory_AssemblePreservesCreationOrder(t *testing.T) {
	f := NewFactory(nil)

	// Interleave kinds so creation order differs from per-kind id order.
	_, err := f.AddFunctionWithID(f.alloc.Next())
	require.NoError(t, err)
	f.AddCodeBlockBody("int x = 1;")
	secondFn, err := f.AddFunctionWithID(f.alloc.Next())
	require.NoError(t, err)
	f.AddCodeBlockBody("int y = 2;")

	out := f.Assemble(secondFn.ID)

	require.Len(t, out.Functions, 2)
	require.Len(t, out.CodeBlockBodies, 4)
	assert.Equal(t, secondFn.ID, out.EntryPoint)

	// Bodies in creation order: sig 1, free text, sig 2, free text.
	assert.Equal(t, "void function_1", out.CodeBlockBodies[0].Instructions)
	assert.Equal(t, "int x = 1;", out.CodeBlockBodies[1].Instructions)
	assert.Equal(t, "int y = 2;", out.CodeBlockBodies[3].Instructions)

	assert.Less(t, out.Functions[0].ID, out.Functions[1].ID)
}
