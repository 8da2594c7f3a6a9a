package cfg

import "fmt"

// ReturnBranch builds a terminator that returns to the caller.
func ReturnBranch() *Branch {
	return &Branch{Kind: BranchReturn}
}

// DirectCallBranch builds an unconditional call to the given function. The
// probability is 1: the call is always taken once control reaches its block.
func DirectCallBranch(target ID) *Branch {
	return &Branch{
		Kind:             BranchDirectCall,
		Targets:          []ID{target},
		TakenProbability: []float64{1},
	}
}

// ConditionalBranch builds a conditional jump to the given code block, taken
// with the given probability. The not-taken path is the physically next block
// in the owning function; nothing else encodes it.
func ConditionalBranch(target ID, probability float64) *Branch {
	return &Branch{
		Kind:             BranchConditionalDirect,
		Targets:          []ID{target},
		TakenProbability: []float64{probability},
	}
}

// Validate checks that the branch carries exactly the fields its kind allows.
func (b *Branch) Validate() error {
	switch b.Kind {
	case BranchReturn:
		if len(b.Targets) != 0 || len(b.TakenProbability) != 0 {
			return fmt.Errorf("%w: return branch must not carry targets or probabilities", ErrInvalidArgument)
		}
	case BranchDirectCall:
		if len(b.Targets) != 1 || len(b.TakenProbability) != 1 {
			return fmt.Errorf("%w: direct call branch needs exactly 1 target and 1 probability, got %d/%d",
				ErrInvalidArgument, len(b.Targets), len(b.TakenProbability))
		}
	case BranchConditionalDirect:
		if len(b.Targets) != 1 || len(b.TakenProbability) != 1 {
			return fmt.Errorf("%w: conditional branch needs exactly 1 target and 1 probability, got %d/%d",
				ErrInvalidArgument, len(b.Targets), len(b.TakenProbability))
		}
		if p := b.TakenProbability[0]; p < 0 || p > 1 {
			return fmt.Errorf("%w: taken probability %v outside [0,1]", ErrInvalidArgument, p)
		}
	case BranchCodePrefetch:
		if len(b.Targets) != 0 || len(b.TakenProbability) != 0 {
			return fmt.Errorf("%w: prefetch branch must not carry targets or probabilities", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown branch kind %q", ErrInvalidArgument, b.Kind)
	}
	return nil
}
