package cfg

import "fmt"

// Validate checks the structural invariants of an assembled artifact: the
// entry point resolves to a known function, ids are globally unique across
// every entity kind, signatures and prefetch payloads resolve to bodies,
// branches are well-formed, and every conditional branch has a physically
// adjacent fallthrough block.
func (c *CFG) Validate() error {
	seen := make(map[ID]string)
	claim := func(id ID, kind string) error {
		if id <= 0 {
			return fmt.Errorf("%w: %s id %d is not positive", ErrInvalidArgument, kind, id)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: id %d used by both %s and %s", ErrDuplicateEntity, id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	bodies := make(map[ID]*CodeBlockBody, len(c.CodeBlockBodies))
	for i := range c.CodeBlockBodies {
		body := &c.CodeBlockBodies[i]
		if err := claim(body.ID, "code block body"); err != nil {
			return err
		}
		if body.Instructions != "" && body.CodePrefetch != nil {
			return fmt.Errorf("%w: body %d carries both instruction text and a prefetch descriptor",
				ErrInvalidArgument, body.ID)
		}
		bodies[body.ID] = body
	}

	funcs := make(map[ID]bool, len(c.Functions))
	for i := range c.Functions {
		fn := &c.Functions[i]
		if err := claim(fn.ID, "function"); err != nil {
			return err
		}
		funcs[fn.ID] = true
	}

	for i := range c.Functions {
		if err := c.validateFunction(&c.Functions[i], claim, bodies, funcs); err != nil {
			return err
		}
	}

	if !funcs[c.EntryPoint] {
		return fmt.Errorf("%w: entry point function %d not present in artifact",
			ErrInvalidArgument, c.EntryPoint)
	}
	return nil
}

func (c *CFG) validateFunction(fn *Function, claim func(ID, string) error,
	bodies map[ID]*CodeBlockBody, funcs map[ID]bool) error {
	if _, ok := bodies[fn.Signature.BodyID]; !ok {
		return fmt.Errorf("%w: function %d signature references unknown body %d",
			ErrInvalidArgument, fn.ID, fn.Signature.BodyID)
	}

	blockIDs := make(map[ID]bool, len(fn.Instructions))
	for i := range fn.Instructions {
		block := &fn.Instructions[i]
		if err := claim(block.ID, "code block"); err != nil {
			return err
		}
		blockIDs[block.ID] = true
	}

	for i := range fn.Instructions {
		block := &fn.Instructions[i]
		if block.BodyID != 0 {
			if _, ok := bodies[block.BodyID]; !ok {
				return fmt.Errorf("%w: block %d references unknown body %d",
					ErrInvalidArgument, block.ID, block.BodyID)
			}
		}
		if block.Terminator == nil {
			// Prefetch slots have no terminator but must carry a payload.
			if block.BodyID == 0 {
				return fmt.Errorf("%w: block %d has neither a terminator nor a body",
					ErrInvalidArgument, block.ID)
			}
			continue
		}
		if err := block.Terminator.Validate(); err != nil {
			return fmt.Errorf("function %d block %d: %w", fn.ID, block.ID, err)
		}
		switch block.Terminator.Kind {
		case BranchDirectCall:
			if target := block.Terminator.Targets[0]; !funcs[target] {
				return fmt.Errorf("%w: block %d calls unknown function %d",
					ErrInvalidArgument, block.ID, target)
			}
		case BranchConditionalDirect:
			if target := block.Terminator.Targets[0]; !blockIDs[target] {
				return fmt.Errorf("%w: block %d jumps to block %d outside function %d",
					ErrInvalidArgument, block.ID, target, fn.ID)
			}
			// The fallthrough path is the next physical block.
			if i == len(fn.Instructions)-1 {
				return fmt.Errorf("%w: conditional block %d has no fallthrough block after it",
					ErrInvalidArgument, block.ID)
			}
		}
	}
	return nil
}
