package artifact

import "github.com/l3aro/go-cfg-bench/pkg/cfg"

// Stats summarizes the shape of an artifact for reporting.
type Stats struct {
	EntryPoint    cfg.ID `json:"entry_point_function"`
	Functions     int    `json:"functions"`
	LeafFunctions int    `json:"leaf_functions"`
	CodeBlocks    int    `json:"code_blocks"`
	Bodies        int    `json:"code_block_bodies"`
	Conditionals  int    `json:"conditional_branches"`
	DirectCalls   int    `json:"direct_calls"`
	Prefetches    int    `json:"code_prefetches"`
}

// Summarize counts the entities and branch kinds in an artifact.
func Summarize(c *cfg.CFG) Stats {
	s := Stats{
		EntryPoint: c.EntryPoint,
		Functions:  len(c.Functions),
		Bodies:     len(c.CodeBlockBodies),
	}
	for i := range c.Functions {
		fn := &c.Functions[i]
		if fn.IsLeaf() {
			s.LeafFunctions++
		}
		s.CodeBlocks += len(fn.Instructions)
		for j := range fn.Instructions {
			t := fn.Instructions[j].Terminator
			if t == nil {
				continue
			}
			switch t.Kind {
			case cfg.BranchConditionalDirect:
				s.Conditionals++
			case cfg.BranchDirectCall:
				s.DirectCalls++
			}
		}
	}
	for i := range c.CodeBlockBodies {
		if c.CodeBlockBodies[i].CodePrefetch != nil {
			s.Prefetches++
		}
	}
	return s
}
