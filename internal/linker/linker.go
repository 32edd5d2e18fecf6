package linker

// The link stage consumes the assembled module graph. Its first job is
// deciding execution order: a depth-first post-order walk over static imports
// starting from the runtime and then each entry point, so that every module
// runs after everything it statically imports. Import cycles can't satisfy
// that for every edge; the walk breaks each cycle where it finds it and
// reports the cycle as a warning, matching how JavaScript engines execute
// cyclic ESM graphs.

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kilnjs/kiln/internal/ast"
	"github.com/kilnjs/kiln/internal/graph"
	"github.com/kilnjs/kiln/internal/logger"
)

type LinkStage struct {
	table   *graph.ModuleTable
	entries []ast.ModuleID
	runtime ast.ModuleID
	log     logger.Log

	// Every module in the graph in execution order. The runtime is always
	// first. Populated by SortModules.
	SortedModules []ast.ModuleID
}

func NewLinkStage(table *graph.ModuleTable, entries []ast.ModuleID, runtime ast.ModuleID, log logger.Log) *LinkStage {
	return &LinkStage{
		table:   table,
		entries: entries,
		runtime: runtime,
		log:     log,
	}
}

// The traversal stack holds two kinds of actions. Visiting a module pushes
// its exit action and then one visit action per static dependency; popping
// the exit action assigns the module's execution order. This makes the
// post-order walk iterative, so pathologically deep graphs can't overflow
// the goroutine stack.
type sortAction struct {
	module ast.ModuleID
	exit   bool
}

// SortModules assigns a dense execution order to every reachable module and
// fills in SortedModules. Cycles among static imports are broken at the edge
// that closes them and reported as warnings, one per distinct cycle. The
// whole pass runs under the table's write lock.
func (s *LinkStage) SortModules() {
	s.table.Lock()
	defer s.table.Unlock()

	// Entries are pushed in reverse so they're visited in the order given.
	// The runtime is pushed last so it's visited before everything else and
	// always lands at execution order zero.
	stack := make([]sortAction, 0, len(s.entries)+1)
	for i := len(s.entries) - 1; i >= 0; i-- {
		stack = append(stack, sortAction{module: s.entries[i]})
	}
	stack = append(stack, sortAction{module: s.runtime})

	// Maps each module currently between its visit and exit actions to the
	// position of its exit action on the stack. Revisiting such a module
	// means the walk closed a cycle, and the exit actions above that position
	// are exactly the modules on the cycle path.
	executing := make(map[ast.ModuleID]int)
	visited := make(map[ast.ModuleID]bool)

	var cycles [][]ast.ModuleID
	seenCycles := make(map[string]bool)
	nextExecOrder := uint32(0)

	for len(stack) > 0 {
		action := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if action.exit {
			delete(executing, action.module)
			s.assignExecOrder(action.module, nextExecOrder)
			nextExecOrder++
			s.SortedModules = append(s.SortedModules, action.module)
			continue
		}

		id := action.module
		if visited[id] {
			if start, ok := executing[id]; ok {
				// This module is an ancestor of itself in the walk. The cycle
				// path is the still-executing modules from it down to here,
				// closed off by the module itself.
				chain := []ast.ModuleID{}
				for _, pending := range stack[start:] {
					if pending.exit {
						chain = append(chain, pending.module)
					}
				}
				chain = append(chain, id)
				key := cycleKey(chain)
				if !seenCycles[key] {
					seenCycles[key] = true
					cycles = append(cycles, chain)
				}
			}
			continue
		}
		visited[id] = true

		stack = append(stack, sortAction{module: id, exit: true})
		executing[id] = len(stack) - 1

		// Dependencies are pushed in reverse so they're visited in the order
		// their import statements appear in the source
		deps := s.staticDependencies(id)
		for i := len(deps) - 1; i >= 0; i-- {
			stack = append(stack, sortAction{module: deps[i]})
		}
	}

	for _, chain := range cycles {
		names := make([]string, len(chain))
		for i, id := range chain {
			names[i] = s.moduleName(id)
		}
		s.log.AddMsg(logger.Msg{
			Kind: logger.Warning,
			Data: logger.MsgData{Text: "Circular dependency: " + strings.Join(names, " -> ")},
		})
	}

	if s.runtime.Kind != ast.ModuleNormal {
		panic("Internal error")
	}
	if len(s.SortedModules) == 0 || s.SortedModules[0] != s.runtime {
		panic("The runtime module must always be executed first")
	}
}

func (s *LinkStage) assignExecOrder(id ast.ModuleID, order uint32) {
	switch id.Kind {
	case ast.ModuleNormal:
		module := &s.table.NormalModules[id.Index]
		if module.ExecOrder != graph.ExecOrderUnassigned {
			panic("Internal error")
		}
		module.ExecOrder = order
	case ast.ModuleExternal:
		module := &s.table.ExternalModules[id.Index]
		if module.ExecOrder != graph.ExecOrderUnassigned {
			panic("Internal error")
		}
		module.ExecOrder = order
	default:
		panic("Internal error")
	}
}

// The modules that must execute before this one, in import statement order.
// Dynamic imports don't constrain execution order and are skipped. External
// modules have no dependencies of their own.
func (s *LinkStage) staticDependencies(id ast.ModuleID) []ast.ModuleID {
	if id.Kind != ast.ModuleNormal {
		return nil
	}

	module := &s.table.NormalModules[id.Index]
	deps := make([]ast.ModuleID, 0, len(module.ImportRecords))
	for i := range module.ImportRecords {
		record := &module.ImportRecords[i]
		if !record.Kind.IsStatic() {
			continue
		}
		if !record.ResolvedModule.IsValid() {
			// Resolution runs before linking and either fills this in or
			// fails the build
			panic(fmt.Sprintf("Unresolved static import %q in %q",
				record.Path.Text, module.Source.PrettyPath))
		}
		deps = append(deps, record.ResolvedModule)
	}
	return deps
}

func (s *LinkStage) moduleName(id ast.ModuleID) string {
	switch id.Kind {
	case ast.ModuleNormal:
		return s.table.NormalModules[id.Index].Source.PrettyPath
	case ast.ModuleExternal:
		return s.table.ExternalModules[id.Index].Path.Text
	default:
		panic("Internal error")
	}
}

// The same cycle can be entered from different modules depending on traversal
// order. Keying by the member set reports each distinct cycle once no matter
// where the walk happened to close it.
func cycleKey(chain []ast.ModuleID) string {
	seen := make(map[ast.ModuleID]bool, len(chain))
	members := make([]ast.ModuleID, 0, len(chain))
	for _, id := range chain {
		if !seen[id] {
			seen[id] = true
			members = append(members, id)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Kind != members[j].Kind {
			return members[i].Kind < members[j].Kind
		}
		return members[i].Index < members[j].Index
	})

	sb := strings.Builder{}
	for _, id := range members {
		fmt.Fprintf(&sb, "%d:%d;", id.Kind, id.Index)
	}
	return sb.String()
}
