package js_scanner

import (
	"sync"

	"github.com/kilnjs/kiln/internal/config"
	"github.com/kilnjs/kiln/internal/js_ast"
	"github.com/kilnjs/kiln/internal/logger"
)

// One module's worth of input to the scan phase. The source index must equal
// the input's position in the slice passed to ScanAll.
type ScanInput struct {
	Source  logger.Source
	Tree    *js_ast.AST
	Options config.ScanOptions
}

// ScanAll scans every module concurrently. Each scan touches only its own
// tree and its own result slot, so no locking is needed beyond the barrier.
// Results are returned in input order. Scanning cannot fail; any diagnostics
// are in each result's Msgs.
func ScanAll(inputs []ScanInput) []ScanResult {
	results := make([]ScanResult, len(inputs))

	waitGroup := sync.WaitGroup{}
	waitGroup.Add(len(inputs))
	for i, input := range inputs {
		go func(i int, input ScanInput) {
			defer waitGroup.Done()
			if input.Source.Index != uint32(i) {
				panic("Internal error")
			}
			results[i] = NewScanner(input.Source, input.Tree, input.Options).Scan()
		}(i, input)
	}
	waitGroup.Wait()

	return results
}
