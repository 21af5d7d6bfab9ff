//go:build amd64 && !purego

package resize

import (
	_ "github.com/cwbudde/algo-resize/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-resize/internal/arch/amd64/sse4" // register SSE4.1 backend
	_ "github.com/cwbudde/algo-resize/internal/arch/generic"    // register generic backend
)
