//go:build arm64 && !purego

package alpha

import (
	_ "github.com/cwbudde/algo-resize/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-resize/internal/arch/generic"
)
