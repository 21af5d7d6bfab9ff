//go:build (!amd64 && !arm64) || purego

package alpha

import (
	_ "github.com/cwbudde/algo-resize/internal/arch/generic"
)
