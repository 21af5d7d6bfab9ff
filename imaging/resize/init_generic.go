//go:build (!amd64 && !arm64) || purego

package resize

import (
	_ "github.com/cwbudde/algo-resize/internal/arch/generic"
)
