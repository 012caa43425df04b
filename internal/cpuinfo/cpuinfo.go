// Package cpuinfo reports the host's vector ISA capabilities. The kernels
// themselves are plain Go and rely on compiler auto-vectorization of their
// fixed-trip-count loops, so the report is informational: it surfaces in the
// backend name and the CLI, not in dispatch.
package cpuinfo

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// Features returns a comma-separated summary of the vector extensions
// detected on the host, or the empty string when none are.
func Features() string {
	var feats []string

	switch {
	case cpu.X86.HasAVX512F:
		feats = append(feats, "avx512")
	case cpu.X86.HasAVX2:
		feats = append(feats, "avx2")
	case cpu.X86.HasSSE42:
		feats = append(feats, "sse4.2")
	}

	if cpu.ARM64.HasASIMD {
		feats = append(feats, "neon")
	}
	if cpu.ARM64.HasSVE {
		feats = append(feats, "sve")
	}

	return strings.Join(feats, ",")
}
