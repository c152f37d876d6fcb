package task

import (
	"fmt"
	"strings"
)

// Kind identifies the operation of a node.
type Kind uint8

// Node kinds.
const (
	KindList             Kind = iota // children run in order on one surface
	KindSequence                     // linearized program, root only
	KindSurface                      // copy of an external linear surface
	KindBlend                        // source composited onto destination
	KindTransformation               // affine transformation of the input
	KindSurfaceResample              // input rendered to scratch and resampled
	KindContour                      // filled path
	KindMesh                         // vertex-colored triangles
	KindBlur                         // box or gaussian blur of the input
	KindPixelColorMatrix             // per-pixel 5x5 color transform
	KindPixelGamma                   // per-pixel gamma curve
	KindSurfaceCreate                // allocate a scratch surface
	KindSurfaceConvert               // copy of an external packed surface
	KindSurfaceDestroy               // release a scratch surface
)

var kindNames = [...]string{
	KindList:             "List",
	KindSequence:         "Sequence",
	KindSurface:          "Surface",
	KindBlend:            "Blend",
	KindTransformation:   "Transformation",
	KindSurfaceResample:  "SurfaceResample",
	KindContour:          "Contour",
	KindMesh:             "Mesh",
	KindBlur:             "Blur",
	KindPixelColorMatrix: "PixelColorMatrix",
	KindPixelGamma:       "PixelGamma",
	KindSurfaceCreate:    "SurfaceCreate",
	KindSurfaceConvert:   "SurfaceConvert",
	KindSurfaceDestroy:   "SurfaceDestroy",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Structural reports whether k only orders other nodes or manages
// surfaces, and therefore needs no backend.
func (k Kind) Structural() bool {
	switch k {
	case KindList, KindSequence, KindSurfaceCreate, KindSurfaceDestroy:
		return true
	}
	return false
}

// Backend says which renderer can execute a node.
type Backend uint8

// Backends.
const (
	BackendAbstract Backend = iota
	BackendSoftware
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAbstract:
		return "abstract"
	case BackendSoftware:
		return "software"
	default:
		return fmt.Sprintf("Backend(%d)", b)
	}
}

// Flags annotate a node.
type Flags uint8

// Node flags.
const (
	FlagBounds Flags = 1 << iota // Target and Bounds are computed
	FlagDraft                    // tree is a low resolution preview
	FlagOnto                     // composite onto existing content
)

// Has reports whether every bit of f2 is set.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// String lists the set flags.
func (f Flags) String() string {
	var parts []string
	for _, p := range []struct {
		flag Flags
		name string
	}{{FlagBounds, "bounds"}, {FlagDraft, "draft"}, {FlagOnto, "onto"}} {
		if f.Has(p.flag) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, ",")
}
