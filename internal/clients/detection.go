package clients

import (
	"path/filepath"

	"github.com/thorrdu/cutc/internal/utils"
)

// DetectionKind classifies what the project root says about IDEs in use
type DetectionKind int

const (
	// DetectionNone means no marker directory exists
	DetectionNone DetectionKind = iota
	// DetectionSingle means exactly one marker directory exists
	DetectionSingle
	// DetectionAmbiguous means more than one marker directory exists
	DetectionAmbiguous
)

func (k DetectionKind) String() string {
	switch k {
	case DetectionSingle:
		return "single"
	case DetectionAmbiguous:
		return "ambiguous"
	default:
		return "none"
	}
}

// Detection is the result of probing a project root
type Detection struct {
	Kind DetectionKind
	// Client is set only when Kind is DetectionSingle
	Client Client
	// Found lists every client whose marker directory exists
	Found []Client
}

// Detect inspects root for IDE marker directories.
// It has no side effects; a missing directory is a normal result.
// A marker path that is a regular file does not count.
func (r *Registry) Detect(root string) Detection {
	var found []Client
	for _, client := range r.GetAll() {
		if utils.IsDirectory(filepath.Join(root, client.MarkerDir())) {
			found = append(found, client)
		}
	}

	switch len(found) {
	case 0:
		return Detection{Kind: DetectionNone}
	case 1:
		return Detection{Kind: DetectionSingle, Client: found[0], Found: found}
	default:
		return Detection{Kind: DetectionAmbiguous, Found: found}
	}
}
