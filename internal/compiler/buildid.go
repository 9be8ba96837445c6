package compiler

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// buildNamespace scopes name-based build ids.
var buildNamespace = uuid.MustParse("6f1c7c4e-2b8e-4d55-9a43-5e0c2b1d9f70")

// BuildID derives a stable id from the input bytes, so unchanged inputs always
// produce the same id.
func BuildID(sources Sources) uuid.UUID {
	var name []byte
	for _, src := range sources.List() {
		name = binary.BigEndian.AppendUint64(name, uint64(len(src.Data)))
		name = append(name, src.Data...)
	}
	return uuid.NewSHA1(buildNamespace, name)
}
