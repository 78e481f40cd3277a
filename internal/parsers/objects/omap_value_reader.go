package objects

import (
	"encoding/binary"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

const omapLabel = "Object map"

// omapValDefinedFlags is the set of flag bits an object map value may carry.
const omapValDefinedFlags = types.OmapValDeleted | types.OmapValSaved |
	types.OmapValEncrypted | types.OmapValNoheader | types.OmapValCryptoGeneration

// ReadOmapValue parses an on-disk object map value and checks its
// consistency. Deleted mappings are placeholders and must not be followed to
// a block; encrypted and headerless objects carry no verifiable header, so
// the check cannot proceed past them.
func ReadOmapValue(data []byte, ctx *checker.Context) (types.OmapValT, error) {
	if len(data) != types.OmapValSize {
		return types.OmapValT{}, checker.Structuralf(omapLabel, "wrong size of value.")
	}

	val := types.OmapValT{
		OvFlags: binary.LittleEndian.Uint32(data[0:4]),
		OvSize:  binary.LittleEndian.Uint32(data[4:8]),
		OvPaddr: types.Paddr(binary.LittleEndian.Uint64(data[8:16])),
	}

	if val.OvFlags&^omapValDefinedFlags != 0 {
		return types.OmapValT{}, checker.Invariantf(omapLabel, "undefined flag in use.")
	}
	if val.OvFlags&types.OmapValDeleted != 0 {
		return types.OmapValT{}, checker.Consistencyf(omapLabel, "deleted mapping in use.")
	}
	if val.OvFlags&types.OmapValNoheader != 0 {
		return types.OmapValT{}, checker.Environmentf(omapLabel, nil, "headerless objects are not supported.")
	}
	if val.OvFlags&types.OmapValEncrypted != 0 {
		return types.OmapValT{}, checker.Environmentf(omapLabel, nil, "encrypted objects are not supported.")
	}

	if !val.OvPaddr.Validate() {
		return types.OmapValT{}, checker.Invariantf(omapLabel, "invalid address in value.")
	}
	if val.OvSize == 0 || val.OvSize%ctx.BlockSize != 0 {
		return types.OmapValT{}, checker.Invariantf(omapLabel, "size isn't a multiple of the block size.")
	}

	return val, nil
}
