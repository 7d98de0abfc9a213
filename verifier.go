package flatbuffers

import (
	"errors"

	"golang.org/x/xerrors"
)

// Verification failure classes. Errors returned by the Verifier wrap one of
// these sentinels with positional context; match them with errors.Is.
var (
	ErrOutOfBounds          = errors.New("flatbuffers: offset or range outside buffer")
	ErrMisaligned           = errors.New("flatbuffers: misaligned value")
	ErrMalformedVtable      = errors.New("flatbuffers: malformed vtable")
	ErrDepthExceeded        = errors.New("flatbuffers: table nesting deeper than limit")
	ErrTooManyTables        = errors.New("flatbuffers: more tables than limit")
	ErrStringTermination    = errors.New("flatbuffers: string not NUL-terminated within buffer")
	ErrIdentifierMismatch   = errors.New("flatbuffers: file identifier mismatch")
	ErrRequiredFieldMissing = errors.New("flatbuffers: required field missing")
)

// Default verification budgets. They bound how deep and how wide a
// malicious buffer can drive the walk.
const (
	DefaultMaxDepth  = 64
	DefaultMaxTables = 1000000
)

// VerifierOptions bounds the work a Verifier is willing to do on a single
// buffer. Zero values select the defaults.
type VerifierOptions struct {
	// MaxDepth limits table nesting. Each table reached through an offset
	// field consumes one level.
	MaxDepth int
	// MaxTables limits the total number of tables visited, guarding
	// against buffers that fan out rather than nest.
	MaxTables int
}

// TableVerifier checks the fields of one table type. Implementations call
// back into the Verifier's Field/StringField/VectorField/TableField
// primitives for each declared field, mirroring the shape of generated
// accessor code. tablePos has already been validated: its vtable is in
// bounds and its inline region fits the buffer.
type TableVerifier func(v *Verifier, tablePos UOffsetT) error

// Verifier walks an untrusted buffer from the root, checking that every
// offset, length and alignment stays within bounds before any accessor
// trusts it. Verification never mutates the buffer; a buffer that fails
// verification must not be handed to the accessor layer.
//
// A Verifier is single-use state over an immutable buffer and is not safe
// for concurrent use; create one per verification.
type Verifier struct {
	buf  []byte
	opts VerifierOptions

	depth     int
	numTables int
}

// NewVerifier creates a Verifier over buf. opts may be nil for defaults.
func NewVerifier(buf []byte, opts *VerifierOptions) *Verifier {
	v := &Verifier{buf: buf}
	if opts != nil {
		v.opts = *opts
	}
	if v.opts.MaxDepth <= 0 {
		v.opts.MaxDepth = DefaultMaxDepth
	}
	if v.opts.MaxTables <= 0 {
		v.opts.MaxTables = DefaultMaxTables
	}
	return v
}

// VerifyRoot checks the structural integrity of the root table: root
// offset, vtable and inline region. It does not follow field offsets; use
// Root with a TableVerifier for a full schema-driven walk.
func (v *Verifier) VerifyRoot() error {
	return v.Root(nil)
}

// Root resolves the buffer's root offset and verifies the root table,
// walking into fields through the given TableVerifier. Passing nil checks
// the root table's structure only.
func (v *Verifier) Root(verify TableVerifier) error {
	v.depth = 0
	v.numTables = 0

	if err := v.inBounds(0, SizeUOffsetT); err != nil {
		return xerrors.Errorf("root offset: %w", err)
	}
	pos := uint64(GetUOffsetT(v.buf))
	return v.table(pos, verify)
}

// RootWithIdentifier checks the buffer's 4-byte file identifier before
// verifying the root table.
func (v *Verifier) RootWithIdentifier(identifier string, verify TableVerifier) error {
	if len(identifier) != fileIdentifierLength {
		return xerrors.Errorf("identifier %q is not %d bytes: %w",
			identifier, fileIdentifierLength, ErrIdentifierMismatch)
	}
	if err := v.inBounds(SizeUOffsetT, fileIdentifierLength); err != nil {
		return xerrors.Errorf("file identifier: %w", err)
	}
	if string(v.buf[SizeUOffsetT:SizeUOffsetT+fileIdentifierLength]) != identifier {
		return xerrors.Errorf("want %q: %w", identifier, ErrIdentifierMismatch)
	}
	return v.Root(verify)
}

// table verifies one table at pos: its vtable back-reference, the vtable
// itself, and the inline region the vtable declares. The depth and table
// budgets are charged here, before any recursion.
func (v *Verifier) table(pos uint64, verify TableVerifier) error {
	if v.depth >= v.opts.MaxDepth {
		return xerrors.Errorf("table at %d: %w", pos, ErrDepthExceeded)
	}
	v.numTables++
	if v.numTables > v.opts.MaxTables {
		return xerrors.Errorf("table at %d: %w", pos, ErrTooManyTables)
	}

	if err := v.inBounds(pos, SizeSOffsetT); err != nil {
		return xerrors.Errorf("table at %d: %w", pos, err)
	}
	if err := v.aligned(pos, SizeSOffsetT); err != nil {
		return xerrors.Errorf("table at %d: %w", pos, err)
	}

	vtable := int64(pos) - int64(GetSOffsetT(v.buf[pos:]))
	if vtable < 0 {
		return xerrors.Errorf("table at %d: vtable at %d: %w", pos, vtable, ErrOutOfBounds)
	}
	if err := v.inBounds(uint64(vtable), VtableMetadataFields*SizeVOffsetT); err != nil {
		return xerrors.Errorf("table at %d: vtable: %w", pos, err)
	}
	if err := v.aligned(uint64(vtable), SizeVOffsetT); err != nil {
		return xerrors.Errorf("table at %d: vtable: %w", pos, err)
	}

	vsize := uint64(GetVOffsetT(v.buf[vtable:]))
	if vsize < VtableMetadataFields*SizeVOffsetT || vsize%SizeVOffsetT != 0 {
		return xerrors.Errorf("table at %d: vtable size %d: %w", pos, vsize, ErrMalformedVtable)
	}
	if err := v.inBounds(uint64(vtable), vsize); err != nil {
		return xerrors.Errorf("table at %d: vtable: %w", pos, err)
	}

	osize := uint64(GetVOffsetT(v.buf[uint64(vtable)+SizeVOffsetT:]))
	if osize < SizeSOffsetT {
		return xerrors.Errorf("table at %d: inline size %d: %w", pos, osize, ErrMalformedVtable)
	}
	if err := v.inBounds(pos, osize); err != nil {
		return xerrors.Errorf("table at %d: inline region: %w", pos, err)
	}

	// Every declared field must begin inside the inline region. Field
	// checks the full byte range once the width is known.
	for s := uint64(VtableMetadataFields * SizeVOffsetT); s < vsize; s += SizeVOffsetT {
		if voff := uint64(GetVOffsetT(v.buf[uint64(vtable)+s:])); voff != 0 && voff >= osize {
			return xerrors.Errorf("table at %d: field offset %d beyond inline size %d: %w",
				pos, voff, osize, ErrMalformedVtable)
		}
	}

	if verify == nil {
		return nil
	}
	v.depth++
	err := verify(v, UOffsetT(pos))
	v.depth--
	return err
}

// Field bounds-checks the field stored at the given vtable location of a
// verified table. slot is the vtable byte offset of the field (as in
// Table.Offset), size and align describe its inline representation; offset
// fields use SizeUOffsetT for both. The returned position is 0 when the
// field is absent (and required is false).
func (v *Verifier) Field(tablePos UOffsetT, slot VOffsetT, size, align int, required bool) (UOffsetT, error) {
	voff, osize, err := v.fieldOffset(tablePos, slot)
	if err != nil {
		return 0, err
	}
	if voff == 0 {
		if required {
			return 0, xerrors.Errorf("table at %d, slot %d: %w", tablePos, slot, ErrRequiredFieldMissing)
		}
		return 0, nil
	}
	if uint64(voff)+uint64(size) > osize {
		return 0, xerrors.Errorf("table at %d, slot %d: field exceeds inline size %d: %w",
			tablePos, slot, osize, ErrOutOfBounds)
	}
	pos := uint64(tablePos) + uint64(voff)
	if err := v.inBounds(pos, uint64(size)); err != nil {
		return 0, xerrors.Errorf("table at %d, slot %d: %w", tablePos, slot, err)
	}
	if err := v.aligned(pos, align); err != nil {
		return 0, xerrors.Errorf("table at %d, slot %d: %w", tablePos, slot, err)
	}
	return UOffsetT(pos), nil
}

// fieldOffset reads the vtable entry for slot, returning the field's
// voffset (0 when absent) and the table's declared inline size. Reads are
// re-checked so the primitive stays safe even on a position that did not
// come from a verified table.
func (v *Verifier) fieldOffset(tablePos UOffsetT, slot VOffsetT) (VOffsetT, uint64, error) {
	if err := v.inBounds(uint64(tablePos), SizeSOffsetT); err != nil {
		return 0, 0, xerrors.Errorf("table at %d: %w", tablePos, err)
	}
	vtable := int64(tablePos) - int64(GetSOffsetT(v.buf[tablePos:]))
	if vtable < 0 {
		return 0, 0, xerrors.Errorf("table at %d: vtable at %d: %w", tablePos, vtable, ErrOutOfBounds)
	}
	if err := v.inBounds(uint64(vtable), VtableMetadataFields*SizeVOffsetT); err != nil {
		return 0, 0, xerrors.Errorf("table at %d: vtable: %w", tablePos, err)
	}
	vsize := uint64(GetVOffsetT(v.buf[vtable:]))
	osize := uint64(GetVOffsetT(v.buf[uint64(vtable)+SizeVOffsetT:]))
	if uint64(slot)+SizeVOffsetT > vsize {
		return 0, osize, nil // short vtable: field absent
	}
	if err := v.inBounds(uint64(vtable)+uint64(slot), SizeVOffsetT); err != nil {
		return 0, 0, xerrors.Errorf("table at %d: vtable: %w", tablePos, err)
	}
	return GetVOffsetT(v.buf[uint64(vtable)+uint64(slot):]), osize, nil
}

// StringField verifies the string referenced by the uoffset at pos (a
// position previously returned by Field): length prefix, content bytes and
// the trailing NUL must all lie inside the buffer.
func (v *Verifier) StringField(pos UOffsetT) error {
	target, err := v.indirect(pos)
	if err != nil {
		return xerrors.Errorf("string at %d: %w", pos, err)
	}
	count := uint64(GetUOffsetT(v.buf[target:]))
	start := uint64(target) + SizeUOffsetT
	if err := v.inBounds(start, count+1); err != nil {
		return xerrors.Errorf("string at %d: %w", target, err)
	}
	if v.buf[start+count] != 0 {
		return xerrors.Errorf("string at %d: %w", target, ErrStringTermination)
	}
	return nil
}

// VectorField verifies the vector referenced by the uoffset at pos and
// returns the position of its first element along with the element count.
// elemSize and align describe one element; for vectors of offsets both are
// SizeUOffsetT, and each element must then be verified individually.
func (v *Verifier) VectorField(pos UOffsetT, elemSize, align int) (UOffsetT, int, error) {
	target, err := v.indirect(pos)
	if err != nil {
		return 0, 0, xerrors.Errorf("vector at %d: %w", pos, err)
	}
	count := uint64(GetUOffsetT(v.buf[target:]))
	start := uint64(target) + SizeUOffsetT
	if err := v.inBounds(start, count*uint64(elemSize)); err != nil {
		return 0, 0, xerrors.Errorf("vector at %d, %d elements: %w", target, count, err)
	}
	if err := v.aligned(start, align); err != nil {
		return 0, 0, xerrors.Errorf("vector at %d: %w", target, err)
	}
	return UOffsetT(start), int(count), nil
}

// TableField verifies the nested table referenced by the uoffset at pos,
// charging the depth and table budgets before descending.
func (v *Verifier) TableField(pos UOffsetT, verify TableVerifier) error {
	target, err := v.indirect(pos)
	if err != nil {
		return xerrors.Errorf("nested table at %d: %w", pos, err)
	}
	return v.table(uint64(target), verify)
}

// indirect resolves the uoffset stored at pos and checks that the target
// itself is readable and 4-byte aligned.
func (v *Verifier) indirect(pos UOffsetT) (UOffsetT, error) {
	if err := v.inBounds(uint64(pos), SizeUOffsetT); err != nil {
		return 0, err
	}
	if err := v.aligned(uint64(pos), SizeUOffsetT); err != nil {
		return 0, err
	}
	target := uint64(pos) + uint64(GetUOffsetT(v.buf[pos:]))
	if err := v.inBounds(target, SizeUOffsetT); err != nil {
		return 0, err
	}
	if err := v.aligned(target, SizeUOffsetT); err != nil {
		return 0, err
	}
	return UOffsetT(target), nil
}

func (v *Verifier) inBounds(pos, size uint64) error {
	if pos+size > uint64(len(v.buf)) {
		return xerrors.Errorf("range [%d, %d) in buffer of %d bytes: %w",
			pos, pos+size, len(v.buf), ErrOutOfBounds)
	}
	return nil
}

func (v *Verifier) aligned(pos uint64, align int) error {
	if align > 1 && pos%uint64(align) != 0 {
		return xerrors.Errorf("position %d, alignment %d: %w", pos, align, ErrMisaligned)
	}
	return nil
}
