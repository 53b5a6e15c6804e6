package lzss

// Wire format constants for the 3DO-compatible LZSS codec. These values
// define the bit layout on the wire and must not change.
const (
	// IndexBits is the width of a window-offset field in a back-reference.
	IndexBits = 12
	// LengthBits is the width of a match-length field in a back-reference.
	LengthBits = 4
	// WindowSize is the sliding window length in bytes (1 << IndexBits).
	WindowSize = 1 << IndexBits
	// BreakEven is the minimum useful match length minus one.
	BreakEven = 2
	// LookAheadSize is the width of the look-ahead buffer: (1<<LengthBits)+BreakEven.
	LookAheadSize = (1 << LengthBits) + BreakEven
	// TreeRoot is the sentinel tree index holding the dummy root.
	TreeRoot = WindowSize
	// Unused marks "no such child/parent" in the match tree, and doubles as
	// the encoded end-of-stream index. Position 0 is never a live window
	// position, so the two meanings never collide.
	Unused = 0
	// EndOfStream is the index value written by the encoder's terminator
	// token. It is numerically identical to Unused.
	EndOfStream = 0
)

// modWindow wraps an index into the sliding window: addr & (WindowSize-1).
func modWindow(addr uint32) uint32 {
	return addr & (WindowSize - 1)
}
