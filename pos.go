package csslexer

// Pos is a byte offset into the source text being scanned. It is always
// 0-based and always counts raw bytes, never code points, so that it can be
// used directly to slice the original source string.
type Pos int32

// Range is a half-open byte range [Start, End) into the source text that
// produced it. Ranges compare and hash like any other Go struct, so they
// can be used as map keys without extra work.
type Range struct {
	Start Pos
	End   Pos
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int32 {
	return int32(r.End - r.Start)
}

// Slice returns the bytes of source covered by r, or false if r falls
// outside the bounds of source.
func (r Range) Slice(source string) (string, bool) {
	if r.Start < 0 || r.End < r.Start || int(r.End) > len(source) {
		return "", false
	}
	return source[r.Start:r.End], true
}
