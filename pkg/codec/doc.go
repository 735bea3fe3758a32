// Package codec reads the primitive field encodings of the stats dump format.
//
// Reader is a forward-only big-endian cursor over an in-memory dump. Besides
// fixed-width integers it understands the format's composite fields:
//
//	PaddedByte      [value(1)][pad(3)]
//	OnOff           [garbage(4)]["ON\0\0" | "OFF\0"]
//	PrefixedString  [unused(3)][len(1)][text(len)][pad to 4]
//	ShortString     [garbage(4)][text(3)][pad(1)]
//	FileTime        [garbage(4)][low(4)][high(4)]
//
// Text is decoded from Windows-1252. Every read fails with
// ErrUnexpectedEndOfData when the buffer runs out.
package codec
