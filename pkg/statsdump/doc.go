// Package statsdump decodes the end-of-match statistics dump written by the
// Red Alert 3.03p multiplayer engine (stats.dmp).
//
// # Dump Format
//
// A dump is a short header followed by tagged fields packed back to back:
//
//	[ReportedSize(2)][Reserved(2)][Tag(4)][Payload]...[Tag(4)][Payload]
//
// All integers are big-endian. The reported size is informational; the decoder
// consumes fields until the end of the buffer. There is no terminating tag and
// no per-field length: the tag alone determines how the payload is read.
//
// Tags come in two shapes:
//   - Match-wide tags such as IDNO (game number) or SCEN (map name)
//   - Per-player tags whose fourth character is the player number 1-8, such as
//     CRD3 (credits of player 3) or UNB5 (vehicles bought by player 5)
//
// QUIT carries no player number. It applies to the player of the most recent
// SID (side) tag.
//
// # Payloads
//
// Most numeric payloads are preceded by a word the decoder discards. Strings
// carry their length in the last byte of a leading word and are padded to a
// word boundary. ON/OFF toggles, three-letter codes and FILETIME timestamps
// each have a dedicated reader in package codec. Unit and structure tallies are
// fixed runs of 32-bit counters whose order is given by the Counter slices in
// this package.
//
// # Dispatch
//
// The Table maps tags to Handlers. Exact tags win over patterns; patterns are
// substrings tried in table order, so CRAT (crates enabled) is never taken for
// a CRA (crates collected) tag. Unknown tags are skipped without consuming a
// payload and reported in Record.UnknownTags, or rejected in strict mode.
//
// # Usage
//
//	dec := statsdump.NewDecoder(statsdump.Options{Logger: logger})
//	rec, err := dec.DecodeFile("stats.dmp")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rec.GameNumber, rec.PlayerCredits[2])
//
// # Error Handling
//
// Decode returns a *DecodeError whose Kind is ErrTruncatedDump,
// ErrUnexpectedEndOfData, ErrPlayerIndexOutOfRange or ErrUnknownTag. A failed
// decode never returns a partial record.
package statsdump
