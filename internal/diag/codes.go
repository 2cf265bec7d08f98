package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexUnterminatedChar    Code = 1004

	// I/O
	IOLoadFileError Code = 1500

	// Token stream / link structure
	StreamInfo              Code = 2000
	StreamUnmatchedOpen     Code = 2001
	StreamUnmatchedClose    Code = 2002
	StreamMismatchedBracket Code = 2003

	// Internal (usage errors in calling passes)
	InternalInfo            Code = 9000
	InternalVarIDZero       Code = 9001
	InternalBadPatternCmd   Code = 9002
	InternalAstCycle        Code = 9003
	InternalExprBoundary    Code = 9004
	InternalSelfLink        Code = 9005
	InternalBoolLiteralVar  Code = 9006
	InternalVarIDNonVar     Code = 9007
)

func (c Code) String() string {
	return fmt.Sprintf("CHK%04d", uint16(c))
}
