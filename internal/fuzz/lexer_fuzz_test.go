package fuzztests

import (
	"testing"

	"github.com/heshpdx/cppcheck/internal/diag"
	"github.com/heshpdx/cppcheck/internal/dialect"
	"github.com/heshpdx/cppcheck/internal/lexer"
	"github.com/heshpdx/cppcheck/internal/source"
	"github.com/heshpdx/cppcheck/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.cpp", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		list := lexer.Tokenize(file, dialect.Default(), bag)
		if list == nil {
			t.Fatal("nil list from lexer")
		}
		if err := testkit.CheckStreamInvariants(list); err != nil {
			t.Fatalf("stream invariants after lexing: %v", err)
		}
	})
}

func FuzzCreateLinks(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.cpp", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		list := lexer.Tokenize(file, dialect.Default(), bag)
		list.CreateLinks(bag)
		if err := testkit.CheckStreamInvariants(list); err != nil {
			t.Fatalf("stream invariants after linking: %v", err)
		}
	})
}
