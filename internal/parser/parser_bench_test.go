package parser

import (
	"strings"
	"testing"

	"github.com/zoren/go-wuns/internal/lexer"
)

func BenchmarkParseProgram(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("[func rev [l] [loop [i [sub [size l] 1] out []] [if [ge i 0] [cont [sub i 1] [concat out [slice l i [add i 1]]]] out]]]\n")
	}
	input := sb.String()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New(lexer.New(strings.NewReader(input)))
		if _, err := p.ParseProgram(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDeepNesting(b *testing.B) {
	depth := 200
	input := strings.Repeat("[a ", depth) + strings.Repeat("]", depth)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New(lexer.New(strings.NewReader(input)))
		if _, err := p.ParseProgram(); err != nil {
			b.Fatal(err)
		}
	}
}
