// Package parser builds forms from the token stream.
//
// The grammar is three productions:
//
//	form := word | list
//	list := '[' form* ']'
//	word := word-char+
//
// Brackets are self-delimiting; whitespace never reaches the parser.
package parser

import (
	"fmt"
	"io"

	"github.com/zoren/go-wuns/internal/form"
	"github.com/zoren/go-wuns/internal/lexer"
)

// Error is a fatal parse error with the byte offset it occurred at.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at byte %d: %s", e.Offset, e.Message)
}

// Parser consumes tokens from a Lexer and produces forms.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
	err error
}

// New creates a Parser over l and primes the first token.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{lex: l}
	p.next()
	return p
}

func (p *Parser) next() {
	if p.err != nil {
		return
	}
	p.tok, p.err = p.lex.Next()
}

// Next parses and returns the next top-level form. It returns io.EOF when
// the input is exhausted; any other error is fatal.
func (p *Parser) Next() (form.Form, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.tok.Type == lexer.EOF {
		return nil, io.EOF
	}
	return p.parseForm()
}

// ParseProgram parses all remaining top-level forms in order.
func (p *Parser) ParseProgram() ([]form.Form, error) {
	var forms []form.Form
	for {
		f, err := p.Next()
		if err == io.EOF {
			return forms, nil
		}
		if err != nil {
			return forms, err
		}
		forms = append(forms, f)
	}
}

func (p *Parser) parseForm() (form.Form, error) {
	if p.err != nil {
		return nil, p.err
	}
	switch p.tok.Type {
	case lexer.WORD:
		w := form.Word(p.tok.Literal)
		// A lex failure in the prefetched token belongs to the NEXT
		// form; this one is complete. Next() surfaces p.err then.
		p.next()
		return w, nil
	case lexer.LBRACKET:
		return p.parseList()
	case lexer.RBRACKET:
		return nil, &Error{Offset: p.tok.Offset, Message: "unexpected ']'"}
	case lexer.EOF:
		return nil, &Error{Offset: p.tok.Offset, Message: "unexpected end of input"}
	default:
		return nil, p.err
	}
}

func (p *Parser) parseList() (form.Form, error) {
	open := p.tok.Offset
	p.next()
	elems := form.List{}
	for {
		if p.err != nil {
			return nil, p.err
		}
		switch p.tok.Type {
		case lexer.RBRACKET:
			p.next()
			return elems, nil
		case lexer.EOF:
			return nil, &Error{Offset: open, Message: "unexpected end of input inside list"}
		default:
			el, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
	}
}
