package symath

import (
	"fmt"
	"strings"
)

// TokenKind classifies a lexical token.
type TokenKind int

const (
	TokNumber TokenKind = iota
	TokIdent
	TokFunc // identifier immediately followed by '(', a function call name
	TokOp
	TokLParen
	TokRParen
)

// Token is one lexical atom. Text is the exact source characters, except for
// the '*' tokens inserted by the implicit-multiplication pass.
type Token struct {
	Kind TokenKind
	Text string
}

// LexError reports a character that matches no lexical class.
type LexError struct{ Char rune }

func (e *LexError) Error() string { return fmt.Sprintf("Unknown character: %c", e.Char) }

// Tokenize scans text into tokens left to right. Whitespace is skipped.
// After the raw scan a second pass inserts a '*' token between any pair of
// adjacent tokens where the left ends an operand (number, identifier,
// closing parenthesis) and the right begins one (identifier, function name,
// opening parenthesis), realizing implicit multiplication such as 2x or )(.
func Tokenize(text string) ([]Token, error) {
	var raw []Token
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			seenDot := false
			for i < len(text) && (isDigit(text[i]) || (text[i] == '.' && !seenDot)) {
				if text[i] == '.' {
					seenDot = true
				}
				i++
			}
			raw = append(raw, Token{TokNumber, text[start:i]})
		case isLetter(c):
			start := i
			i++
			for i < len(text) && (isLetter(text[i]) || isDigit(text[i])) {
				i++
			}
			kind := TokIdent
			if i < len(text) && text[i] == '(' {
				kind = TokFunc
			}
			raw = append(raw, Token{kind, text[start:i]})
		case strings.ContainsRune("+-*/^", rune(c)):
			raw = append(raw, Token{TokOp, string(c)})
			i++
		case c == '(':
			raw = append(raw, Token{TokLParen, "("})
			i++
		case c == ')':
			raw = append(raw, Token{TokRParen, ")"})
			i++
		default:
			return nil, &LexError{Char: rune(c)}
		}
	}

	out := make([]Token, 0, len(raw))
	for j, t := range raw {
		if j > 0 && endsOperand(raw[j-1]) && beginsOperand(t) {
			out = append(out, Token{TokOp, "*"})
		}
		out = append(out, t)
	}
	return out, nil
}

func endsOperand(t Token) bool {
	return t.Kind == TokNumber || t.Kind == TokIdent || t.Kind == TokRParen
}

func beginsOperand(t Token) bool {
	return t.Kind == TokIdent || t.Kind == TokFunc || t.Kind == TokLParen
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
