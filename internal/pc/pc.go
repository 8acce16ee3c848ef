// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pc provides backtracking parser combinators over a character stream.
//
// A Parser is a plain function value: it holds no mutable state and can be
// reused or shared between goroutines. A failed parse always returns the input
// it was given as the remainder so that callers can try alternatives.
package pc

import (
	"math"
)

// Unbounded can be used as the max argument of Rep.
const Unbounded = math.MaxInt

// Input is an immutable position in a source text.
type Input struct {
	src []rune
	off int
}

// NewInput returns an Input positioned at the start of s.
func NewInput(s string) Input {
	return Input{src: []rune(s)}
}

// Len returns the number of unconsumed characters.
func (in Input) Len() int { return len(in.src) - in.off }

// Offset returns the number of characters consumed so far.
func (in Input) Offset() int { return in.off }

// String returns the unconsumed text.
func (in Input) String() string { return string(in.src[in.off:]) }

func (in Input) next() (rune, Input, bool) {
	if in.off >= len(in.src) {
		return 0, in, false
	}
	return in.src[in.off], Input{in.src, in.off + 1}, true
}

// Result is the outcome of a parse. If OK is false, Value is the zero value
// and Rest is the input given to the parser.
type Result[T any] struct {
	OK    bool
	Value T
	Rest  Input
}

// A Parser parses a prefix of its input.
type Parser[T any] func(in Input) Result[T]

// Parse runs p over s.
func (p Parser[T]) Parse(s string) Result[T] {
	return p(NewInput(s))
}

func success[T any](v T, rest Input) Result[T] {
	return Result[T]{OK: true, Value: v, Rest: rest}
}

func fail[T any](in Input) Result[T] {
	return Result[T]{Rest: in}
}

// Predefined parsers.
var (
	// AnyChar matches any single character.
	AnyChar Parser[rune] = anyChar
	// EOF matches the end of input.
	EOF Parser[struct{}] = eof
	// Offset matches the empty string and returns the current offset.
	Offset Parser[int] = offset
)

func anyChar(in Input) Result[rune] {
	r, rest, ok := in.next()
	if !ok {
		return fail[rune](in)
	}
	return success(r, rest)
}

func eof(in Input) Result[struct{}] {
	if in.Len() != 0 {
		return fail[struct{}](in)
	}
	return success(struct{}{}, in)
}

func offset(in Input) Result[int] {
	return success(in.off, in)
}

// Char matches the character c.
func Char(c rune) Parser[rune] {
	return func(in Input) Result[rune] {
		r, rest, ok := in.next()
		if !ok || r != c {
			return fail[rune](in)
		}
		return success(r, rest)
	}
}

// OneOf matches any character in set.
func OneOf(set string) Parser[rune] {
	ps := make([]Parser[rune], 0, len(set))
	for _, c := range set {
		ps = append(ps, Char(c))
	}
	return Or(ps...)
}

// Str matches the literal string s.
func Str(s string) Parser[string] {
	cs := make([]Parser[rune], 0, len(s))
	for _, c := range s {
		cs = append(cs, Char(c))
	}
	return Map(Seq(cs...), func(rs []rune) string { return string(rs) })
}

// Or returns the result of the first parser in ps that succeeds.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) Result[T] {
		for _, p := range ps {
			if r := p(in); r.OK {
				return r
			}
		}
		return fail[T](in)
	}
}

// Not succeeds without consuming any input if p fails.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(in Input) Result[struct{}] {
		if p(in).OK {
			return fail[struct{}](in)
		}
		return success(struct{}{}, in)
	}
}

// Seq applies all parsers in sequence and collects their values.
func Seq[T any](ps ...Parser[T]) Parser[[]T] {
	return func(in Input) Result[[]T] {
		vs := make([]T, 0, len(ps))
		rest := in
		for _, p := range ps {
			r := p(rest)
			if !r.OK {
				return fail[[]T](in)
			}
			vs = append(vs, r.Value)
			rest = r.Rest
		}
		return success(vs, rest)
	}
}

// Rep greedily applies p at most max times and fails if it matched fewer than
// min times. Once min matches are collected, repetition stops at the first
// match that consumes nothing.
//
// Rep panics if min < 0 or max < min.
func Rep[T any](p Parser[T], min, max int) Parser[[]T] {
	if min < 0 {
		panic("pc: Rep: negative min")
	}
	if max < min {
		panic("pc: Rep: max < min")
	}
	return func(in Input) Result[[]T] {
		var vs []T
		rest := in
		for len(vs) < max {
			r := p(rest)
			if !r.OK {
				break
			}
			vs = append(vs, r.Value)
			if r.Rest.off == rest.off && len(vs) >= min {
				break
			}
			rest = r.Rest
		}
		if len(vs) < min {
			return fail[[]T](in)
		}
		return success(vs, rest)
	}
}

// Sub matches a, but only if b does not match at the same position.
func Sub[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	nb := Not(b)
	return func(in Input) Result[T] {
		if !nb(in).OK {
			return fail[T](in)
		}
		return a(in)
	}
}

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Input) Result[U] {
		r := p(in)
		if !r.OK {
			return fail[U](in)
		}
		return success(f(r.Value), r.Rest)
	}
}

// Any erases the value type of p so that it can be sequenced with parsers of
// other types.
func Any[T any](p Parser[T]) Parser[any] {
	return Map(p, func(v T) any { return v })
}

// Ref is a late-bound parser. It allows building recursive grammars where a
// rule must be referenced before it can be constructed.
type Ref[T any] struct {
	p Parser[T]
}

// Init sets the parser r refers to. It panics if called more than once.
func (r *Ref[T]) Init(p Parser[T]) {
	if r.p != nil {
		panic("pc: Ref already initialized")
	}
	r.p = p
}

// Parser returns a parser that forwards to the parser set by Init.
func (r *Ref[T]) Parser() Parser[T] {
	return func(in Input) Result[T] {
		if r.p == nil {
			panic("pc: parse through uninitialized Ref")
		}
		return r.p(in)
	}
}
