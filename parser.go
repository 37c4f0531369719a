package main

// parseTokens consumes a bracket-valid token sequence and builds the
// optimized expression tree. Adjacent same-command units collapse into
// counted runs, opposed move/value units cancel algebraically, and a
// loop whose body reduces to a single unit decrement rewrites to a
// direct zero assignment. The only parse-time failure is decrementing a
// folded constant that is already zero.
func parseTokens(toks []token) ([]expr, error) {
	cur := tokenCursor{toks: toks}
	var b exprBuilder
	if err := b.parse(&cur); err != nil {
		return nil, err
	}
	return b.exprs, nil
}

// A tokenCursor steps through the token sequence; loop bodies recurse
// sharing the same cursor, so consuming a body advances the caller too.
type tokenCursor struct {
	toks []token
	pos  int
}

func (cur *tokenCursor) next() (token, bool) {
	if cur.pos >= len(cur.toks) {
		return token{}, false
	}
	tok := cur.toks[cur.pos]
	cur.pos++
	return tok, true
}

// An exprBuilder accumulates the expression sequence under
// construction, rewriting its tail to merge and cancel runs. Each loop
// body gets its own builder.
type exprBuilder struct {
	exprs []expr
}

// parse dispatches tokens until the sequence ends or this builder's
// enclosing loop closes. The lexer has already matched every bracket,
// so a loop body cannot run out of input before its close.
func (b *exprBuilder) parse(cur *tokenCursor) error {
	for {
		tok, ok := cur.next()
		if !ok || tok.kind == tokenLoopEnd {
			return nil
		}
		var err error
		switch tok.kind {
		case tokenMoveRight:
			b.moveRight(tok)
		case tokenMoveLeft:
			b.moveLeft(tok)
		case tokenAdd:
			b.add(tok)
		case tokenSub:
			err = b.sub(tok)
		case tokenOutput:
			b.output(tok)
		case tokenInput:
			b.input(tok)
		case tokenLoopStart:
			err = b.loop(cur)
		}
		if err != nil {
			return err
		}
	}
}

// loop parses a loop body with a fresh builder. A body that optimized
// down to exactly one unit decrement is the cell-zeroing idiom [-]:
// decrement-until-zero is a plain zero assignment, so the whole loop
// folds to Set(0) carrying that decrement's token.
func (b *exprBuilder) loop(cur *tokenCursor) error {
	var body exprBuilder
	if err := body.parse(cur); err != nil {
		return err
	}
	if len(body.exprs) == 1 {
		if e := body.exprs[0]; e.kind == exprSub && e.n == 1 {
			b.push(expr{kind: exprSet, n: 0, toks: []token{e.toks[0]}})
			return nil
		}
	}
	b.push(expr{kind: exprLoop, body: body.exprs})
	return nil
}

func (b *exprBuilder) moveRight(tok token) {
	switch prev := b.last(); {
	case prev != nil && prev.kind == exprMoveRight:
		prev.extend(tok)
	case prev != nil && prev.kind == exprMoveLeft:
		b.cancel(prev)
	default:
		b.push(newRun(exprMoveRight, tok))
	}
}

func (b *exprBuilder) moveLeft(tok token) {
	switch prev := b.last(); {
	case prev != nil && prev.kind == exprMoveLeft:
		prev.extend(tok)
	case prev != nil && prev.kind == exprMoveRight:
		b.cancel(prev)
	default:
		b.push(newRun(exprMoveLeft, tok))
	}
}

func (b *exprBuilder) add(tok token) {
	switch prev := b.last(); {
	case prev != nil && prev.kind == exprAdd:
		prev.extend(tok)
	case prev != nil && prev.kind == exprSub:
		b.cancel(prev)
	case prev != nil && prev.kind == exprSet:
		prev.extend(tok)
	default:
		b.push(newRun(exprAdd, tok))
	}
}

func (b *exprBuilder) sub(tok token) error {
	switch prev := b.last(); {
	case prev != nil && prev.kind == exprSub:
		prev.extend(tok)
	case prev != nil && prev.kind == exprAdd:
		b.cancel(prev)
	case prev != nil && prev.kind == exprSet:
		// a Set's constant cannot go below zero; this decrement would
		// fail on every run, so it is a parse error
		if prev.n == 0 {
			return valueUnderflowError(tok)
		}
		prev.n--
		prev.toks = prev.toks[:len(prev.toks)-1]
	default:
		b.push(newRun(exprSub, tok))
	}
	return nil
}

func (b *exprBuilder) output(tok token) {
	if prev := b.last(); prev != nil && prev.kind == exprOutput {
		prev.extend(tok)
		return
	}
	b.push(newRun(exprOutput, tok))
}

func (b *exprBuilder) input(tok token) {
	if prev := b.last(); prev != nil && prev.kind == exprInput {
		prev.extend(tok)
		return
	}
	b.push(newRun(exprInput, tok))
}

func (b *exprBuilder) push(e expr) {
	b.exprs = append(b.exprs, e)
}

// last peeks at the expression under rewrite, or nil when the sequence
// (or loop body) is still empty.
func (b *exprBuilder) last() *expr {
	if i := len(b.exprs) - 1; i >= 0 {
		return &b.exprs[i]
	}
	return nil
}

// cancel nets one unit off an opposed trailing run, dropping its most
// recently appended token; a run of one unit disappears entirely, since
// a net-zero effect is not represented.
func (b *exprBuilder) cancel(prev *expr) {
	if prev.n == 1 {
		b.exprs = b.exprs[:len(b.exprs)-1]
		return
	}
	prev.n--
	prev.toks = prev.toks[:len(prev.toks)-1]
}

func newRun(kind exprKind, tok token) expr {
	return expr{kind: kind, n: 1, toks: []token{tok}}
}

func (e *expr) extend(tok token) {
	e.n++
	e.toks = append(e.toks, tok)
}
