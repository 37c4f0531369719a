package main

// lexString scans source text into tokens, validating bracket nesting
// inline. Runes that are not one of the eight command characters are
// ignored for tokenization, but still advance column tracking; newlines
// and carriage returns advance the line and reset the column.
func lexString(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1
	depth := 0
	for _, r := range src {
		if kind := lexRune(r); kind != tokenInvalid {
			tok := token{kind, line, col}
			switch kind {
			case tokenLoopStart:
				depth++
			case tokenLoopEnd:
				if depth == 0 {
					return nil, unmatchedCloseError(tok)
				}
				depth--
			}
			toks = append(toks, tok)
			col++
		} else if r == '\n' || r == '\r' {
			line++
			col = 1
		} else {
			col++
		}
	}
	if depth != 0 {
		return nil, errUnmatchedOpen
	}
	return toks, nil
}

// lexRune maps a command character to its token kind, or tokenInvalid
// for anything else.
func lexRune(r rune) tokenKind {
	switch r {
	case '>':
		return tokenMoveRight
	case '<':
		return tokenMoveLeft
	case '+':
		return tokenAdd
	case '-':
		return tokenSub
	case '.':
		return tokenOutput
	case ',':
		return tokenInput
	case '[':
		return tokenLoopStart
	case ']':
		return tokenLoopEnd
	}
	return tokenInvalid
}
