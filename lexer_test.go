package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexString(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		want    []token
		wantErr error
	}{
		{
			name: "single command",
			in:   "+",
			want: []token{{tokenAdd, 1, 1}},
		},
		{
			name: "leading whitespace counts columns",
			in:   "  >\n ",
			want: []token{{tokenMoveRight, 1, 3}},
		},
		{
			name: "mixed whitespace",
			in:   "> ++ <\n-  ",
			want: []token{
				{tokenMoveRight, 1, 1},
				{tokenAdd, 1, 3},
				{tokenAdd, 1, 4},
				{tokenMoveLeft, 1, 6},
				{tokenSub, 2, 1},
			},
		},
		{
			name: "comment words advance columns",
			in:   "Observe the following:\n ,+++.",
			want: []token{
				{tokenInput, 2, 2},
				{tokenAdd, 2, 3},
				{tokenAdd, 2, 4},
				{tokenAdd, 2, 5},
				{tokenOutput, 2, 6},
			},
		},
		{
			name: "carriage return advances line too",
			in:   "+\r\n+",
			want: []token{
				{tokenAdd, 1, 1},
				{tokenAdd, 3, 1},
			},
		},
		{
			name: "balanced loop",
			in:   "[]",
			want: []token{
				{tokenLoopStart, 1, 1},
				{tokenLoopEnd, 1, 2},
			},
		},
		{
			name: "nested loops",
			in:   "[[][]]",
			want: []token{
				{tokenLoopStart, 1, 1},
				{tokenLoopStart, 1, 2},
				{tokenLoopEnd, 1, 3},
				{tokenLoopStart, 1, 4},
				{tokenLoopEnd, 1, 5},
				{tokenLoopEnd, 1, 6},
			},
		},
		{
			name:    "unmatched open",
			in:      "[",
			wantErr: errUnmatchedOpen,
		},
		{
			name:    "unmatched open deep",
			in:      "[[]",
			wantErr: errUnmatchedOpen,
		},
		{
			name:    "unmatched close",
			in:      "]",
			wantErr: unmatchedCloseError(token{tokenLoopEnd, 1, 1}),
		},
		{
			name:    "close after balance",
			in:      "[]]",
			wantErr: unmatchedCloseError(token{tokenLoopEnd, 1, 3}),
		},
		{
			name: "empty source",
			in:   "",
			want: nil,
		},
		{
			name: "comments only",
			in:   "nothing to see here\n",
			want: nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := lexString(tc.in)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err, "expected lex error")
				assert.Nil(t, toks, "expected no tokens")
				return
			}
			require.NoError(t, err, "unexpected lex error")
			assert.Equal(t, tc.want, toks, "expected tokens")
		})
	}
}

func TestLexRune(t *testing.T) {
	assert.Equal(t, tokenMoveRight, lexRune('>'))
	assert.Equal(t, tokenMoveLeft, lexRune('<'))
	assert.Equal(t, tokenAdd, lexRune('+'))
	assert.Equal(t, tokenSub, lexRune('-'))
	assert.Equal(t, tokenOutput, lexRune('.'))
	assert.Equal(t, tokenInput, lexRune(','))
	assert.Equal(t, tokenLoopStart, lexRune('['))
	assert.Equal(t, tokenLoopEnd, lexRune(']'))
	assert.Equal(t, tokenInvalid, lexRune('a'))
	assert.Equal(t, tokenInvalid, lexRune(' '))
	assert.Equal(t, tokenInvalid, lexRune('\n'))
}
