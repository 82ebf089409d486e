package model

import (
	"errors"
	"testing"
)

func TestNewPositionRange(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     int
		wantErr bool
	}{
		{name: "a8 corner", row: 0, col: 0},
		{name: "h1 corner", row: 7, col: 7},
		{name: "negative row", row: -1, col: 4, wantErr: true},
		{name: "negative col", row: 4, col: -1, wantErr: true},
		{name: "row too large", row: 8, col: 0, wantErr: true},
		{name: "col too large", row: 0, col: 8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := NewPosition(tt.row, tt.col)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("expected ErrOutOfRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pos.Row != tt.row || pos.Col != tt.col {
				t.Fatalf("got %+v, want (%d,%d)", pos, tt.row, tt.col)
			}
		})
	}
}

func TestPositionEquality(t *testing.T) {
	a, _ := NewPosition(3, 4)
	b, _ := NewPosition(3, 4)
	c, _ := NewPosition(4, 3)

	if a != b {
		t.Fatalf("equal positions compare unequal: %+v vs %+v", a, b)
	}
	if a == c {
		t.Fatalf("distinct positions compare equal: %+v vs %+v", a, c)
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	tests := []struct {
		square string
		row    int
		col    int
	}{
		{square: "a8", row: 0, col: 0},
		{square: "h1", row: 7, col: 7},
		{square: "e2", row: 6, col: 4},
		{square: "d8", row: 0, col: 3},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			pos, err := ParseSquare(tt.square)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if pos.Row != tt.row || pos.Col != tt.col {
				t.Fatalf("got %+v, want (%d,%d)", pos, tt.row, tt.col)
			}
			if got := pos.Notation(); got != tt.square {
				t.Fatalf("notation round trip: got %q, want %q", got, tt.square)
			}
		})
	}

	for _, bad := range []string{"", "e", "e9", "i1", "e22", "22"} {
		if _, err := ParseSquare(bad); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("ParseSquare(%q): expected ErrOutOfRange, got %v", bad, err)
		}
	}
}
