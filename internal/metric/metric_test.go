package metric

import "testing"

func TestCompile_Default(t *testing.T) {
	m, err := Compile(Default)
	if err != nil {
		t.Fatalf("Compile(%q) returned error: %v", Default, err)
	}
	tests := []struct {
		c, l, want int
	}{
		{1, 1, -2},
		{3, 10, 16},
		{2, 5, 2},
	}
	for _, tt := range tests {
		if got := m(tt.c, tt.l); got != tt.want {
			t.Errorf("(%d-1)*(%d-1)-2 = %d, want %d", tt.c, tt.l, got, tt.want)
		}
	}
}

func TestCompile_Variants(t *testing.T) {
	tests := []struct {
		expr       string
		c, l, want int
	}{
		{"c*l", 3, 4, 12},
		{"c+l", 3, 4, 7},
		{"c-l", 3, 4, -1},
		{"c/l", 10, 3, 3},
		{"c%l", 10, 3, 1},
		{"c^2", 3, 0, 9},
		{"-c", 3, 0, -3},
		{"(c+1)*(l+1)", 2, 3, 12},
		{"2^3^2", 0, 0, 512},
	}
	for _, tt := range tests {
		m, err := Compile(tt.expr)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", tt.expr, err)
		}
		if got := m(tt.c, tt.l); got != tt.want {
			t.Errorf("Compile(%q)(%d,%d) = %d, want %d", tt.expr, tt.c, tt.l, got, tt.want)
		}
	}
}

func TestCompile_RejectsDisallowedCharacters(t *testing.T) {
	if _, err := Compile("c * l; rm -rf"); err == nil {
		t.Fatalf("expected error for expression with disallowed characters")
	}
}

func TestCompile_RejectsMalformedExpression(t *testing.T) {
	tests := []string{
		"(c+1",
		"c+",
		"()",
		"c l",
	}
	for _, expr := range tests {
		if _, err := Compile(expr); err == nil {
			t.Errorf("Compile(%q): expected error, got none", expr)
		}
	}
}

func TestMustCompile_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustCompile to panic on invalid expression")
		}
	}()
	MustCompile("c +")
}
