package resolver

import "testing"

func TestTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"reunião amanhã às 15h", "reunião"},
		{"dentista sexta às 14h", "dentista"},
		{"call quinta", "call"},
		{"jantar com a Ana sexta às sete da noite", "jantar com a Ana"},
		{"sexta às sete da noite", "Compromisso"},
		{"hoje às 9", "Compromisso"},
		{"médico segunda-feira que vem 10h30", "médico"},
	}
	for _, c := range cases {
		if got := Title(c.in); got != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}
