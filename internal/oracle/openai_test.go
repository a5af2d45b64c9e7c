package oracle

import "testing"

func TestParse_PlainJSON(t *testing.T) {
	in := Parse(`{"title":"Dentista","date":"2025-06-02","hour":14,"minute":30,"isValid":true}`)
	if !in.IsValid {
		t.Fatalf("invalid: %+v", in)
	}
	if in.Title != "Dentista" || in.Date != "2025-06-02" || in.Hour != 14 || in.Minute != 30 {
		t.Fatalf("fields: %+v", in)
	}
}

func TestParse_FencedJSON(t *testing.T) {
	in := Parse("```json\n{\"title\":\"Call\",\"date\":\"2025-06-02\",\"hour\":9,\"minute\":0,\"isValid\":true}\n```")
	if !in.IsValid || in.Title != "Call" {
		t.Fatalf("fenced: %+v", in)
	}
}

func TestParse_ProseAroundJSON(t *testing.T) {
	in := Parse(`Claro! Aqui está: {"title":"X","date":"2025-06-02","hour":9,"minute":0,"isValid":true} Espero ter ajudado.`)
	if !in.IsValid {
		t.Fatalf("prose-wrapped: %+v", in)
	}
}

func TestParse_MalformedNeverValid(t *testing.T) {
	cases := []string{
		"",
		"não entendi",
		"{broken json",
		`{"isValid": "yes"}`, // wrong type
	}
	for _, c := range cases {
		if in := Parse(c); in.IsValid {
			t.Errorf("%q: parsed as valid", c)
		}
	}
}

func TestParse_CouldNotInterpret(t *testing.T) {
	in := Parse(`{"title":"","date":"","hour":0,"minute":0,"isValid":false,"error":"sem data"}`)
	if in.IsValid {
		t.Fatal("explicit failure parsed as valid")
	}
	if in.Error != "sem data" {
		t.Fatalf("error field: %+v", in)
	}
}

func TestParse_OutOfRangeRejected(t *testing.T) {
	if in := Parse(`{"date":"2025-06-02","hour":25,"minute":0,"isValid":true}`); in.IsValid {
		t.Fatal("hour 25 accepted")
	}
	if in := Parse(`{"date":"2025-06-02","hour":9,"minute":60,"isValid":true}`); in.IsValid {
		t.Fatal("minute 60 accepted")
	}
	if in := Parse(`{"date":"02/06/2025","hour":9,"minute":0,"isValid":true}`); in.IsValid {
		t.Fatal("non-ISO date accepted")
	}
}
