package api

import "testing"

func TestRecordField(t *testing.T) {
	rec := Record{
		ID: "001xx000003DGXzAAO",
		Fields: map[string]string{
			FieldName:     "Acme",
			FieldIndustry: "Tech",
		},
	}

	if got := rec.Name(); got != "Acme" {
		t.Errorf("Name() = %q, want %q", got, "Acme")
	}
	if got := rec.Industry(); got != "Tech" {
		t.Errorf("Industry() = %q, want %q", got, "Tech")
	}
	if got := rec.Field("Missing"); got != "" {
		t.Errorf("Field(Missing) = %q, want empty", got)
	}

	var zero Record
	if got := zero.Name(); got != "" {
		t.Errorf("zero record Name() = %q, want empty", got)
	}
}

func TestParamsGet(t *testing.T) {
	p := Params{"id": "001xx000003DGXzAAO"}
	if got := p.Get("id"); got != "001xx000003DGXzAAO" {
		t.Errorf("Get(id) = %q", got)
	}

	var nilParams Params
	if got := nilParams.Get("id"); got != "" {
		t.Errorf("nil params Get() = %q, want empty", got)
	}
}
