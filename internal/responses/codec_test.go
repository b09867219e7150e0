package responses

import (
	"net/url"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	original := Answers{
		Scores:           map[string]int{"q1": 3, "q2": 5},
		OrganizationType: "sector_privado_medianas",
	}

	decoded, err := ParseQueryString(original.Encode())
	if err != nil {
		t.Fatalf("ParseQueryString error: %v", err)
	}
	if !reflect.DeepEqual(decoded.Scores, original.Scores) {
		t.Fatalf("scores %v, want %v", decoded.Scores, original.Scores)
	}
	if decoded.OrganizationType != original.OrganizationType {
		t.Fatalf("organization type %q, want %q", decoded.OrganizationType, original.OrganizationType)
	}
}

func TestParseQuery(t *testing.T) {
	t.Run("non_numeric_excluded", func(t *testing.T) {
		ans := ParseQuery(url.Values{
			"contexto_1":       {"4"},
			"contexto_2":       {"cuatro"},
			"liderazgo_1":      {""},
			"organizationType": {"sector_publico_central"},
		})
		if len(ans.Scores) != 1 || ans.Scores["contexto_1"] != 4 {
			t.Fatalf("unexpected scores %v", ans.Scores)
		}
		if ans.OrganizationType != "sector_publico_central" {
			t.Fatalf("unexpected organization type %q", ans.OrganizationType)
		}
	})

	t.Run("reserved_param_not_a_score", func(t *testing.T) {
		ans := ParseQuery(url.Values{OrganizationTypeParam: {"3"}})
		if len(ans.Scores) != 0 {
			t.Fatalf("reserved parameter leaked into scores: %v", ans.Scores)
		}
		if ans.OrganizationType != "3" {
			t.Fatalf("organization type %q", ans.OrganizationType)
		}
	})

	t.Run("repeated_param_keeps_last", func(t *testing.T) {
		ans := ParseQuery(url.Values{"q1": {"2", "5"}})
		if ans.Scores["q1"] != 5 {
			t.Fatalf("expected last value 5, got %d", ans.Scores["q1"])
		}
	})

	t.Run("unknown_names_survive_decoding", func(t *testing.T) {
		// The codec keeps them; the section join drops them from aggregates.
		ans := ParseQuery(url.Values{"pregunta_futura": {"5"}})
		if ans.Scores["pregunta_futura"] != 5 {
			t.Fatalf("unexpected scores %v", ans.Scores)
		}
	})

	t.Run("empty_query", func(t *testing.T) {
		ans := ParseQuery(url.Values{})
		if len(ans.Scores) != 0 || ans.OrganizationType != "" {
			t.Fatalf("unexpected answers %+v", ans)
		}
	})

	t.Run("malformed_raw_query", func(t *testing.T) {
		if _, err := ParseQueryString("a=%zz"); err == nil {
			t.Fatal("expected error for malformed percent escape")
		}
	})
}
