package recommend

import (
	"reflect"
	"testing"
)

var messages = map[string]string{
	"registro":      "Iniciar el proceso de registro de sistemas de IA ante la autoridad competente",
	"transparencia": "Mejorar los mecanismos de transparencia y explicabilidad de los sistemas de IA",
}

func TestForSections(t *testing.T) {
	t.Run("all_above_threshold", func(t *testing.T) {
		got := ForSections(map[string]float64{"registro": 3.0, "transparencia": 4.5}, messages, DefaultThreshold)
		if len(got) != 0 {
			t.Fatalf("expected no recommendations, got %v", got)
		}
	})

	t.Run("one_below_threshold", func(t *testing.T) {
		got := ForSections(map[string]float64{"registro": 2.4, "transparencia": 4.0}, messages, DefaultThreshold)
		want := []string{messages["registro"]}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("section_without_message_skipped", func(t *testing.T) {
		got := ForSections(map[string]float64{"derechos": 1.0}, messages, DefaultThreshold)
		if len(got) != 0 {
			t.Fatalf("section without table entry must be skipped, got %v", got)
		}
	})

	t.Run("threshold_is_strict", func(t *testing.T) {
		got := ForSections(map[string]float64{"registro": 3.0}, messages, DefaultThreshold)
		if len(got) != 0 {
			t.Fatalf("exactly-threshold average must not recommend, got %v", got)
		}
	})

	t.Run("stable_order", func(t *testing.T) {
		averages := map[string]float64{"transparencia": 1.0, "registro": 1.0}
		want := []string{messages["registro"], messages["transparencia"]}
		for i := 0; i < 10; i++ {
			if got := ForSections(averages, messages, DefaultThreshold); !reflect.DeepEqual(got, want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		if got := ForSections(nil, messages, DefaultThreshold); len(got) != 0 {
			t.Fatalf("expected empty output, got %v", got)
		}
	})
}
