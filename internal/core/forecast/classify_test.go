package forecast

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		probability int
		want        string
	}{
		{"lowest probability is remote", 1, DescriptorRemote},
		{"just below unlikely boundary", 9, DescriptorRemote},
		{"unlikely boundary is inclusive", 10, DescriptorUnlikely},
		{"middle of unlikely band", 20, DescriptorUnlikely},
		{"even chance boundary", 30, DescriptorEvenChance},
		{"middle of even chance band", 50, DescriptorEvenChance},
		{"likely boundary", 70, DescriptorLikely},
		{"just below almost certain", 89, DescriptorLikely},
		{"almost certain boundary", 90, DescriptorAlmost},
		{"just below certain", 98, DescriptorAlmost},
		{"certain boundary", 99, DescriptorCertain},
		{"exactly 100 is certain", 100, DescriptorCertain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.probability); got != tt.want {
				t.Errorf("Classify(%d) = %q, want %q", tt.probability, got, tt.want)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	// Every valid probability lands in exactly one bucket.
	for p := 1; p <= 100; p++ {
		descriptor := Classify(p)
		if descriptor == "" {
			t.Fatalf("Classify(%d) returned empty descriptor", p)
		}

		matches := 0
		for _, b := range Bands() {
			if p >= b.Low && p < b.High {
				matches++
			}
		}
		if p == 100 {
			if matches != 0 {
				t.Errorf("probability 100 matched %d bands, want fallthrough to Certain", matches)
			}
			continue
		}
		if matches != 1 {
			t.Errorf("probability %d matched %d bands, want exactly 1", p, matches)
		}
	}
}
