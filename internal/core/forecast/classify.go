// Package forecast contains the pure assessment engine: probability
// classification, review scheduling, and update planning. Functions here have
// no side effects; persistence is the caller's concern.
package forecast

// Probability descriptors, from remote to certain.
const (
	DescriptorRemote     = "Remote/Highly Unlikely"
	DescriptorUnlikely   = "Unlikely"
	DescriptorEvenChance = "Roughly Even Chance"
	DescriptorLikely     = "Likely/Probable"
	DescriptorAlmost     = "Highly Likely/Almost Certain"
	DescriptorCertain    = "Certain"
)

// Band is one half-open probability bucket [Low, High) with its descriptor.
type Band struct {
	Low        int
	High       int
	Descriptor string
}

// Bands returns the descriptor buckets in ascending order. Exposed for the
// chart renderer, which shades the same zones.
func Bands() []Band {
	return []Band{
		{1, 10, DescriptorRemote},
		{10, 30, DescriptorUnlikely},
		{30, 70, DescriptorEvenChance},
		{70, 90, DescriptorLikely},
		{90, 99, DescriptorAlmost},
		{99, 100, DescriptorCertain},
	}
}

// Classify maps a probability in [1,100] to its qualitative descriptor.
// Buckets are half-open and checked low to high; 100 maps to Certain.
func Classify(probability int) string {
	for _, b := range Bands() {
		if probability >= b.Low && probability < b.High {
			return b.Descriptor
		}
	}
	return DescriptorCertain
}
