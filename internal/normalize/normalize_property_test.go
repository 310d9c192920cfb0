//go:build property
// +build property

package normalize

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var vendorSamples = []interface{}{
	"NVIDIA® GeForce RTX 4060 Laptop GPU",
	"NVIDIA GeForce RTX 5070 Ti 12GB GDDR7",
	"AMD Radeon RX 7600M XT",
	"Intel Arc A370M",
	"Intel UHD Graphics",
	"AMD Ryzen AI 9 HX 370",
	"Intel Core Ultra 7 155H",
	"13th Gen Intel Core i5-13420H",
	"Apple M3 Pro",
	"2560x1440",
	"WQHD+ 165Hz IPS",
	"3840 x 2160 OLED",
	"2.8K OLED 120Hz",
	"FHD 144Hz",
	"",
}

func rawText() gopter.Gen {
	return gen.OneGenOf(gen.OneConstOf(vendorSamples...), gen.AlphaString())
}

// Property: GPU(display(GPU(x))) == GPU(x)
func TestGPUIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("re-normalizing a GPU model is a no-op", prop.ForAll(
		func(raw string) bool {
			model, kind := GPU(raw)
			again, againKind := GPU(model)
			return model == again && kind == againKind
		},
		rawText(),
	))

	properties.TestingRun(t)
}

// Property: CPU(CPUDisplay(CPU(x))) == CPU(x)
func TestCPUIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("re-normalizing a CPU display string is a no-op", prop.ForAll(
		func(raw string) bool {
			brand, tier := CPU(raw)
			againBrand, againTier := CPU(CPUDisplay(brand, tier))
			return brand == againBrand && tier == againTier
		},
		rawText(),
	))

	properties.TestingRun(t)
}

// Property: Resolution(Resolution(x)) == Resolution(x)
func TestResolutionIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("re-normalizing a resolution class is a no-op", prop.ForAll(
		func(raw string) bool {
			res := Resolution(raw)
			return Resolution(string(res)) == res
		},
		rawText(),
	))

	properties.Property("QHD and 2K select the same products", prop.ForAll(
		func(raw string) bool {
			product := string(Resolution(raw))
			return ResolutionMatches(product, "QHD") == ResolutionMatches(product, "2K")
		},
		rawText(),
	))

	properties.TestingRun(t)
}
