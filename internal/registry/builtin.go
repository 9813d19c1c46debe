package registry

import "github.com/vovakirdan/neon-rain/internal/rain"

func init() {
	Register(DefaultPalette, "Neon", rain.NeonPalette())

	Register("ember", "Ember", rain.Palette{
		Hue:        rain.Range{Min: 0, Max: 40},
		Saturation: rain.Range{Min: 0.80, Max: 1.00},
		Lightness:  rain.Range{Min: 0.45, Max: 0.65},
	})

	Register("toxic", "Toxic", rain.Palette{
		Hue:        rain.Range{Min: 90, Max: 130},
		Saturation: rain.Range{Min: 0.70, Max: 1.00},
		Lightness:  rain.Range{Min: 0.45, Max: 0.70},
	})

	Register("violet", "Violet", rain.Palette{
		Hue:        rain.Range{Min: 260, Max: 300},
		Saturation: rain.Range{Min: 0.60, Max: 0.90},
		Lightness:  rain.Range{Min: 0.55, Max: 0.80},
	})
}
