package entity

// IconAsset is one of the fixed images bundled with the widget
type IconAsset string

const (
	IconClear    IconAsset = "clear"
	IconCloud    IconAsset = "cloud"
	IconDrizzle  IconAsset = "drizzle"
	IconRain     IconAsset = "rain"
	IconSnow     IconAsset = "snow"
	IconWind     IconAsset = "wind"
	IconHumidity IconAsset = "humidity"
)

var iconsByCode = map[string]IconAsset{
	"01d": IconClear,
	"01n": IconClear,
	"02d": IconCloud,
	"02n": IconCloud,
	"03d": IconCloud,
	"03n": IconCloud,
	"04d": IconDrizzle,
	"04n": IconDrizzle,
	"09d": IconRain,
	"09n": IconRain,
	"10d": IconRain,
	"10n": IconRain,
	"13d": IconSnow,
	"13n": IconSnow,
	"50d": IconDrizzle,
	"50n": IconDrizzle,
}

// IconFor maps a provider condition code to an asset, falling back to clear
func IconFor(code string) IconAsset {
	if icon, ok := iconsByCode[code]; ok {
		return icon
	}
	return IconClear
}

// Icons lists every bundled asset
func Icons() []IconAsset {
	return []IconAsset{IconClear, IconCloud, IconDrizzle, IconRain, IconSnow, IconWind, IconHumidity}
}

func (i IconAsset) FileName() string {
	return string(i) + ".png"
}
