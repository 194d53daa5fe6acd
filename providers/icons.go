package providers

// FallbackIcon is the catch-all icon bucket for unrecognized weather codes.
const FallbackIcon = "50d"

type iconBucket struct {
	icon  string
	codes []string
}

// iconBuckets maps JMA weather codes to the display icon ids the front-end
// uses to pick a glyph. Buckets are evaluated in declaration order and the
// first bucket containing a code wins: 160 resolves to 02d and 181 to 09d
// even though both reappear in later buckets. The table and its order must
// stay as-is.
var iconBuckets = []iconBucket{
	{"01d", []string{"100", "123", "124", "130", "131"}},
	{"02d", []string{"101", "132", "140", "160", "170"}},
	{"03d", []string{"102", "104", "115", "116", "141", "142"}},
	{"04d", []string{"103", "106", "107", "108", "128", "143", "150"}},
	{"09d", []string{"110", "111", "112", "113", "114", "118", "119", "125", "126", "127", "153", "154", "155", "181"}},
	{"11d", []string{"117", "181"}},
	{"13d", []string{"120", "121", "122", "156", "157", "160"}},
}

// IconForCode maps a JMA weather code to its display icon id, falling back
// to FallbackIcon for codes outside every bucket.
func IconForCode(code string) string {
	for _, bucket := range iconBuckets {
		for _, c := range bucket.codes {
			if c == code {
				return bucket.icon
			}
		}
	}
	return FallbackIcon
}

// codeDescriptions maps JMA weather codes to readable condition text.
var codeDescriptions = map[string]string{
	"100": "Sunny",
	"101": "Sunny, partly cloudy",
	"102": "Sunny with brief rain",
	"103": "Sunny with occasional rain",
	"104": "Sunny with brief snow",
	"105": "Sunny with occasional snow",
	"106": "Sunny with brief rain or snow",
	"107": "Sunny with occasional rain or snow",
	"108": "Sunny with brief rain or thunderstorms",
	"110": "Cloudy",
	"111": "Cloudy, occasionally sunny",
	"112": "Cloudy with brief rain",
	"113": "Cloudy with occasional rain",
	"114": "Cloudy with brief snow",
	"115": "Cloudy with occasional snow",
	"116": "Cloudy with brief rain or snow",
	"117": "Cloudy with occasional rain or snow",
	"118": "Cloudy with brief rain or thunderstorms",
	"119": "Cloudy with occasional rain or thunderstorms",
	"120": "Rain",
	"121": "Rain, occasionally sunny",
	"122": "Rain, occasionally cloudy",
	"123": "Rain with brief snow",
	"124": "Rain with occasional snow",
	"125": "Rain with brief snow or thunderstorms",
	"126": "Rain with occasional snow or thunderstorms",
	"127": "Rain or thunderstorms",
	"130": "Snow",
	"131": "Snow, occasionally sunny",
	"132": "Snow, occasionally cloudy",
	"140": "Sunny",
	"141": "Sunny, partly cloudy",
	"142": "Sunny with brief rain",
	"150": "Cloudy",
	"160": "Rain",
	"170": "Snow",
	"181": "Thunder",
}

// DescriptionForCode returns readable condition text for a JMA weather
// code, or "unknown" for codes outside the table.
func DescriptionForCode(code string) string {
	if description, ok := codeDescriptions[code]; ok {
		return description
	}
	return "unknown"
}
