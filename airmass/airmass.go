package airmass

import (
	"math"
	"strings"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// 相対エアマス・絶対エアマス計算
// Relative / absolute (pressure corrected) airmass
//--------------------------------------

// 標準大気圧 [Pa]
const StandardPressure = 101325.0

var logger = logging.GetLogger("airmass")

// WarnFunc receives diagnostics about recovered input problems
// (currently only unknown model names).
type WarnFunc func(format string, args ...interface{})

var warnf WarnFunc = func(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// SetWarnFunc replaces the diagnostics sink. Passing nil restores the
// default "airmass" logger.
func SetWarnFunc(f WarnFunc) {
	if f == nil {
		warnf = func(format string, args ...interface{}) {
			logger.Warnf(format, args...)
		}
	} else {
		warnf = f
	}
}

// Model は相対エアマスの計算式を選択する列挙値
// Selects the empirical formula used by RelativeAirmass.
type Model int

const (
	// Kasten and Young (1989), Applied Optics 28:4735-4738.
	// 屈折補正後の太陽天頂角(apparent zenith)を使用
	KastenYoung1989 Model = iota

	// Kasten (1966), CRREL Technical Report 136. apparent zenith
	Kasten1966

	// secant(zenith). z=90°で発散することに注意
	Simple

	// Pickering (2002), DIO 12:1, 20. apparent zenith
	Pickering2002

	// Young and Irvine (1967), The Astronomical Journal 72:945-950.
	// true zenith
	YoungIrvine1967

	// Young (1994), Applied Optics 33:1108-1110. true zenith
	Young1994

	// Gueymard (1993), Solar Energy 51:121-138. apparent zenith
	Gueymard1993
)

var modelNames = map[Model]string{
	KastenYoung1989: "kastenyoung1989",
	Kasten1966:      "kasten1966",
	Simple:          "simple",
	Pickering2002:   "pickering2002",
	YoungIrvine1967: "youngirvine1967",
	Young1994:       "young1994",
	Gueymard1993:    "gueymard1993",
}

func (m Model) String() string {
	return modelNames[m]
}

// ModelNames は選択可能なモデル名の一覧 (CLIのSelector用)
func ModelNames() []string {
	return []string{
		"kastenyoung1989", "kasten1966", "simple", "pickering2002",
		"youngirvine1967", "young1994", "gueymard1993",
	}
}

// ParseModel はモデル名(大文字小文字を区別しない)をModelに変換する。
// 未知の名前の場合は既定値 KastenYoung1989 と false を返す。
func ParseModel(name string) (Model, bool) {
	lower := strings.ToLower(name)
	for m, n := range modelNames {
		if n == lower {
			return m, true
		}
	}
	return KastenYoung1989, false
}

// 相対エアマス(気圧補正なし)を計算する
//
// Args:
//
//	z(float64): 太陽天頂角 [度]
//	            モデルによって屈折補正後(apparent)の天頂角を使うものと
//	            補正なし(true)の天頂角を使うものがある
//	model(Model): 計算式の選択
//
// Returns:
//
//	float64: 海面高度での相対エアマス。z > 90°の場合は NaN
func RelativeAirmass(z float64, model Model) float64 {
	zenithRad := degreeToRad(z)

	var am float64
	switch model {
	case Kasten1966:
		am = 1.0 / (math.Cos(zenithRad) + 0.15*math.Pow(93.885-z, -1.253))
	case Simple:
		am = 1.0 / math.Cos(zenithRad)
	case Pickering2002:
		am = 1.0 / math.Sin(degreeToRad(90-z+244.0/(165+47.0*math.Pow(90-z, 1.1))))
	case YoungIrvine1967:
		// PVLIB_Pythonの式をそのまま移植している。天頂付近で負の値と
		// なるが、リファレンス実装とのビット互換を優先する。
		sec := 1.0 / math.Cos(zenithRad)
		am = sec * (1 - 0.0012*sec*sec - 1)
	case Young1994:
		c := math.Cos(zenithRad)
		am = (1.002432*c*c + 0.148386*c + 0.0096467) /
			(c*c*c + 0.149864*c*c + 0.0102963*c + 0.000303978)
	case Gueymard1993:
		am = 1.0 / (math.Cos(zenithRad) + 0.00176759*z*math.Pow(94.37515-z, -1.21563))
	default:
		// KastenYoung1989
		am = 1.0 / (math.Cos(zenithRad) + 0.50572*math.Pow(6.07995+(90-z), -1.6364))
	}

	// 地平線下(z > 90°)はNaNとする。z == 90°はマスクしない
	if z > 90 {
		am = math.NaN()
	}

	return am
}

// RelativeAirmassSeries は天頂角の時系列 [度] に対して要素ごとに
// RelativeAirmass を適用する。
func RelativeAirmassSeries(z []float64, model Model) []float64 {
	am := make([]float64, len(z))
	for i := 0; i < len(z); i++ {
		am[i] = RelativeAirmass(z[i], model)
	}
	return am
}

// RelativeAirmassByName はモデル名(大文字小文字を区別しない)で相対エア
// マスを計算する。未知の名前の場合は警告を出して kastenyoung1989 で計算する。
func RelativeAirmassByName(z float64, name string) float64 {
	return RelativeAirmass(z, resolveModel(name))
}

// RelativeAirmassSeriesByName はモデル名指定の時系列版。
// 未知の名前に対する警告は1回だけ出す。
func RelativeAirmassSeriesByName(z []float64, name string) []float64 {
	return RelativeAirmassSeries(z, resolveModel(name))
}

func resolveModel(name string) Model {
	model, ok := ParseModel(name)
	if !ok {
		warnf("%s is not a valid model type for relative airmass. The 'kastenyoung1989' model was used.", name)
	}
	return model
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
