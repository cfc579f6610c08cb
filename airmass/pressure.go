package airmass

import "math"

//気圧に関するモジュール

// 標高から標準大気の気圧を求めます。
// 引数:
// altitude: 標高 [m]
// 戻り値:
// 気圧 [Pa]
// ただし、米国標準大気(1976)に基づく近似式を使用する。
func PressureAtAltitude(altitude float64) float64 {
	return 100 * math.Pow((44331.514-altitude)/11880.516, 1/0.1902632)
}

// 気圧から標準大気の標高を求めます。PressureAtAltitude の逆変換。
// 引数:
// pressure: 気圧 [Pa]
// 戻り値:
// 標高 [m]
func AltitudeAtPressure(pressure float64) float64 {
	return 44331.5 - 4946.62*math.Pow(pressure, 0.190263)
}

// 気圧の標高補正を行います。
// 引数:
// pressure: 補正前の気圧 [Pa]
// eleGap: 標高差 [m]
// tmp: 気温 [℃]
// 戻り値:
// 標高補正後の気圧 [Pa]
// ただし、気温減率の平均値を0.0065℃/mとする。
func CorrectPressure(pressure float64, eleGap float64, tmp float64) float64 {
	return pressure * math.Pow(1-((eleGap*0.0065)/(tmp+273.15)), 5.257)
}
