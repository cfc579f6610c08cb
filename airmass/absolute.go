package airmass

import (
	"gonum.org/v1/gonum/floats"
)

// 絶対エアマス(気圧補正後)を計算する
//
// Args:
//
//	amRelative(float64): 海面高度での相対エアマス (NaNを含んでもよい)
//	pressure(float64): 対象地点の気圧 [Pa]
//
// Returns:
//
//	float64: 気圧補正後のエアマス
//	         absolute airmass = (relative airmass)*pressure/101325
//
// 入力のNaN/Infはそのまま伝播する。気圧の符号や大きさの検証は行わない。
func AbsoluteAirmass(amRelative float64, pressure float64) float64 {
	return amRelative * pressure / StandardPressure
}

// AbsoluteAirmassSeries は相対エアマスの時系列を一定気圧 pressure [Pa] で補正する。
func AbsoluteAirmassSeries(amRelative []float64, pressure float64) []float64 {
	ama := make([]float64, len(amRelative))
	copy(ama, amRelative)
	floats.Scale(pressure/StandardPressure, ama)
	return ama
}

// AbsoluteAirmassSeriesPressure は相対エアマスの時系列を気圧の時系列
// pressure [Pa] で要素ごとに補正する。両者の長さは一致していること。
func AbsoluteAirmassSeriesPressure(amRelative []float64, pressure []float64) []float64 {
	ama := make([]float64, len(amRelative))
	floats.MulTo(ama, amRelative, pressure)
	floats.Scale(1.0/StandardPressure, ama)
	return ama
}
