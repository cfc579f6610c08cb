package airmass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 標高から気圧への変換のテスト
// 期待値はPVLIB_Pythonのalt2presから取得しました。
func Test_PressureAtAltitude(t *testing.T) {
	assert.InDelta(t, 101325.0, PressureAtAltitude(0.0), 0.01)
	assert.InDelta(t, 89874.75, PressureAtAltitude(1000.0), 0.01)
}

// 気圧から標高への変換のテスト
func Test_AltitudeAtPressure(t *testing.T) {
	// 近似式の定数の丸めにより海面気圧でも完全に0にはならない
	assert.InDelta(t, 0.0, AltitudeAtPressure(101325.0), 0.2)
}

// 標高⇔気圧の往復変換のテスト
func Test_PressureAltitudeRoundTrip(t *testing.T) {
	for _, h := range []float64{0.0, 500.0, 1000.0, 3000.0} {
		assert.InDelta(t, h, AltitudeAtPressure(PressureAtAltitude(h)), 0.2)
	}
}

// 気圧の標高補正のテスト
func Test_CorrectPressure(t *testing.T) {
	// 標高差なしなら補正なし
	assert.Equal(t, 101325.0, CorrectPressure(101325.0, 0.0, 15.0))

	// 標高差500m, 気温15℃
	assert.InDelta(t, 95459.62, CorrectPressure(101325.0, 500.0, 15.0), 0.01)
}
