package airmass

import (
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// 計算結果データ
type AirmassTarget struct {
	date []time.Time //1.参照時刻

	zenith   []float64 //2.太陽天頂角 (単位:°)
	pressure []float64 //3.気圧 (単位:Pa)

	AM  []float64 //4.相対エアマス (z > 90°の要素はNaN)
	AMa []float64 //5.絶対エアマス(気圧補正後)
}

// CSVの1行分の入力データ
// pressure列は省略可能で、省略時は既定の気圧が使用される
type Record struct {
	Date     string  `csv:"date"`
	Zenith   float64 `csv:"zenith"`
	Pressure float64 `csv:"pressure"`
}

// """CSVから天頂角の時系列を読み込みます。
// Args:
//
//	r(io.Reader): date,zenith[,pressure] 形式のCSV
//
// Returns:
//
//	[]*Record: 読み込んだ行のリスト
//
// """
func FromCSV(r io.Reader) ([]*Record, error) {
	var rows []*Record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// 入力行のリストから相対エアマスと絶対エアマスの時系列を計算します。
// 引数:
// rows: 入力行のリスト
// model: 相対エアマスの計算式
// defaultPressure: pressure列が無い行に使用する気圧 [Pa]
func BuildTarget(rows []*Record, model Model, defaultPressure float64) (*AirmassTarget, error) {
	l := len(rows)
	t := &AirmassTarget{
		date:     make([]time.Time, l),
		zenith:   make([]float64, l),
		pressure: make([]float64, l),
	}

	for i, row := range rows {
		d, err := time.Parse("2006-01-02 15:04:05", row.Date)
		if err != nil {
			return nil, err
		}
		t.date[i] = d
		t.zenith[i] = row.Zenith

		if row.Pressure > 0 {
			t.pressure[i] = row.Pressure
		} else {
			t.pressure[i] = defaultPressure
		}
	}

	t.AM = RelativeAirmassSeries(t.zenith, model)
	t.AMa = AbsoluteAirmassSeriesPressure(t.AM, t.pressure)

	return t, nil
}

// Len は時系列の長さを返します。
func (t *AirmassTarget) Len() int {
	return len(t.date)
}
