package airmass

import (
	"bytes"
	"strconv"
)

// CSV形式
func (t *AirmassTarget) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("date")
	buf.WriteString(",zenith")
	buf.WriteString(",pressure")
	buf.WriteString(",airmass_relative")
	buf.WriteString(",airmass_absolute")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i := 0; i < len(t.date); i++ {
		buf.WriteString(t.date[i].Format("2006-01-02 15:04:05"))
		writeFloat(t.zenith[i])
		writeFloat(t.pressure[i])
		writeFloat(t.AM[i])
		writeFloat(t.AMa[i])
		buf.WriteString("\n")
	}
}
