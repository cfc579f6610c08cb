// Airmass
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/solarkit/airmass-go/airmass"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	// コマンドライン引数の処理
	parser := argparse.NewParser("Airmass", "Computes relative and pressure corrected airmass from the solar zenith angle")

	zenith := parser.FloatPositional(&argparse.Options{
		Default: 0.0,
		Help:    "太陽天頂角 [度]"})

	model := parser.Selector("m", "model", airmass.ModelNames(), &argparse.Options{
		Default: "kastenyoung1989",
		Help:    "相対エアマスの計算式の指定"})

	pressure := parser.Float("p", "pressure", &argparse.Options{
		Default: airmass.StandardPressure,
		Help:    "対象地点の気圧 [Pa]"})

	altitude := parser.Float("", "altitude", &argparse.Options{
		Default: 0.0,
		Help:    "対象地点の標高 [m] (--pressure未指定時に気圧の算出に使用)"})

	input := parser.String("i", "input", &argparse.Options{
		Default: "",
		Help:    "date,zenith[,pressure] 形式の入力CSVのパス"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	logLevel := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "WARN",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// ログレベル設定
	logger := logging.GetLogger("airmass")
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// --pressure未指定かつ--altitude指定時は標高から気圧を求める
	p := *pressure
	if *altitude != 0.0 && p == airmass.StandardPressure {
		p = airmass.PressureAtAltitude(*altitude)
	}

	if *input == "" {
		// 単発計算モード
		am := airmass.RelativeAirmassByName(*zenith, *model)
		ama := airmass.AbsoluteAirmass(am, p)
		fmt.Printf("airmass_relative,airmass_absolute\n%g,%g\n", am, ama)
		return
	}

	// 時系列計算モード
	file, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer file.Close()

	rows, err := airmass.FromCSV(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	m, ok := airmass.ParseModel(*model)
	if !ok {
		// Selectorで検証済のため通常は到達しない
		m = airmass.KastenYoung1989
	}

	res, err := airmass.BuildTarget(rows, m, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	res.ToCSV(buf)

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		log.Printf("CSV保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), os.ModePerm)
		if err != nil {
			panic(err)
		}
	}
}
