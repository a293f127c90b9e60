// Command lanedetect runs one BMP frame through the full pipeline:
// grayscale, blur, edges, suppression, thresholding, ROI mask, Hough
// voting, peak extraction and lane selection, writing every intermediate
// buffer plus a debug overlay and the hex comparison files the hardware
// verification environment expects.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/laneref/lanedetect/bmp"
	"github.com/laneref/lanedetect/hough"
	"github.com/laneref/lanedetect/lane"
	"github.com/laneref/lanedetect/overlay"
	"github.com/laneref/lanedetect/raster"
	"github.com/laneref/lanedetect/telemetry"
)

func main() {
	log.SetPrefix("lanedetect: ")

	var (
		lowThreshold  = flag.Int("low", 60, "hysteresis low threshold")
		highThreshold = flag.Int("high", 100, "hysteresis high threshold")
		mqttBroker    = flag.String("mqtt", "", "MQTT broker URL; telemetry disabled if empty")
		deployment    = flag.String("deployment", "default", "deployment name, used in the MQTT topic")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lanedetect <input.bmp>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("reading %s: %v", input, err)
	}

	color, hdr, err := bmp.Decode(data)
	if err != nil {
		log.Fatalf("decoding %s: %v", input, err)
	}

	cfg := raster.LowRes
	if color.Width != cfg.Width || color.Height != cfg.Height {
		cfg = raster.HighRes
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	outDir := filepath.Join(filepath.Dir(input), "out", stem)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", outDir, err)
	}

	grayscale := raster.Grayscale(color)
	blurred := raster.GaussianBlur(grayscale)
	edges := raster.Sobel(blurred)
	nms := raster.NonMaxSuppress(edges)
	thresholded := raster.Hysteresis(nms, byte(*lowThreshold), byte(*highThreshold))
	roi := raster.ApplyROI(thresholded, cfg.ROIMode)

	writeStage(outDir, "grayscale.bmp", grayscale, hdr)
	writeStage(outDir, "blurred.bmp", blurred, hdr)
	writeStage(outDir, "edges.bmp", edges, hdr)
	writeStage(outDir, "nms.bmp", nms, hdr)
	writeStage(outDir, "thresholded.bmp", thresholded, hdr)
	writeStage(outDir, "roi.bmp", roi, hdr)

	rhoResLog := cfg.RhoResLog
	rhos := cfg.Rhos

	acc := hough.NewAccumulator(rhos)
	hough.Accumulate(acc, roi, rhoResLog)
	peaks := hough.TopN(acc, cfg.TopN)

	selectMode := lane.SelectBestVote
	if cfg.ROIMode == raster.ROISplitHalf {
		selectMode = lane.SelectFirstMatch
	}
	result := lane.Select(peaks, lane.Config{
		SelectMode:   selectMode,
		Rhos:         rhos,
		RhoResLog:    rhoResLog,
		ImageCenterY: int32(cfg.Height / 2),
	})

	writeHex(outDir, "left_rho_idx_cmp.txt", result.LeftRhoIdx)
	writeHex(outDir, "left_theta_idx_cmp.txt", result.LeftTheta)
	writeHex(outDir, "right_rho_idx_cmp.txt", result.RightRhoIdx)
	writeHex(outDir, "right_theta_idx_cmp.txt", result.RightTheta)
	writeHex(outDir, "steering_cmp.txt", int(result.Steering))

	canvas := overlay.NewCanvas(color)
	if result.Valid {
		overlay.DrawLine(canvas, result.LeftRhoIdx, result.LeftTheta, rhos, cfg.RhoResolution, overlay.ColorLeft)
		overlay.DrawLine(canvas, result.RightRhoIdx, result.RightTheta, rhos, cfg.RhoResolution, overlay.ColorRight)
	}
	overlay.StampSteering(canvas, result.Steering)
	overlay.NewConsole(canvas).LogSteering(result.Valid, result.Steering)
	if err := os.WriteFile(filepath.Join(outDir, "overlay.bmp"), bmp.EncodeColor(canvas.Image, hdr), 0o644); err != nil {
		log.Printf("writing overlay.bmp: %v", err)
	}

	if *mqttBroker != "" {
		pub, err := telemetry.NewPublisher(*mqttBroker, telemetry.DefaultTopic(*deployment), "lanedetect-"+stem)
		if err != nil {
			log.Printf("telemetry: %v", err)
		} else {
			pub.Publish(telemetry.Frame{
				LeftRhoIdx:  result.LeftRhoIdx,
				LeftTheta:   result.LeftTheta,
				RightRhoIdx: result.RightRhoIdx,
				RightTheta:  result.RightTheta,
				Valid:       result.Valid,
				Steering:    result.Steering,
			})
			pub.Close()
		}
	}
}

func writeStage(outDir, name string, img *raster.Image, hdr bmp.Header) {
	if err := os.WriteFile(filepath.Join(outDir, name), bmp.Encode(img, hdr), 0o644); err != nil {
		log.Printf("writing %s: %v", name, err)
	}
}

func writeHex(outDir, name string, v int) {
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(strconv.FormatInt(int64(v), 16)), 0o644); err != nil {
		log.Printf("writing %s: %v", name, err)
	}
}
