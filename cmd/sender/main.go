/*
NAME
  main.go

DESCRIPTION
  sender encrypts a message with AES-256-CTR, frames and modulates it
  as a BFSK waveform, and writes the result as a WAV file.

  Usage: sender "<message>" [cover.wav]

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the sender CLI: message in, encoded_signal.wav out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/wav"
	"github.com/Hossein-sfa/Robust-Audio-Link/internal/logging"
	"github.com/Hossein-sfa/Robust-Audio-Link/modem"
)

// Logging configuration.
const (
	logPath      = "sender.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

const outputPath = "encoded_signal.wav"

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, `usage: sender "<message>" [cover.wav]`)
		os.Exit(1)
	}
	message := args[0]

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr))

	var cover []float64
	if len(args) > 1 {
		samples, _, err := wav.ReadMonoPCM(args[1])
		if err != nil {
			log.Error("could not read cover audio", "path", args[1], "error", err)
			os.Exit(1)
		}
		cover = samples
		log.Info("loaded cover audio", "path", args[1], "samples", len(cover))
	}

	start := time.Now()
	samples, err := modem.Encode([]byte(message), modem.DemoKey, modem.DemoIV, modem.SampleRateTX, cover)
	if err != nil {
		log.Error("encode failed", "error", err)
		os.Exit(1)
	}

	if err := wav.WriteMonoPCM(outputPath, samples, modem.SampleRateTX); err != nil {
		log.Error("could not write wav file", "path", outputPath, "error", err)
		os.Exit(1)
	}

	duration := time.Duration(float64(len(samples)) / modem.SampleRateTX * float64(time.Second))
	fmt.Printf("wrote %s (%v)\n", outputPath, duration)
	log.Info("encode complete", "path", outputPath, "duration", duration, "samples", len(samples))
}
